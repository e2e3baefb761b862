package intent

// Record is the structured classification of one user command. Type, UserInput
// and Response are always present by the time a Record leaves this package;
// malformed model output is repaired or replaced before callers see it.
type Record struct {
	Type        string                 `json:"type"`
	UserInput   string                 `json:"userInput"`
	Response    string                 `json:"response"`
	SearchQuery string                 `json:"searchQuery,omitempty"`
	Action      string                 `json:"action,omitempty"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// Intent tags with dedicated handling outside the taxonomy config.
const (
	TypeGeneral    = "general"
	TypeError      = "error"
	TypeAuthError  = "auth_error"
	TypeQuotaError = "quota_error"
)
