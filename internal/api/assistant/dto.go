package assistant

import (
	"AssistantGolang/internal/entity"
)

type AskRequest struct {
	Command string `json:"command" validate:"required"`
}

// FinalResponse is the assembled answer for one dispatched command: the
// enriched intent record plus the action URL and timing metadata.
type FinalResponse struct {
	Type           string                 `json:"type"`
	UserInput      string                 `json:"userInput"`
	Response       string                 `json:"response"`
	SearchQuery    string                 `json:"searchQuery,omitempty"`
	Action         string                 `json:"action,omitempty"`
	Parameters     map[string]interface{} `json:"parameters"`
	ActionURL      string                 `json:"actionUrl,omitempty"`
	RequiresAction bool                   `json:"requiresAction"`
	Timestamp      string                 `json:"timestamp"`
	AssistantName  string                 `json:"assistantName,omitempty"`
}

type UpdateAssistantRequest struct {
	AssistantName string              `json:"assistantName" validate:"omitempty,min=1,max=50"`
	ImageURL      string              `json:"imageUrl" validate:"omitempty,url"`
	Preferences   *entity.Preferences `json:"preferences"`
}

type AddShortcutRequest struct {
	Keyword string `json:"keyword" validate:"required,min=1,max=50"`
	Action  string `json:"action" validate:"required,min=1,max=100"`
	URL     string `json:"url" validate:"omitempty,url"`
}
