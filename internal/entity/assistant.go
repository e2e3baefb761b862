package entity

import "time"

// HistoryEntry is one dispatched command in a user's capped history. Retention
// (most recent 50 per user) is enforced by the repository on append.
type HistoryEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Command     string    `json:"command"`
	Response    string    `json:"response"`
	Type        string    `json:"type"`
	ActionTaken bool      `json:"actionTaken"`
	SearchQuery string    `json:"searchQuery,omitempty"`
	CreatedAt   time.Time `json:"timestamp"`
}

type Shortcut struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Keyword   string    `json:"keyword"`
	Action    string    `json:"action"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UsageStats summarizes a user's command history.
type UsageStats struct {
	TotalCommands int            `json:"totalCommands"`
	CommandsToday int            `json:"commandsToday"`
	MostUsedTypes map[string]int `json:"mostUsedTypes"`
	LastActive    time.Time      `json:"lastActive"`
}
