package entity

import "time"

type User struct {
	ID             string      `db:"id" json:"id"`
	Name           string      `db:"name" json:"name"`
	Email          string      `db:"email" json:"email"`
	Password       string      `db:"password" json:"-"`
	AssistantName  string      `db:"assistant_name" json:"assistantName"`
	AssistantImage string      `db:"assistant_image" json:"assistantImage,omitempty"`
	Preferences    Preferences `db:"-" json:"preferences"`
	LastActive     time.Time   `db:"last_active" json:"lastActive"`
	CreatedAt      time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updatedAt"`
}

type Preferences struct {
	VoiceSpeed float64 `json:"voiceSpeed"`
	VoicePitch float64 `json:"voicePitch"`
	Theme      string  `json:"theme"`
	Language   string  `json:"language"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		VoiceSpeed: 1,
		VoicePitch: 1,
		Theme:      "dark",
		Language:   "en-US",
	}
}

type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
