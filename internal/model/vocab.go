package model

import "time"

// VocabList with a negative ID is a public starter list visible to every user
// and not editable through the API.
type VocabList struct {
	ID          int64     `json:"list_id"`
	UserID      int64     `json:"-"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	TotalWords  int       `json:"total_words"`
	Progress    int       `json:"progress"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VocabItem struct {
	ID              int64     `json:"item_id"`
	ListID          int64     `json:"list_id"`
	Word            string    `json:"word"`
	Definition      string    `json:"definition"`
	Example         string    `json:"example"`
	IPA             string    `json:"ipa"`
	AudioURLUS      string    `json:"audio_url_us,omitempty"`
	AudioURLUK      string    `json:"audio_url_uk,omitempty"`
	ImageURL        *string   `json:"image_url"`
	DifficultyLevel string    `json:"difficulty_level,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
