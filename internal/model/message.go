package model

import "time"

// Message senders. History rendering maps these onto the Human/Assistant
// transcript labels the chatbot prompt expects.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

type ConversationMessage struct {
	ID            int64     `json:"message_id"`
	UserID        int64     `json:"user_id"`
	Sender        string    `json:"sender"`
	Content       string    `json:"content"`
	Audio         *string   `json:"audio,omitempty"`
	FeedbackScore *int      `json:"feedback_score,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
