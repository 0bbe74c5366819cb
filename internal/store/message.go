package store

import (
	"database/sql"
	"fmt"

	"github.com/minhngdev/lingopad/internal/model"
)

type MessageStore struct {
	db *sql.DB
}

func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

func scanMessage(scanner interface{ Scan(...any) error }) (*model.ConversationMessage, error) {
	var m model.ConversationMessage
	err := scanner.Scan(&m.ID, &m.UserID, &m.Sender, &m.Content, &m.Audio, &m.FeedbackScore, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

const messageCols = `message_id, user_id, sender, content, audio, feedback_score, created_at`

// AppendExchange stores one user turn followed by its bot replies in a single
// transaction, so a half-written exchange never shows up in history.
func (s *MessageStore) AppendExchange(userID int64, userText string, botReplies []string) ([]model.ConversationMessage, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin exchange tx: %w", err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(botReplies)+1)
	result, err := tx.Exec(
		`INSERT INTO conversation_messages (user_id, sender, content) VALUES (?, ?, ?)`,
		userID, model.SenderUser, userText,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user message: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	ids = append(ids, id)

	for _, reply := range botReplies {
		result, err := tx.Exec(
			`INSERT INTO conversation_messages (user_id, sender, content) VALUES (?, ?, ?)`,
			userID, model.SenderBot, reply,
		)
		if err != nil {
			return nil, fmt.Errorf("insert bot message: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("last insert id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit exchange: %w", err)
	}

	messages := make([]model.ConversationMessage, 0, len(ids))
	for _, id := range ids {
		m, err := s.GetByID(id)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *m)
	}
	return messages, nil
}

func (s *MessageStore) GetByID(id int64) (*model.ConversationMessage, error) {
	row := s.db.QueryRow(`SELECT `+messageCols+` FROM conversation_messages WHERE message_id = ?`, id)
	m, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	return m, nil
}

// RecentByUser returns the user's newest messages in chronological order,
// oldest first, capped at limit.
func (s *MessageStore) RecentByUser(userID int64, limit int) ([]model.ConversationMessage, error) {
	rows, err := s.db.Query(
		`SELECT `+messageCols+` FROM conversation_messages
		 WHERE user_id = ? ORDER BY created_at DESC, message_id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ConversationMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query fetched newest-first; flip to chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
