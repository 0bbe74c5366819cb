package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minhngdev/lingopad/internal/llm"
	"github.com/minhngdev/lingopad/internal/model"
)

const defaultHistoryLimit = 20

const chatPromptTemplate = `You are a friendly English learning assistant chatbot. Respond naturally like in daily chat messages, using short messages, casual language, and sometimes internet slang/abbreviations when appropriate.

Keep responses conversational and avoid lengthy explanations. Split longer responses into multiple short messages.

For topics outside English learning, briefly suggest where to find more information instead of explaining everything.

Previous conversation history:
{chat_history}

Human message: {message}

Format your response as JSON with:
1. messages: Array of short messages to display sequentially
2. suggestions: Array of 3 natural suggested responses the user could reply with

Respond with a JSON object of this exact shape:
{"messages": ["<short message>", ...], "suggestions": ["<suggested reply>", "<suggested reply>", "<suggested reply>"]}
`

// Reply is what the chatbot hands back for one user message.
type Reply struct {
	Messages    []string `json:"messages"`
	Suggestions []string `json:"suggestions"`
}

func (r *Reply) Validate() error {
	if len(r.Messages) == 0 {
		return fmt.Errorf("messages must not be empty")
	}
	if len(r.Suggestions) != 3 {
		return fmt.Errorf("expected exactly 3 suggestions, got %d", len(r.Suggestions))
	}
	return nil
}

// fallbackReply is returned whenever generation fails. The chat endpoint never
// errors out because of the model; the learner just gets this and can retry.
func fallbackReply() *Reply {
	return &Reply{
		Messages: []string{"I apologize, but I'm having trouble processing your request right now. Could you try rephrasing your message?"},
		Suggestions: []string{
			"Could you explain that differently?",
			"Let's try a simpler question",
			"Can we start over?",
		},
	}
}

type historyProvider interface {
	RecentByUser(userID int64, limit int) ([]model.ConversationMessage, error)
}

// Bot answers learner chat messages with the recent conversation as context.
type Bot struct {
	completer    llm.Completer
	history      historyProvider
	historyLimit int
	logger       *slog.Logger
}

func NewBot(completer llm.Completer, history historyProvider, logger *slog.Logger) *Bot {
	return &Bot{
		completer:    completer,
		history:      history,
		historyLimit: defaultHistoryLimit,
		logger:       logger.With("component", "chatbot"),
	}
}

// FormatHistory renders stored messages as a Human/Assistant transcript.
func FormatHistory(messages []model.ConversationMessage) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		role := "Assistant"
		if m.Sender == model.SenderUser {
			role = "Human"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, m.Content))
	}
	return strings.Join(lines, "\n")
}

// Respond generates the bot's reply to one message. Failures of any kind
// (history lookup, backend, malformed output) degrade to the fixed fallback;
// the returned reply is always usable.
func (b *Bot) Respond(ctx context.Context, userID int64, message string) *Reply {
	history, err := b.history.RecentByUser(userID, b.historyLimit)
	if err != nil {
		b.logger.Error("history lookup failed", "error", err, "user_id", userID)
		history = nil
	}

	prompt := strings.NewReplacer(
		"{chat_history}", FormatHistory(history),
		"{message}", message,
	).Replace(chatPromptTemplate)

	var reply Reply
	if err := llm.GenerateInto(ctx, b.completer, prompt, &reply); err != nil {
		b.logger.Warn("chat generation failed, using fallback", "error", err, "user_id", userID)
		return fallbackReply()
	}
	return &reply
}
