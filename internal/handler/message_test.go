package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minhngdev/lingopad/internal/auth"
	"github.com/minhngdev/lingopad/internal/chat"
	"github.com/minhngdev/lingopad/internal/model"
	"github.com/minhngdev/lingopad/internal/store"
	"github.com/minhngdev/lingopad/internal/websocket"
)

// queueCompleter returns scripted outputs in order: the bot asks first, the
// error detector second.
type queueCompleter struct {
	outputs []string
	err     error
}

func (c *queueCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if len(c.outputs) == 0 {
		return "", nil
	}
	out := c.outputs[0]
	c.outputs = c.outputs[1:]
	return out, nil
}

// newMessageEnv builds a message handler over a fresh database with one
// seeded user and returns that user's id.
func newMessageEnv(t *testing.T, completer *queueCompleter) (*MessageHandler, *store.MessageStore, int64) {
	t.Helper()
	db := openTestDB(t)
	messages := store.NewMessageStore(db)
	bot := chat.NewBot(completer, messages, testLogger())
	detector := chat.NewErrorDetector(completer)
	hub := websocket.NewHub(testLogger())
	h := NewMessageHandler(messages, bot, detector, hub, testLogger())

	u, err := store.NewUserStore(db).Create("Test User", "test@example.com", "x")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return h, messages, u.ID
}

type messageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Messages    []string       `json:"messages"`
		Suggestions []string       `json:"suggestions"`
		Error       *chat.Analysis `json:"error"`
	} `json:"data"`
}

func sendMessage(t *testing.T, h *MessageHandler, userID int64, body string) (*httptest.ResponseRecorder, messageResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(body))
	req = req.WithContext(auth.WithAuth(req.Context(), &auth.AuthContext{UserID: userID}))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	var resp messageResponse
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec, resp
}

func TestMessageCreate(t *testing.T) {
	completer := &queueCompleter{outputs: []string{
		`{"messages": ["Nice to meet you!", "Where are you from?"], "suggestions": ["I am from Vietnam.", "I live in Hanoi.", "Guess!"]}`,
		`OK`,
	}}
	h, messages, userID := newMessageEnv(t, completer)

	rec, resp := sendMessage(t, h, userID, `{"content":"Hello, I am Minh"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if len(resp.Data.Messages) != 2 || len(resp.Data.Suggestions) != 3 {
		t.Fatalf("unexpected reply shape: %+v", resp.Data)
	}
	if resp.Data.Error == nil || !resp.Data.Error.Clean {
		t.Errorf("expected clean analysis, got %+v", resp.Data.Error)
	}

	// The full exchange lands in history: one user turn plus two bot turns.
	history, err := messages.RecentByUser(userID, 10)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d stored messages, want 3", len(history))
	}
	if history[0].Sender != model.SenderUser || history[1].Sender != model.SenderBot {
		t.Errorf("unexpected sender order: %s, %s", history[0].Sender, history[1].Sender)
	}
}

func TestMessageCreateFallsBackWhenModelFails(t *testing.T) {
	h, _, userID := newMessageEnv(t, &queueCompleter{err: context.DeadlineExceeded})

	rec, resp := sendMessage(t, h, userID, `{"content":"Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if len(resp.Data.Messages) != 1 || !strings.Contains(resp.Data.Messages[0], "trouble processing your request") {
		t.Fatalf("expected fallback reply, got %+v", resp.Data.Messages)
	}
	if len(resp.Data.Suggestions) != 3 {
		t.Errorf("fallback must still carry 3 suggestions, got %d", len(resp.Data.Suggestions))
	}
	if resp.Data.Error != nil {
		t.Errorf("analysis should be dropped on failure, got %+v", resp.Data.Error)
	}
}

func TestMessageCreateRejectsEmpty(t *testing.T) {
	h, _, _ := newMessageEnv(t, &queueCompleter{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(`{"content":"   "}`))
	req = req.WithContext(auth.WithAuth(req.Context(), &auth.AuthContext{UserID: 1}))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSuggestionsPlaceholder(t *testing.T) {
	h, _, _ := newMessageEnv(t, &queueCompleter{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions", strings.NewReader(`{"content":"How is the weather?"}`))
	req = req.WithContext(auth.WithAuth(req.Context(), &auth.AuthContext{UserID: 1}))
	rec := httptest.NewRecorder()
	h.Suggestions(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 3 || resp.Data[0] != "Suggestion 1 for How is the weather?" {
		t.Fatalf("unexpected suggestions: %v", resp.Data)
	}
}
