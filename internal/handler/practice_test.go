package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minhngdev/lingopad/internal/auth"
	"github.com/minhngdev/lingopad/internal/model"
	"github.com/minhngdev/lingopad/internal/practice"
	"github.com/minhngdev/lingopad/internal/store"
)

type staticCompleter struct {
	output string
	err    error
}

func (c *staticCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return c.output, c.err
}

const conversationFixture = `{
	"metadata": {
		"practice_type": "conversation",
		"question_type": "fill_in",
		"topic": "travel",
		"conversation_context": "Asking for Directions",
		"difficulty_level": "Medium"
	},
	"content": {
		"question_text": "A: Excuse me, how do I get to the station?\nB: ____",
		"correct_answer": "Go straight and turn left at the bank.",
		"hint": "Give directions using street landmarks."
	}
}`

func newPracticeServer(t *testing.T, completer *staticCompleter) *http.ServeMux {
	t.Helper()
	db := openTestDB(t)
	h := NewPracticeHandler(practice.NewGenerator(completer), store.NewQuestionStore(db), testLogger())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/practice/{practice_type}", h.Get)
	return mux
}

func practiceRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := auth.WithAuth(req.Context(), &auth.AuthContext{UserID: 1})
	return req.WithContext(ctx)
}

func TestPracticeGetConversation(t *testing.T) {
	mux := newPracticeServer(t, &staticCompleter{output: conversationFixture})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, practiceRequest("/api/v1/practice/conversation?topic=travel"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Status  int                       `json:"status"`
		Message string                    `json:"message"`
		Data    []model.FormattedQuestion `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Questions retrieved successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("got %d questions, want 1", len(resp.Data))
	}
	q := resp.Data[0]
	if q.PracticeType != "conversation" || q.QuestionText == "" {
		t.Errorf("unexpected question row: %+v", q)
	}
}

func TestPracticeGetBadRequests(t *testing.T) {
	mux := newPracticeServer(t, &staticCompleter{output: conversationFixture})

	cases := []struct {
		name   string
		target string
	}{
		{"unknown type", "/api/v1/practice/karaoke?topic=travel"},
		{"missing topic", "/api/v1/practice/conversation"},
		{"unknown speaking part", "/api/v1/practice/speaking?topic=travel&part=part9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, practiceRequest(tc.target))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestPracticeGetBackendFailure(t *testing.T) {
	mux := newPracticeServer(t, &staticCompleter{err: errors.New("upstream down")})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, practiceRequest("/api/v1/practice/conversation?topic=travel"))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502: %s", rec.Code, rec.Body)
	}
}

func TestPracticeGetMalformedOutput(t *testing.T) {
	mux := newPracticeServer(t, &staticCompleter{output: "sorry, no JSON today"})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, practiceRequest("/api/v1/practice/conversation?topic=travel"))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502: %s", rec.Code, rec.Body)
	}
}
