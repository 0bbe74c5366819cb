package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/minhngdev/lingopad/internal/auth"
	"github.com/minhngdev/lingopad/internal/chat"
	"github.com/minhngdev/lingopad/internal/store"
	"github.com/minhngdev/lingopad/internal/websocket"
)

const maxHistoryLimit = 100

type MessageHandler struct {
	messages *store.MessageStore
	bot      *chat.Bot
	detector *chat.ErrorDetector
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewMessageHandler(messages *store.MessageStore, bot *chat.Bot, detector *chat.ErrorDetector, hub *websocket.Hub, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messages: messages,
		bot:      bot,
		detector: detector,
		hub:      hub,
		logger:   logger.With("component", "messages"),
	}
}

// Create handles one chat turn: bot reply, sentence analysis, persistence of
// the whole exchange, and a push to the user's open websocket connections.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	reply := h.bot.Respond(r.Context(), userID, req.Content)

	// The analysis is best-effort; the chat keeps working without it.
	analysis, err := h.detector.Analyze(r.Context(), req.Content)
	if err != nil {
		h.logger.Warn("sentence analysis failed", "error", err, "user_id", userID)
		analysis = nil
	}

	saved, err := h.messages.AppendExchange(userID, req.Content, reply.Messages)
	if err != nil {
		h.logger.Error("persist exchange failed", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "failed to store messages")
		return
	}

	h.hub.Send(userID, websocket.NewExchangeEvent(saved))

	writeData(w, http.StatusOK, "Message sent successfully", map[string]any{
		"messages":    reply.Messages,
		"suggestions": reply.Suggestions,
		"error":       analysis,
	})
}

// List returns the user's recent history, oldest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	messages, err := h.messages.RecentByUser(userID, limit)
	if err != nil {
		h.logger.Error("list messages failed", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}
	writeData(w, http.StatusOK, "Messages retrieved successfully", messages)
}

// Suggestions returns placeholder reply suggestions for a draft message.
func (h *MessageHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	suggestions := []string{
		fmt.Sprintf("Suggestion 1 for %s", req.Content),
		fmt.Sprintf("Suggestion 2 for %s", req.Content),
		fmt.Sprintf("Suggestion 3 for %s", req.Content),
	}
	writeData(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}
