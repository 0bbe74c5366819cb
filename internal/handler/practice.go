package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/minhngdev/lingopad/internal/llm"
	"github.com/minhngdev/lingopad/internal/practice"
	"github.com/minhngdev/lingopad/internal/store"
)

type PracticeHandler struct {
	generator *practice.Generator
	questions *store.QuestionStore
	logger    *slog.Logger
}

func NewPracticeHandler(generator *practice.Generator, questions *store.QuestionStore, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{
		generator: generator,
		questions: questions,
		logger:    logger.With("component", "practice"),
	}
}

// Get generates a fresh practice set for the requested type and topic,
// persists it, and returns the stored rows (root question plus children).
func (h *PracticeHandler) Get(w http.ResponseWriter, r *http.Request) {
	practiceType := r.PathValue("practice_type")
	if !practice.IsValidType(practiceType) {
		writeError(w, http.StatusBadRequest, "unknown practice type")
		return
	}
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		writeError(w, http.StatusBadRequest, "topic is required")
		return
	}

	ctx := r.Context()
	var rootID int64
	var err error
	switch practiceType {
	case practice.TypeConversation:
		var q *practice.ConversationQuestion
		if q, err = h.generator.Conversation(ctx, topic); err == nil {
			rootID, err = h.questions.SaveConversation(q)
		}
	case practice.TypeSpeaking:
		var q *practice.SpeakingQuestion
		if q, err = h.generator.Speaking(ctx, topic, r.URL.Query().Get("part")); err == nil {
			rootID, err = h.questions.SaveSpeaking(q)
		}
	case practice.TypeWriting:
		var q *practice.WritingQuestion
		if q, err = h.generator.Writing(ctx, topic, r.URL.Query().Get("ielts_type"), r.URL.Query().Get("task_number")); err == nil {
			rootID, err = h.questions.SaveWriting(q)
		}
	case practice.TypeReading:
		var q *practice.ReadingPractice
		if q, err = h.generator.Reading(ctx, topic); err == nil {
			rootID, err = h.questions.SaveReading(q)
		}
	case practice.TypeListening:
		var q *practice.ListeningPractice
		if q, err = h.generator.Listening(ctx, topic, r.URL.Query().Get("part")); err == nil {
			rootID, err = h.questions.SaveListening(q)
		}
	}

	if err != nil {
		if errors.Is(err, practice.ErrUnknownVariant) {
			writeError(w, http.StatusBadRequest, "unknown practice variant")
			return
		}
		if errors.Is(err, llm.ErrGeneration) {
			h.logger.Warn("generation failed", "error", err, "practice_type", practiceType, "topic", topic)
			writeError(w, http.StatusBadGateway, "question generation failed")
			return
		}
		h.logger.Error("persist practice failed", "error", err, "practice_type", practiceType)
		writeError(w, http.StatusInternalServerError, "failed to store questions")
		return
	}

	rows, err := h.questions.ListGenerated(practiceType, rootID)
	if err != nil {
		h.logger.Error("list generated failed", "error", err, "root_id", rootID)
		writeError(w, http.StatusInternalServerError, "failed to load questions")
		return
	}
	writeData(w, http.StatusOK, "Questions retrieved successfully", rows)
}
