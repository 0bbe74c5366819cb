package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/minhngdev/lingopad/internal/auth"
	"github.com/minhngdev/lingopad/internal/chat"
	"github.com/minhngdev/lingopad/internal/handler"
	"github.com/minhngdev/lingopad/internal/llm"
	"github.com/minhngdev/lingopad/internal/middleware"
	"github.com/minhngdev/lingopad/internal/practice"
	"github.com/minhngdev/lingopad/internal/store"
	ws "github.com/minhngdev/lingopad/internal/websocket"
)

// Config carries the server's external settings.
type Config struct {
	TokenSecret string
	ImageDir    string
	StaticDir   string
}

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	tokens      *auth.TokenService
	authH       *handler.AuthHandler
	messageH    *handler.MessageHandler
	practiceH   *handler.PracticeHandler
	vocabH      *handler.VocabHandler
	rateLimiter *middleware.RateLimiter
	staticDir   string
	logger      *slog.Logger
}

func New(db *sql.DB, completer llm.Completer, cfg Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	tokens := auth.NewTokenService(cfg.TokenSecret)

	userStore := store.NewUserStore(db)
	messageStore := store.NewMessageStore(db)
	questionStore := store.NewQuestionStore(db)
	vocabStore := store.NewVocabStore(db)

	bot := chat.NewBot(completer, messageStore, logger)
	detector := chat.NewErrorDetector(completer)
	generator := practice.NewGenerator(completer)

	return &Server{
		db:          db,
		hub:         hub,
		tokens:      tokens,
		authH:       handler.NewAuthHandler(userStore, tokens, logger),
		messageH:    handler.NewMessageHandler(messageStore, bot, detector, hub, logger),
		practiceH:   handler.NewPracticeHandler(generator, questionStore, logger),
		vocabH:      handler.NewVocabHandler(vocabStore, cfg.ImageDir, logger),
		rateLimiter: middleware.NewRateLimiter(),
		staticDir:   cfg.StaticDir,
		logger:      logger,
	}
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/v1/auth/register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("POST /api/v1/auth/login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("POST /api/v1/auth/refresh", s.authH.Refresh)
	outerMux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Everything else requires a valid token.
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.tokens)
	outerMux.Handle("/api/v1/", authMiddleware(protectedMux))
	outerMux.Handle("GET /ws", authMiddleware(ws.HandleWebSocket(s.hub, s.logger.With("component", "websocket"))))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	// Chat
	mux.HandleFunc("POST /api/v1/messages", s.messageH.Create)
	mux.HandleFunc("GET /api/v1/messages", s.messageH.List)
	mux.HandleFunc("POST /api/v1/suggestions", s.messageH.Suggestions)

	// Practice content
	mux.HandleFunc("GET /api/v1/practice/{practice_type}", s.practiceH.Get)

	// Vocabulary
	mux.HandleFunc("GET /api/v1/vocabulary-list", s.vocabH.Lists)
	mux.HandleFunc("POST /api/v1/vocabulary", s.vocabH.CreateList)
	mux.HandleFunc("PATCH /api/v1/vocabulary", s.vocabH.UpdateList)
	mux.HandleFunc("DELETE /api/v1/vocabulary/{list_id}", s.vocabH.DeleteList)
	mux.HandleFunc("GET /api/v1/vocabulary-item/{list_id}", s.vocabH.Items)
	mux.HandleFunc("POST /api/v1/vocabulary-item", s.vocabH.CreateItem)
	mux.HandleFunc("PATCH /api/v1/vocabulary-item", s.vocabH.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/vocabulary-item/{item_id}", s.vocabH.DeleteItem)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
