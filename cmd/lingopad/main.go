package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/minhngdev/lingopad/internal/database"
	"github.com/minhngdev/lingopad/internal/llm"
	"github.com/minhngdev/lingopad/internal/logging"
	"github.com/minhngdev/lingopad/internal/server"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.Setup(os.Getenv("LINGOPAD_LOG_LEVEL"))

	port := os.Getenv("LINGOPAD_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("LINGOPAD_DB_PATH")
	if dbPath == "" {
		dbPath = "lingopad.db"
	}

	secret := os.Getenv("LINGOPAD_JWT_SECRET")
	if secret == "" {
		logger.Error("LINGOPAD_JWT_SECRET is required")
		os.Exit(1)
	}

	apiKey := os.Getenv("LINGOPAD_LLM_API_KEY")
	if apiKey == "" {
		logger.Error("LINGOPAD_LLM_API_KEY is required")
		os.Exit(1)
	}

	staticDir := os.Getenv("LINGOPAD_STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var llmOpts []llm.Option
	if model := os.Getenv("LINGOPAD_LLM_MODEL"); model != "" {
		llmOpts = append(llmOpts, llm.WithModel(model))
	}
	completer := llm.NewClient(apiKey, llmOpts...)

	srv := server.New(db, completer, server.Config{
		TokenSecret: secret,
		ImageDir:    filepath.Join(staticDir, "images"),
		StaticDir:   staticDir,
	}, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Lingopad running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
