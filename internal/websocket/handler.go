package websocket

import (
	"log/slog"
	"net/http"

	ws "github.com/coder/websocket"

	"github.com/minhngdev/lingopad/internal/auth"
)

// HandleWebSocket returns an HTTP handler that upgrades authenticated
// connections to WebSocket and runs them as Hub clients. It must sit behind
// the auth middleware.
func HandleWebSocket(hub *Hub, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r.Context())
		if userID == 0 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true, // Mobile and web clients connect from arbitrary origins
		})
		if err != nil {
			logger.Warn("websocket accept failed", "error", err)
			return
		}

		client := NewClient(hub, conn, userID)
		client.Run(r.Context())
	}
}
