package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/minhngdev/lingopad/internal/auth"
	"github.com/minhngdev/lingopad/internal/model"
	"github.com/minhngdev/lingopad/internal/store"
)

const minPasswordLength = 8

type AuthHandler struct {
	users  *store.UserStore
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewAuthHandler(users *store.UserStore, tokens *auth.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		logger: logger.With("component", "auth"),
	}
}

type authResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	User         *model.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("hash password failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	// The unique index on email is the source of truth; racing registrations
	// both reach the insert and one loses.
	user, err := h.users.Create(req.Name, req.Email, hash)
	if err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "the user with this email already exists")
			return
		}
		h.logger.Error("create user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	pair, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		h.logger.Error("issue tokens failed", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Success:      true,
		Message:      "Registration successful",
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		h.logger.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	// The response never says which of the two checks failed.
	if user == nil {
		h.logger.Info("login rejected", "reason", "unknown email")
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		h.logger.Info("login rejected", "reason", "wrong password", "user_id", user.ID)
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	pair, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		h.logger.Error("issue tokens failed", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Success:      true,
		Message:      "Login successful",
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	pair, err := h.tokens.Refresh(req.RefreshToken)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
