package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies HS256 JWTs. The subject claim carries the
// user id as a decimal string.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// TokenPair is the login/refresh response body.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// IssuePair issues a fresh access/refresh token pair for the user.
func (s *TokenService) IssuePair(userID int64) (*TokenPair, error) {
	access, err := s.issue(userID, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issue(userID, RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func (s *TokenService) issue(userID int64, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the user id it was issued
// for. Any parse or validation failure comes back as ErrInvalidToken; tokens
// are interchangeable by lifetime only, so a still-valid access token is
// accepted wherever a refresh token is.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// Refresh exchanges a valid token for a new pair.
func (s *TokenService) Refresh(refreshToken string) (*TokenPair, error) {
	userID, err := s.Verify(refreshToken)
	if err != nil {
		return nil, err
	}
	return s.IssuePair(userID)
}
