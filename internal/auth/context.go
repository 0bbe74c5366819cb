package auth

import "context"

type contextKey struct{}

// AuthContext carries the authenticated identity through a request.
type AuthContext struct {
	UserID int64
}

func WithAuth(ctx context.Context, a *AuthContext) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

func FromContext(ctx context.Context) (*AuthContext, bool) {
	a, ok := ctx.Value(contextKey{}).(*AuthContext)
	return a, ok
}

// UserID returns the authenticated user id, or 0 when the request is
// unauthenticated.
func UserID(ctx context.Context) int64 {
	if a, ok := FromContext(ctx); ok {
		return a.UserID
	}
	return 0
}
