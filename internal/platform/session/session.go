// Package session manages authenticated browser sessions. A session pairs a
// backend API token with the user profile it belongs to; it lives in Redis
// keyed by an opaque ID, and the ID travels to the client inside a signed JWT.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session ID has no live entry, either because
// it expired or because the backend rejected its token.
var ErrNotFound = errors.New("session not found")

// User is the profile returned by the auth service at login.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Session is the server-side state for one logged-in client.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions for their configured lifetime.
type Store interface {
	Save(ctx context.Context, sess *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type contextKey struct{}

// NewContext returns a context carrying the caller's session.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session placed by the auth middleware, or nil for
// unauthenticated requests.
func FromContext(ctx context.Context) *Session {
	if sess, ok := ctx.Value(contextKey{}).(*Session); ok {
		return sess
	}
	return nil
}
