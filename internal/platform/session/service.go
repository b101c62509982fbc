package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medgate/medgate/internal/platform/gateway"
)

// Service drives the login lifecycle against the auth backend.
type Service struct {
	store   Store
	gw      *gateway.Client
	codec   *TokenCodec
	authURL string
	ttl     time.Duration
}

func NewService(store Store, gw *gateway.Client, codec *TokenCodec, authURL string, ttl time.Duration) *Service {
	return &Service{store: store, gw: gw, codec: codec, authURL: authURL, ttl: ttl}
}

// Credentials is the login form. The auth backend authenticates by email but
// expects it in the username field.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterForm is the sign-up payload forwarded to the auth backend.
type RegisterForm struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginResult discriminates a rejected login from an established session.
// Failed is set for credential and validation rejections; infrastructure
// failures are returned as errors instead.
type LoginResult struct {
	Failed  bool
	Message string
	Token   string
	User    User
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges credentials for a backend token, stores the session and
// returns a signed client token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	payload := map[string]string{
		"username": creds.Email,
		"password": creds.Password,
	}
	var resp authResponse
	if err := s.gw.Post(ctx, s.authURL+"login/", payload, &resp); err != nil {
		return s.rejected(err, "Login failed. Please check your credentials.")
	}
	return s.establish(ctx, resp)
}

// Register creates an account and logs it straight in; the auth backend
// returns a token with the new user.
func (s *Service) Register(ctx context.Context, form RegisterForm) (*LoginResult, error) {
	var resp authResponse
	if err := s.gw.Post(ctx, s.authURL+"register/", form, &resp); err != nil {
		return s.rejected(err, "Registration failed.")
	}
	return s.establish(ctx, resp)
}

func (s *Service) establish(ctx context.Context, resp authResponse) (*LoginResult, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		User:      resp.User,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		return nil, err
	}
	signed, err := s.codec.Issue(sess)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: signed, User: sess.User}, nil
}

func (s *Service) rejected(err error, fallback string) (*LoginResult, error) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.IsValidation() {
		return &LoginResult{Failed: true, Message: authMessage(apiErr.Body, fallback)}, nil
	}
	return nil, err
}

// authMessage extracts the auth backend's rejection reason. The backend uses
// non_field_errors for credential failures, detail for throttling and message
// for custom rejections.
func authMessage(body []byte, fallback string) string {
	var payload struct {
		NonFieldErrors []string `json:"non_field_errors"`
		Detail         string   `json:"detail"`
		Message        string   `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case len(payload.NonFieldErrors) > 0:
			return payload.NonFieldErrors[0]
		case payload.Detail != "":
			return payload.Detail
		case payload.Message != "":
			return payload.Message
		}
	}
	if msg := gateway.Flatten(body); msg != gateway.GenericFailure {
		return msg
	}
	return fallback
}

// Verify confirms the session's backend token is still accepted and refreshes
// the stored profile. A rejected token tears the session down so a stale
// client cannot keep a half-dead session alive.
func (s *Service) Verify(ctx context.Context, id string) (*Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var user User
	authCtx := gateway.WithToken(ctx, sess.Token)
	if err := s.gw.Get(authCtx, s.authURL+"user/", &user); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && apiErr.IsValidation() {
			if delErr := s.store.Delete(ctx, id); delErr != nil {
				log.Warn().Err(delErr).Str("session_id", id).Msg("failed to clear rejected session")
			}
			return nil, ErrNotFound
		}
		return nil, err
	}

	sess.User = user
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		log.Warn().Err(err).Str("session_id", id).Msg("failed to refresh session profile")
	}
	return sess, nil
}

// Resolve loads the session for a request without revalidating against the
// auth backend; the middleware uses it on every call.
func (s *Service) Resolve(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

// ParseToken validates a client token and returns its session ID.
func (s *Service) ParseToken(raw string) (string, error) {
	return s.codec.Parse(raw)
}

// Logout invalidates the backend token and drops the session. Backend
// failures are logged but never block the local teardown.
func (s *Service) Logout(ctx context.Context, id string) error {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	authCtx := gateway.WithToken(ctx, sess.Token)
	if err := s.gw.Post(authCtx, s.authURL+"logout/", nil, nil); err != nil {
		log.Warn().Err(err).Str("session_id", id).Msg("backend logout failed")
	}
	return s.store.Delete(ctx, id)
}
