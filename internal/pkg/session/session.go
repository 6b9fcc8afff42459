package session

import (
	"context"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Session holds the bearer token of one signed-in dashboard user.
// It is set on login and cleared on logout or when the backend answers 401.
type Session struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

func New() *Session {
	return &Session{now: time.Now}
}

// FromToken returns a session already holding token.
func FromToken(token string) *Session {
	s := New()
	s.Set(token)
	return s
}

// Set stores token and, when the token is a JWT, remembers its expiry.
// Opaque tokens are accepted with no known expiry.
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiresAt = tokenExpiry(token)
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt reports the token expiry, if the token carries one.
func (s *Session) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt, !s.expiresAt.IsZero()
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
}

// IsAuthenticated reports whether a token is held and not known to be expired.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return false
	}
	return s.expiresAt.IsZero() || s.now().Before(s.expiresAt)
}

// AuthorizationHeader returns the value for the Authorization header, or "" when signed out.
func (s *Session) AuthorizationHeader() string {
	token := s.Token()
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

// tokenExpiry reads the exp claim without verifying the signature.
// The backend owns the signing key; this is only used to fail fast on stale tokens.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	parsed, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		return time.Time{}
	}
	return parsed.Expiration()
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
