package restapi

import (
	"sync"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
)

// Session holds the bearer token of the signed-in admin
type Session struct {
	mu    sync.RWMutex
	token string
}

var _ interfaces.TokenSource = &Session{}

// NewSession creates a session, optionally with a pre-issued token
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the current token, or empty when signed out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set replaces the current token
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}
