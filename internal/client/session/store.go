// Package session holds the client's auth state for the lifetime of the
// process: bearer token, token scheme and a cached user record. Nothing here
// is ever written to disk; a restarted client starts anonymous, and token
// validity is decided only by the server's 401 responses.
package session

import (
	"fmt"
	"sync"

	"github.com/khebbar/ayuda-cli/internal/client/models"
)

const defaultScheme = "bearer"

// Store is the single session for this process. Mutation happens from the
// auth flow and the gateway's 401 hook; everything else only reads.
type Store struct {
	mu     sync.RWMutex
	token  string
	scheme string
	user   *models.User
}

func NewStore() *Store {
	return &Store{}
}

// SetToken saves the bearer token and its scheme. An empty scheme falls back
// to "bearer".
func (s *Store) SetToken(token, scheme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if scheme == "" {
		scheme = defaultScheme
	}
	s.scheme = scheme
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Scheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.scheme == "" {
		return defaultScheme
	}
	return s.scheme
}

// AuthHeader reconstructs the "<scheme> <token>" header value. The second
// return value is false when no token is stored.
func (s *Store) AuthHeader() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", false
	}
	scheme := s.scheme
	if scheme == "" {
		scheme = defaultScheme
	}
	return fmt.Sprintf("%s %s", scheme, s.token), true
}

// SetUser caches the authenticated user record. The cache is read-through:
// it is repopulated from the server after every profile mutation.
func (s *Store) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Clear wipes token, scheme and cached user in one step. Called on logout and
// by the gateway on any 401.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.scheme = ""
	s.user = nil
}

// IsAuthenticated reports whether a token is present. No expiry checking is
// performed locally.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
