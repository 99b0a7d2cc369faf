// Package session holds console sessions in memory. Sessions carry
// the backend bearer token for their user; nothing is persisted
// across restarts because the backend API owns all durable state.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/good-yellow-bee/siteboard/internal/metrics"
	"github.com/good-yellow-bee/siteboard/internal/models"
)

// Session is one authenticated console session.
type Session struct {
	ID        string
	Token     string // backend bearer token
	UserID    int64
	Name      string
	Email     string
	Role      models.Role
	CreatedAt time.Time
	ExpiresAt time.Time
}

// User returns the session's user as a model.
func (s *Session) User() *models.User {
	return &models.User{
		ID:       s.UserID,
		FullName: s.Name,
		Email:    s.Email,
		Role:     s.Role,
	}
}

// IsAuthenticated reports whether the session is live.
func (s *Session) IsAuthenticated() bool {
	return s != nil && time.Now().Before(s.ExpiresAt)
}

// Store is an in-memory session store with TTL-based expiry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	onEvict  func(id string)
}

// NewStore creates a store with the default session TTL.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
	go s.cleanup()
	return s
}

// Create creates a session for a user with the store's default TTL.
func (s *Store) Create(user *models.User, token string) (*Session, error) {
	return s.CreateWithTTL(user, token, s.ttl)
}

// CreateWithTTL creates a session with an explicit TTL, used when the
// backend token expires before the default session lifetime.
func (s *Store) CreateWithTTL(user *models.User, token string, ttl time.Duration) (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        id,
		Token:     token,
		UserID:    user.ID,
		Name:      user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}

	s.mu.Lock()
	s.sessions[id] = session
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	return session, nil
}

// OnEvict registers a callback invoked with the session id after a
// session leaves the store, whether by logout or by TTL expiry. State
// keyed on session ids elsewhere hangs off this to get released with
// the session. Only one callback is supported.
func (s *Store) OnEvict(fn func(id string)) {
	s.mu.Lock()
	s.onEvict = fn
	s.mu.Unlock()
}

// Get returns a live session by id. A session found expired is
// evicted on the spot rather than left for the sweep.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) {
		s.Delete(id)
		return nil, false
	}
	return session, true
}

// Delete removes a session. Used on logout and on stale cookies.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	_, existed := s.sessions[id]
	delete(s.sessions, id)
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	fn := s.onEvict
	s.mu.Unlock()

	// The callback runs outside the lock; it may call back into the
	// store.
	if existed && fn != nil {
		fn(id)
	}
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		var expired []string
		s.mu.Lock()
		for id, session := range s.sessions {
			if time.Now().After(session.ExpiresAt) {
				delete(s.sessions, id)
				expired = append(expired, id)
			}
		}
		metrics.SessionsActive.Set(float64(len(s.sessions)))
		fn := s.onEvict
		s.mu.Unlock()

		if fn != nil {
			for _, id := range expired {
				fn(id)
			}
		}
	}
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
