// Package session keeps one calculator per browser session and expires the
// ones that have gone idle.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

type entry struct {
	mu       sync.Mutex
	calc     *calculator.Calculator
	lastUsed time.Time
}

// Store maps session IDs to calculators. Events on one session are applied
// one at a time; different sessions do not block each other.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets how long a session may stay idle before it is expired. A zero
// TTL disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func withClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      30 * time.Minute,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session in the calculator's initial state.
func (s *Store) Create() (string, calculator.Display) {
	id := uuid.New().String()
	calc := calculator.New()

	s.mu.Lock()
	s.sessions[id] = &entry{calc: calc, lastUsed: s.now()}
	n := len(s.sessions)
	s.mu.Unlock()

	sessionsActive.Set(float64(n))
	sessionsCreated.Inc()
	s.logger.Debug("session created", zap.String("session_id", id), zap.Int("active", n))

	return id, calc.Display()
}

// Do runs fn with exclusive access to the session's calculator.
func (s *Store) Do(id string, fn func(*calculator.Calculator) error) error {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// The session may have been expired or deleted while we waited.
	s.mu.RLock()
	live := s.sessions[id] == e
	s.mu.RUnlock()
	if !live {
		return ErrNotFound
	}

	e.lastUsed = s.now()
	return fn(e.calc)
}

// Delete removes a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	sessionsActive.Set(float64(n))
	s.logger.Debug("session deleted", zap.String("session_id", id), zap.Int("active", n))
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Expire drops every session idle for longer than the TTL and returns how
// many were removed.
func (s *Store) Expire() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []string
	for id, e := range s.sessions {
		// A session busy with an event is not idle.
		if !e.mu.TryLock() {
			continue
		}
		if e.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
		e.mu.Unlock()
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if len(expired) > 0 {
		sessionsActive.Set(float64(n))
		sessionsExpired.Add(float64(len(expired)))
		s.logger.Info("expired idle sessions",
			zap.Int("expired", len(expired)),
			zap.Int("active", n),
			zap.Duration("ttl", s.ttl),
		)
	}
	return len(expired)
}

// Run expires idle sessions every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Expire()
		}
	}
}
