package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store holds in-flight checkout sessions in memory. Sessions are short
// lived: they disappear on close, on a successful handoff, or when the TTL
// lapses. There is nothing to persist.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a Store. A non-positive ttl falls back to 30 minutes.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open starts a fresh session for a product at the initial step.
func (s *Store) Open(productID, productName string, amount decimal.Decimal) *Session {
	sess := &Session{
		id:          uuid.NewString(),
		productID:   productID,
		productName: productName,
		amount:      amount,
		step:        StepSelectMethod,
		createdAt:   s.now(),
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the live session for id, or false if it never existed or has
// expired. Expired sessions are dropped on access.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.createdAt) > s.ttl {
		s.Close(id)
		return nil, false
	}
	return sess, true
}

// Close destroys a session and every transient field with it. Closing an
// unknown id is a no-op.
func (s *Store) Close(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
