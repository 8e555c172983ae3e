package order

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("order session not found")

type Session struct {
	ID    string
	Store *Store

	lastSeen time.Time
}

// Registry quản lý các phiên đặt vé đang mở, mỗi phiên một Store
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	clock    clockwork.Clock
	log      *zap.Logger
}

func NewRegistry(ttl time.Duration, clock clockwork.Clock, log *zap.Logger) *Registry {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		clock:    clock,
		log:      log,
	}
}

func (r *Registry) Create() *Session {
	s := &Session{
		ID:       uuid.New().String(),
		Store:    NewStore(r.log),
		lastSeen: r.clock.Now(),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	r.log.Info("order session opened", zap.String("sessionId", s.ID))
	return s
}

// Get trả về phiên và gia hạn thời gian sống của nó
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = r.clock.Now()
	return s, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep xoá các phiên không hoạt động quá ttl, trả về số phiên đã xoá
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	now := r.clock.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.log.Info("expired order sessions removed", zap.Int("count", removed))
	}
	return removed
}
