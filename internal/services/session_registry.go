package services

import (
	"context"
	"sync"
	"time"
)

type session struct {
	controller *BookingController
	lastUsed   time.Time
}

// SessionRegistry keeps one BookingController per signed-in owner, the
// server-side stand-in for a mounted booking screen.
type SessionRegistry struct {
	mu            sync.Mutex
	sessions      map[string]*session
	newController func(ownerId string) *BookingController
	idleTTL       time.Duration
	now           func() time.Time
}

func NewSessionRegistry(newController func(ownerId string) *BookingController, idleTTL time.Duration) *SessionRegistry {
	return &SessionRegistry{
		sessions:      make(map[string]*session),
		newController: newController,
		idleTTL:       idleTTL,
		now:           time.Now,
	}
}

// Open returns the owner's controller, creating it and running the mount
// refresh on first use. The controller is returned even if that refresh fails.
func (r *SessionRegistry) Open(ctx context.Context, ownerId string) (*BookingController, bool, error) {
	r.mu.Lock()
	r.evictIdle()
	if s, ok := r.sessions[ownerId]; ok {
		s.lastUsed = r.now()
		r.mu.Unlock()
		return s.controller, false, nil
	}
	c := r.newController(ownerId)
	r.sessions[ownerId] = &session{controller: c, lastUsed: r.now()}
	r.mu.Unlock()

	return c, true, c.Refresh(ctx)
}

func (r *SessionRegistry) Get(ownerId string) (*BookingController, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictIdle()
	s, ok := r.sessions[ownerId]
	if !ok {
		return nil, false
	}
	s.lastUsed = r.now()
	return s.controller, true
}

func (r *SessionRegistry) Close(ownerId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, ownerId)
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SessionRegistry) evictIdle() {
	if r.idleTTL <= 0 {
		return
	}
	cutoff := r.now().Add(-r.idleTTL)
	for id, s := range r.sessions {
		if s.lastUsed.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}
