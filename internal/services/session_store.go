package services

import (
	"sync"

	"expense-client/internal/models"
)

// SessionStore holds the published session state. Subscribers are called
// synchronously, in publication order, outside the store lock.
type SessionStore struct {
	mu      sync.RWMutex
	state   models.SessionState
	nextID  int
	subs    map[int]func(models.SessionState)
	order   []int
	publish sync.Mutex
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		state: models.InitialSessionState(),
		subs:  make(map[int]func(models.SessionState)),
	}
}

func (s *SessionStore) Current() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn for future publications. The returned func is
// idempotent.
func (s *SessionStore) Subscribe(fn func(models.SessionState)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// set replaces the state and notifies subscribers. Only the session service
// calls it.
func (s *SessionStore) set(state models.SessionState) {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	s.state = state
	fns := make([]func(models.SessionState), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
