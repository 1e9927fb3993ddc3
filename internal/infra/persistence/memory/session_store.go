// Package memory keeps process-local state that does not outlive the service.
package memory

import (
	"context"
	"sort"
	"sync"

	"checkout/internal/domain/checkout"
	"checkout/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*checkout.Session
}

// NewSessionStore returns an empty in-process session store.
func NewSessionStore() repository.SessionStore {
	return &sessionStore{sessions: make(map[uuid.UUID]*checkout.Session)}
}

func (s *sessionStore) Save(_ context.Context, session *checkout.Session) error {
	if session == nil {
		return errors.New("session is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session

	return nil
}

func (s *sessionStore) Get(_ context.Context, id uuid.UUID) (*checkout.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

func (s *sessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(s.sessions, id)

	return nil
}

// ListByOperator returns the operator's sessions, oldest first.
func (s *sessionStore) ListByOperator(_ context.Context, operatorID uuid.UUID) ([]*checkout.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sessions []*checkout.Session
	for _, session := range s.sessions {
		if session.OperatorID == operatorID {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return sessions, nil
}
