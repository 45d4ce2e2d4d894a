// Package memory is an in-process session store. Sessions live in an
// expirable LRU so abandoned meeting checklists age out on their own
// instead of accumulating for the lifetime of the service.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/internal/checklist/repository"
	"remodel-checklist/pkg/log"
)

type Store struct {
	l        log.Logger
	sessions *expirable.LRU[string, *checklist.Session]
}

// New creates a session store holding at most capacity sessions, each
// evicted after ttl of existence. A zero ttl disables expiry.
func New(l log.Logger, capacity int, ttl time.Duration) *Store {
	s := &Store{l: l}
	s.sessions = expirable.NewLRU[string, *checklist.Session](
		capacity,
		func(id string, _ *checklist.Session) {
			s.l.Infof(context.Background(), "Session %s evicted from store", id)
		},
		ttl,
	)
	return s
}

func (s *Store) CreateSession(ctx context.Context, session *checklist.Session) error {
	if _, ok := s.sessions.Get(session.ID); ok {
		return repository.ErrSessionExists
	}
	s.sessions.Add(session.ID, session)
	return nil
}

func (s *Store) GetSession(ctx context.Context, id string) (*checklist.Session, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]*checklist.Session, error) {
	return s.sessions.Values(), nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if !s.sessions.Remove(id) {
		return repository.ErrSessionNotFound
	}
	return nil
}

var _ repository.Repository = (*Store)(nil)
