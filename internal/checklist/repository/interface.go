package repository

import (
	"context"

	"remodel-checklist/internal/checklist"
)

// Repository is the composed interface for the checklist domain data store.
type Repository interface {
	SessionRepository
}

// SessionRepository defines all data access methods for the Session entity.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *checklist.Session) error
	GetSession(ctx context.Context, id string) (*checklist.Session, error)
	ListSessions(ctx context.Context) ([]*checklist.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
