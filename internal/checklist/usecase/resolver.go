package usecase

import (
	"context"

	"remodel-checklist/internal/checklist/provider"
)

// ResolveProvider returns the shared engine handle for a session.
func (uc *implUseCase) ResolveProvider(ctx context.Context, sessionID string) (*provider.Provider, error) {
	session, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Provider, nil
}
