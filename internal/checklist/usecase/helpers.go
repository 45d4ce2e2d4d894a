package usecase

import (
	"context"
	"errors"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/internal/checklist/engine"
	"remodel-checklist/internal/checklist/provider"
	"remodel-checklist/internal/checklist/repository"
)

// getSession loads a session, translating store misses into the domain error.
func (uc *implUseCase) getSession(ctx context.Context, id string) (*checklist.Session, error) {
	session, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, checklist.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "uc.getSession GetSession: %v", err)
		return nil, err
	}
	return session, nil
}

// sessionState takes a consistent snapshot of the session's engine.
func sessionState(p *provider.Provider) checklist.SessionState {
	var state checklist.SessionState
	p.View(func(e *engine.Engine) {
		state = checklist.SessionState{
			Checked:  e.CheckedStates(),
			Expanded: e.ExpandedStates(),
			Total:    e.TotalProgress(),
		}
	})
	return state
}
