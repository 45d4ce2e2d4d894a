package usecase

import (
	"context"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/internal/checklist/engine"
)

// ToggleItem flips one item with the engine's cascade rules. Unknown item
// ids are a tolerated no-op; the returned state is authoritative either way.
func (uc *implUseCase) ToggleItem(ctx context.Context, input checklist.ToggleItemInput) (checklist.StateOutput, error) {
	session, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return checklist.StateOutput{}, err
	}

	session.Provider.Update(func(e *engine.Engine) {
		e.ToggleItem(input.ItemID)
	})

	return checklist.StateOutput{State: sessionState(session.Provider)}, nil
}

// ToggleExpanded flips a parent's expanded state.
func (uc *implUseCase) ToggleExpanded(ctx context.Context, input checklist.ToggleItemInput) (checklist.StateOutput, error) {
	session, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return checklist.StateOutput{}, err
	}

	session.Provider.Update(func(e *engine.Engine) {
		e.ToggleExpanded(input.ItemID)
	})

	return checklist.StateOutput{State: sessionState(session.Provider)}, nil
}

// SetItemChecked writes one item's state directly without cascading, for
// restores and programmatic control.
func (uc *implUseCase) SetItemChecked(ctx context.Context, input checklist.SetCheckedInput) (checklist.StateOutput, error) {
	session, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return checklist.StateOutput{}, err
	}

	session.Provider.Update(func(e *engine.Engine) {
		e.SetItemChecked(input.ItemID, input.Checked)
	})

	return checklist.StateOutput{State: sessionState(session.Provider)}, nil
}

// ResetItems unchecks everything and collapses every parent.
func (uc *implUseCase) ResetItems(ctx context.Context, sessionID string) (checklist.StateOutput, error) {
	session, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return checklist.StateOutput{}, err
	}

	session.Provider.Update(func(e *engine.Engine) {
		e.Reset()
	})

	uc.l.Infof(ctx, "Session %s reset", sessionID)

	return checklist.StateOutput{State: sessionState(session.Provider)}, nil
}
