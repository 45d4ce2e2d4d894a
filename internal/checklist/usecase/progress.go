package usecase

import (
	"context"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/internal/checklist/engine"
	"remodel-checklist/pkg/checktree"
)

// Progress reports total, parent-only and per-parent completion for a
// session in one consistent snapshot.
func (uc *implUseCase) Progress(ctx context.Context, sessionID string) (checklist.ProgressOutput, error) {
	session, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return checklist.ProgressOutput{}, err
	}

	var out checklist.ProgressOutput
	session.Provider.View(func(e *engine.Engine) {
		out.Total = e.TotalProgress()
		out.Parents = e.ParentProgress()
		out.Items = make(map[string]engine.Progress)
		for _, it := range checktree.Flatten(e.Tree()) {
			if checktree.HasChildren(it) {
				out.Items[it.ID] = e.ItemProgress(it.ID)
			}
		}
	})

	return out, nil
}
