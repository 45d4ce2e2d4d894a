package checklist

import (
	"context"

	"remodel-checklist/internal/checklist/provider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Templates
	ListTemplates(ctx context.Context) (ListTemplatesOutput, error)

	// Session lifecycle
	CreateSession(ctx context.Context, input CreateSessionInput) (SessionDetailOutput, error)
	DetailSession(ctx context.Context, id string) (SessionDetailOutput, error)
	ListSessions(ctx context.Context) (ListSessionsOutput, error)
	DeleteSession(ctx context.Context, id string) error

	// Engine operations. Unknown item ids are tolerated (no-op) by design;
	// only unknown sessions produce errors.
	ToggleItem(ctx context.Context, input ToggleItemInput) (StateOutput, error)
	ToggleExpanded(ctx context.Context, input ToggleItemInput) (StateOutput, error)
	SetItemChecked(ctx context.Context, input SetCheckedInput) (StateOutput, error)
	ResetItems(ctx context.Context, sessionID string) (StateOutput, error)

	// Progress queries
	Progress(ctx context.Context, sessionID string) (ProgressOutput, error)

	// Calendar
	ScheduleFollowUp(ctx context.Context, input FollowUpInput) (FollowUpOutput, error)
}

// ProviderResolver exposes the shared engine handle of a session so request
// middleware can put it in scope for handlers.
type ProviderResolver interface {
	ResolveProvider(ctx context.Context, sessionID string) (*provider.Provider, error)
}
