package checklist

import (
	"time"

	"remodel-checklist/internal/checklist/engine"
	"remodel-checklist/internal/checklist/provider"
	"remodel-checklist/pkg/checktree"
)

// --- Domain Model ---

// Session is one live meeting checklist: a template tree plus the shared
// engine instance every observer of that session mutates and reads.
type Session struct {
	ID           string
	TemplateID   string
	TemplateName string
	Provider     *provider.Provider
	Meeting      *Meeting
	CreatedAt    time.Time
}

// Meeting is calendar metadata attached to a session.
type Meeting struct {
	EventID   string
	Summary   string
	HTMLLink  string
	StartTime time.Time
	EndTime   time.Time
}

// SessionState is a consistent snapshot of one session's engine.
type SessionState struct {
	Checked  map[string]bool
	Expanded map[string]bool
	Total    engine.AggregateProgress
}

// --- UseCase Inputs ---

type CreateSessionInput struct {
	TemplateID      string
	CalendarEventID string
}

type ToggleItemInput struct {
	SessionID string
	ItemID    string
}

type SetCheckedInput struct {
	SessionID string
	ItemID    string
	Checked   bool
}

type FollowUpInput struct {
	SessionID   string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// --- UseCase Outputs ---

type SessionDetailOutput struct {
	Session Session
	Items   checktree.Tree
	State   SessionState
}

type ListSessionsOutput struct {
	Sessions []Session
}

type StateOutput struct {
	State SessionState
}

type ProgressOutput struct {
	Total   engine.AggregateProgress
	Parents engine.AggregateProgress
	Items   map[string]engine.Progress
}

type TemplateOutput struct {
	ID    string
	Name  string
	Items checktree.Tree
}

type ListTemplatesOutput struct {
	Templates []TemplateOutput
}

type FollowUpOutput struct {
	Meeting Meeting
}
