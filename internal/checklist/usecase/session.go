package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/internal/checklist/engine"
	"remodel-checklist/internal/checklist/provider"
	"remodel-checklist/internal/checklist/repository"
)

// CreateSession starts a live checklist from a template. When a calendar
// event id is supplied the session is linked to that meeting.
func (uc *implUseCase) CreateSession(ctx context.Context, input checklist.CreateSessionInput) (checklist.SessionDetailOutput, error) {
	tpl := uc.registry.Default()
	if input.TemplateID != "" {
		var ok bool
		tpl, ok = uc.registry.Get(input.TemplateID)
		if !ok {
			return checklist.SessionDetailOutput{}, checklist.ErrTemplateNotFound
		}
	}

	session := &checklist.Session{
		ID:           uuid.NewString(),
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		Provider:     provider.New(engine.New(tpl.Items)),
		CreatedAt:    time.Now(),
	}

	if input.CalendarEventID != "" {
		if uc.calendar == nil {
			return checklist.SessionDetailOutput{}, checklist.ErrCalendarUnavailable
		}
		event, err := uc.calendar.GetEvent(ctx, uc.calendarID, input.CalendarEventID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateSession GetEvent: %v", err)
			return checklist.SessionDetailOutput{}, fmt.Errorf("failed to resolve calendar event: %w", err)
		}
		session.Meeting = &checklist.Meeting{
			EventID:   event.ID,
			Summary:   event.Summary,
			HTMLLink:  event.HtmlLink,
			StartTime: event.StartTime,
			EndTime:   event.EndTime,
		}
	}

	// Audit observer: one subscriber per session logging progress after
	// every mutation, alongside whatever the delivery layer renders.
	sessionID := session.ID
	prov := session.Provider
	prov.Subscribe(func() {
		var total engine.AggregateProgress
		prov.View(func(e *engine.Engine) { total = e.TotalProgress() })
		uc.l.Debugf(context.Background(), "Session %s progress: %d/%d (%d%%)",
			sessionID, total.Completed, total.Total, total.Percentage)
	})

	if err := uc.repo.CreateSession(ctx, session); err != nil {
		uc.l.Errorf(ctx, "uc.CreateSession CreateSession: %v", err)
		return checklist.SessionDetailOutput{}, err
	}

	uc.l.Infof(ctx, "Created checklist session %s from template %s", session.ID, tpl.ID)

	return checklist.SessionDetailOutput{
		Session: *session,
		Items:   tpl.Items,
		State:   sessionState(session.Provider),
	}, nil
}

// DetailSession returns a session with its tree and a state snapshot.
func (uc *implUseCase) DetailSession(ctx context.Context, id string) (checklist.SessionDetailOutput, error) {
	session, err := uc.getSession(ctx, id)
	if err != nil {
		return checklist.SessionDetailOutput{}, err
	}

	tpl, ok := uc.registry.Get(session.TemplateID)
	if !ok {
		// Template removed from config after the session was created.
		return checklist.SessionDetailOutput{}, checklist.ErrTemplateNotFound
	}

	return checklist.SessionDetailOutput{
		Session: *session,
		Items:   tpl.Items,
		State:   sessionState(session.Provider),
	}, nil
}

// ListSessions returns all live sessions.
func (uc *implUseCase) ListSessions(ctx context.Context) (checklist.ListSessionsOutput, error) {
	sessions, err := uc.repo.ListSessions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSessions: %v", err)
		return checklist.ListSessionsOutput{}, err
	}

	out := checklist.ListSessionsOutput{Sessions: make([]checklist.Session, 0, len(sessions))}
	for _, s := range sessions {
		out.Sessions = append(out.Sessions, *s)
	}
	return out, nil
}

// DeleteSession removes a session from the store.
func (uc *implUseCase) DeleteSession(ctx context.Context, id string) error {
	if err := uc.repo.DeleteSession(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return checklist.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		return err
	}
	return nil
}
