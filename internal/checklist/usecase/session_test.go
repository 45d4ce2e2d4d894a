package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/internal/checklist/template"
	"remodel-checklist/pkg/gcalendar"
)

func TestCreateSessionDefaults(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	out, err := uc.CreateSession(ctx, checklist.CreateSessionInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Session.ID == "" {
		t.Errorf("expected generated session id")
	}
	if out.Session.TemplateID != template.DefaultTemplateID {
		t.Errorf("expected default template, got %q", out.Session.TemplateID)
	}
	if out.State.Total.Completed != 0 {
		t.Errorf("new session must start unchecked, got %d", out.State.Total.Completed)
	}
	if len(out.Items) == 0 {
		t.Errorf("expected template items in output")
	}
}

func TestCreateSessionUnknownTemplate(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.CreateSession(context.Background(), checklist.CreateSessionInput{TemplateID: "ghost"})
	if !errors.Is(err, checklist.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestCreateSessionWithMeeting(t *testing.T) {
	cal := &mockCalendar{getEvent: &gcalendar.Event{
		ID:      "event-1",
		Summary: "Kitchen consult",
	}}
	uc := newTestUseCase(cal)

	out, err := uc.CreateSession(context.Background(), checklist.CreateSessionInput{CalendarEventID: "event-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Session.Meeting == nil || out.Session.Meeting.Summary != "Kitchen consult" {
		t.Errorf("expected meeting metadata on session, got %+v", out.Session.Meeting)
	}
}

func TestCreateSessionMeetingWithoutCalendar(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.CreateSession(context.Background(), checklist.CreateSessionInput{CalendarEventID: "event-1"})
	if !errors.Is(err, checklist.ErrCalendarUnavailable) {
		t.Errorf("expected ErrCalendarUnavailable, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	created, err := uc.CreateSession(ctx, checklist.CreateSessionInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Session.ID

	detail, err := uc.DetailSession(ctx, id)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Session.ID != id {
		t.Errorf("detail returned wrong session")
	}

	list, err := uc.ListSessions(ctx)
	if err != nil || len(list.Sessions) != 1 {
		t.Errorf("expected 1 session, got %d (err %v)", len(list.Sessions), err)
	}

	if err := uc.DeleteSession(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.DetailSession(ctx, id); !errors.Is(err, checklist.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := uc.DeleteSession(ctx, id); !errors.Is(err, checklist.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestScheduleFollowUp(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(cal)
	ctx := context.Background()

	created, _ := uc.CreateSession(ctx, checklist.CreateSessionInput{})
	start := time.Now().Add(24 * time.Hour)

	out, err := uc.ScheduleFollowUp(ctx, checklist.FollowUpInput{
		SessionID: created.Session.ID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Meeting.EventID != "created-event" {
		t.Errorf("unexpected event id %q", out.Meeting.EventID)
	}
	if len(cal.created) != 1 {
		t.Fatalf("expected 1 calendar create call, got %d", len(cal.created))
	}
	// Default summary names the template.
	if cal.created[0].Summary == "" {
		t.Errorf("expected default summary to be filled in")
	}
}

func TestScheduleFollowUpInvalidRange(t *testing.T) {
	uc := newTestUseCase(&mockCalendar{})
	ctx := context.Background()

	created, _ := uc.CreateSession(ctx, checklist.CreateSessionInput{})
	now := time.Now()

	_, err := uc.ScheduleFollowUp(ctx, checklist.FollowUpInput{
		SessionID: created.Session.ID,
		StartTime: now,
		EndTime:   now,
	})
	if !errors.Is(err, checklist.ErrInvalidFollowUpRange) {
		t.Errorf("expected ErrInvalidFollowUpRange, got %v", err)
	}
}
