package usecase

import (
	"context"
	"time"

	"remodel-checklist/internal/checklist/repository/memory"
	"remodel-checklist/internal/checklist/template"
	"remodel-checklist/pkg/gcalendar"
	"remodel-checklist/pkg/log"
)

// mockCalendar is a hand-written Calendar stub for tests.
type mockCalendar struct {
	getEvent     *gcalendar.Event
	getEventErr  error
	created      []gcalendar.CreateEventRequest
	createdEvent *gcalendar.Event
	createErr    error
}

func (m *mockCalendar) GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error) {
	return m.getEvent, m.getEventErr
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.created = append(m.created, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.createdEvent != nil {
		return m.createdEvent, nil
	}
	return &gcalendar.Event{ID: "created-event", Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

// newTestUseCase wires a use case against the real in-memory store and the
// built-in template registry.
func newTestUseCase(cal Calendar) *implUseCase {
	l := log.NewNop()
	registry, _ := template.NewRegistry(l, "")
	store := memory.New(l, 100, time.Hour)
	return New(l, store, registry, cal, "primary")
}
