package usecase

import (
	"context"

	"remodel-checklist/internal/checklist/repository"
	"remodel-checklist/internal/checklist/template"
	"remodel-checklist/pkg/gcalendar"
	"remodel-checklist/pkg/log"
)

// Calendar is the slice of the Google Calendar client the checklist domain
// needs. Nil when the integration is not configured.
type Calendar interface {
	GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of checklist.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	registry   *template.Registry
	calendar   Calendar
	calendarID string
}

// New creates a new checklist UseCase implementation. calendar may be nil.
func New(l log.Logger, repo repository.Repository, registry *template.Registry, calendar Calendar, calendarID string) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		registry:   registry,
		calendar:   calendar,
		calendarID: calendarID,
	}
}
