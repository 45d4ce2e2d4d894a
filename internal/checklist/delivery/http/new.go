package http

import (
	"remodel-checklist/internal/checklist"
	"remodel-checklist/pkg/log"
)

type handler struct {
	l         log.Logger
	uc        checklist.UseCase
	providers checklist.ProviderResolver
}

// New creates a new HTTP handler for the checklist domain.
func New(l log.Logger, uc checklist.UseCase, providers checklist.ProviderResolver) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		providers: providers,
	}
}
