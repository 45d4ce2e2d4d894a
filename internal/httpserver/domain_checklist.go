package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	checklistHTTP "remodel-checklist/internal/checklist/delivery/http"
	"remodel-checklist/internal/checklist/repository/memory"
	"remodel-checklist/internal/checklist/template"
	"remodel-checklist/internal/checklist/usecase"
)

// setupChecklistDomain initializes the checklist domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l, ...)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv *HTTPServer) setupChecklistDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Template registry + repository
	registry, err := template.NewRegistry(srv.l, srv.templatesPath)
	if err != nil {
		return err
	}
	store := memory.New(srv.l, srv.sessionCapacity, srv.sessionTTL)

	// 2. UseCase. A typed nil client must not end up inside the interface.
	var cal usecase.Calendar
	if srv.calendar != nil {
		cal = srv.calendar
	}
	uc := usecase.New(srv.l, store, registry, cal, srv.calendarID)

	// 3. HTTP Handler
	h := checklistHTTP.New(srv.l, uc, uc)

	// 4. Routes: registers /api/v1/checklists/...
	checklistHTTP.RegisterRoutes(api.Group("/checklists"), h)

	srv.l.Infof(ctx, "Checklist domain registered (%d templates loaded)", len(registry.List()))
	return nil
}
