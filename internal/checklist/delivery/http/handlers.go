package http

import (
	"github.com/gin-gonic/gin"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/internal/checklist/engine"
	"remodel-checklist/internal/checklist/provider"
	"remodel-checklist/pkg/response"
)

// ListTemplates godoc
// @Summary     List checklist templates
// @Description Returns all configured checklist templates.
// @Tags        Checklists
// @Produce     json
// @Success     200 {object} listTemplatesResp
// @Router      /api/v1/checklists/templates [GET]
func (h *handler) ListTemplates(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTemplates(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTemplates: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTemplatesResp(output))
}

// CreateSession godoc
// @Summary     Start a checklist session
// @Description Creates a live checklist from a template, optionally linked to a calendar event.
// @Tags        Checklists
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq true "Session parameters"
// @Success     200 {object} sessionDetailResp
// @Failure     404 {object} response.Resp "Template not found"
// @Failure     503 {object} response.Resp "Calendar integration not configured"
// @Router      /api/v1/checklists/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionDetailResp(output))
}

// ListSessions godoc
// @Summary     List checklist sessions
// @Tags        Checklists
// @Produce     json
// @Success     200 {object} listSessionsResp
// @Router      /api/v1/checklists/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListSessions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListSessionsResp(output))
}

// DetailSession godoc
// @Summary     Get a checklist session
// @Description Returns the session, its tree and the current state snapshot.
// @Tags        Checklists
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/sessions/{id} [GET]
func (h *handler) DetailSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DetailSession(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionDetailResp(output))
}

// DeleteSession godoc
// @Summary     Delete a checklist session
// @Tags        Checklists
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteSession(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// State godoc
// @Summary     Read session state
// @Description Returns the checked/expanded maps straight from the session's shared engine.
// @Tags        Checklists
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} stateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/sessions/{id}/state [GET]
func (h *handler) State(c *gin.Context) {
	p := provider.FromContext(c.Request.Context())

	var state checklist.SessionState
	p.View(func(e *engine.Engine) {
		state = checklist.SessionState{
			Checked:  e.CheckedStates(),
			Expanded: e.ExpandedStates(),
			Total:    e.TotalProgress(),
		}
	})

	response.OK(c, newStateResp(state))
}

// ToggleItem godoc
// @Summary     Toggle a checklist item
// @Description Flips one item with cascade rules; unknown item ids are a safe no-op.
// @Tags        Checklists
// @Produce     json
// @Param       id     path string true "Session ID"
// @Param       itemID path string true "Item ID"
// @Success     200 {object} stateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checklists/sessions/{id}/items/{itemID}/toggle [POST]
func (h *handler) ToggleItem(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleItem(ctx, checklist.ToggleItemInput{
		SessionID: c.Param("id"),
		ItemID:    c.Param("itemID"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(output.State))
}

// ToggleExpanded godoc
// @Summary     Toggle a parent item's expansion
// @Description Flips expanded state; leaves and unknown ids are a safe no-op.
// @Tags        Checklists
// @Produce     json
// @Param       id     path string true "Session ID"
// @Param       itemID path string true "Item ID"
// @Success     200 {object} stateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checklists/sessions/{id}/items/{itemID}/expand [POST]
func (h *handler) ToggleExpanded(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleExpanded(ctx, checklist.ToggleItemInput{
		SessionID: c.Param("id"),
		ItemID:    c.Param("itemID"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleExpanded: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(output.State))
}

// SetItemChecked godoc
// @Summary     Set one item's checked state directly
// @Description Non-cascading write, intended for state restoration.
// @Tags        Checklists
// @Accept      json
// @Produce     json
// @Param       id     path string        true "Session ID"
// @Param       itemID path string        true "Item ID"
// @Param       body   body setCheckedReq true "New state"
// @Success     200 {object} stateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checklists/sessions/{id}/items/{itemID} [PUT]
func (h *handler) SetItemChecked(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetCheckedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetItemChecked(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetItemChecked: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(output.State))
}

// ResetItems godoc
// @Summary     Reset a session
// @Description Unchecks every item and collapses every parent.
// @Tags        Checklists
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} stateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checklists/sessions/{id}/reset [POST]
func (h *handler) ResetItems(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ResetItems(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ResetItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(output.State))
}

// Progress godoc
// @Summary     Session progress
// @Description Total, parent-only and per-parent completion in one snapshot.
// @Tags        Checklists
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} progressResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checklists/sessions/{id}/progress [GET]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Progress(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Progress: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProgressResp(output))
}

// ScheduleFollowUp godoc
// @Summary     Schedule a follow-up meeting
// @Description Creates a calendar event for the session's next meeting.
// @Tags        Checklists
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Session ID"
// @Param       body body followUpReq true "Follow-up parameters"
// @Success     200 {object} followUpResp
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     503 {object} response.Resp "Calendar integration not configured"
// @Router      /api/v1/checklists/sessions/{id}/followup [POST]
func (h *handler) ScheduleFollowUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFollowUpReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ScheduleFollowUp(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleFollowUp: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newFollowUpResp(output))
}
