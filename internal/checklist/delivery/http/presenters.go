package http

import (
	"time"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/internal/checklist/engine"
	"remodel-checklist/pkg/checktree"
)

// --- Request DTOs ---

type createSessionReq struct {
	TemplateID      string `json:"template_id"       binding:"omitempty,max=128"`
	CalendarEventID string `json:"calendar_event_id" binding:"omitempty,max=256"`
}

func (r createSessionReq) validate() error { return nil }

func (r createSessionReq) toInput() checklist.CreateSessionInput {
	return checklist.CreateSessionInput{
		TemplateID:      r.TemplateID,
		CalendarEventID: r.CalendarEventID,
	}
}

// ---

type setCheckedReq struct {
	SessionID string `json:"-"` // populated from URI param
	ItemID    string `json:"-"` // populated from URI param
	Checked   *bool  `json:"checked" binding:"required"`
}

func (r setCheckedReq) validate() error { return nil }

func (r setCheckedReq) toInput() checklist.SetCheckedInput {
	return checklist.SetCheckedInput{
		SessionID: r.SessionID,
		ItemID:    r.ItemID,
		Checked:   *r.Checked,
	}
}

// ---

type followUpReq struct {
	SessionID   string    `json:"-"` // populated from URI param
	Summary     string    `json:"summary"     binding:"omitempty,max=255"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	StartTime   time.Time `json:"start_time"  binding:"required"`
	EndTime     time.Time `json:"end_time"    binding:"required"`
}

func (r followUpReq) validate() error { return nil }

func (r followUpReq) toInput() checklist.FollowUpInput {
	return checklist.FollowUpInput{
		SessionID:   r.SessionID,
		Summary:     r.Summary,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

// --- Response DTOs ---

type meetingResp struct {
	EventID   string    `json:"event_id"`
	Summary   string    `json:"summary"`
	HTMLLink  string    `json:"html_link,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func newMeetingResp(m *checklist.Meeting) *meetingResp {
	if m == nil {
		return nil
	}
	return &meetingResp{
		EventID:   m.EventID,
		Summary:   m.Summary,
		HTMLLink:  m.HTMLLink,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
	}
}

type sessionResp struct {
	ID           string       `json:"id"`
	TemplateID   string       `json:"template_id"`
	TemplateName string       `json:"template_name"`
	Meeting      *meetingResp `json:"meeting,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

func newSessionResp(s checklist.Session) sessionResp {
	return sessionResp{
		ID:           s.ID,
		TemplateID:   s.TemplateID,
		TemplateName: s.TemplateName,
		Meeting:      newMeetingResp(s.Meeting),
		CreatedAt:    s.CreatedAt,
	}
}

type stateResp struct {
	Checked  map[string]bool          `json:"checked"`
	Expanded map[string]bool          `json:"expanded"`
	Total    engine.AggregateProgress `json:"total"`
}

func newStateResp(state checklist.SessionState) stateResp {
	return stateResp{
		Checked:  state.Checked,
		Expanded: state.Expanded,
		Total:    state.Total,
	}
}

type sessionDetailResp struct {
	Session sessionResp     `json:"session"`
	Items   []checktree.Item `json:"items"`
	State   stateResp       `json:"state"`
}

func (h *handler) newSessionDetailResp(out checklist.SessionDetailOutput) sessionDetailResp {
	return sessionDetailResp{
		Session: newSessionResp(out.Session),
		Items:   out.Items,
		State:   newStateResp(out.State),
	}
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
	Total    int           `json:"total"`
}

func (h *handler) newListSessionsResp(out checklist.ListSessionsOutput) listSessionsResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return listSessionsResp{
		Sessions: sessions,
		Total:    len(sessions),
	}
}

type progressResp struct {
	Total   engine.AggregateProgress   `json:"total"`
	Parents engine.AggregateProgress   `json:"parents"`
	Items   map[string]engine.Progress `json:"items"`
}

func newProgressResp(out checklist.ProgressOutput) progressResp {
	return progressResp{
		Total:   out.Total,
		Parents: out.Parents,
		Items:   out.Items,
	}
}

type templateResp struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Items []checktree.Item `json:"items"`
}

type listTemplatesResp struct {
	Templates []templateResp `json:"templates"`
}

func (h *handler) newListTemplatesResp(out checklist.ListTemplatesOutput) listTemplatesResp {
	templates := make([]templateResp, len(out.Templates))
	for i, tpl := range out.Templates {
		templates[i] = templateResp{
			ID:    tpl.ID,
			Name:  tpl.Name,
			Items: tpl.Items,
		}
	}
	return listTemplatesResp{Templates: templates}
}

type followUpResp struct {
	Meeting meetingResp `json:"meeting"`
}

func newFollowUpResp(out checklist.FollowUpOutput) followUpResp {
	return followUpResp{Meeting: *newMeetingResp(&out.Meeting)}
}
