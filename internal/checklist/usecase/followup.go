package usecase

import (
	"context"
	"fmt"

	"remodel-checklist/internal/checklist"
	"remodel-checklist/pkg/gcalendar"
)

// ScheduleFollowUp creates a calendar event for the next meeting of a
// session. Requires the calendar integration to be configured.
func (uc *implUseCase) ScheduleFollowUp(ctx context.Context, input checklist.FollowUpInput) (checklist.FollowUpOutput, error) {
	session, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return checklist.FollowUpOutput{}, err
	}

	if uc.calendar == nil {
		return checklist.FollowUpOutput{}, checklist.ErrCalendarUnavailable
	}
	if !input.EndTime.After(input.StartTime) {
		return checklist.FollowUpOutput{}, checklist.ErrInvalidFollowUpRange
	}

	summary := input.Summary
	if summary == "" {
		summary = fmt.Sprintf("Follow-up: %s", session.TemplateName)
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleFollowUp CreateEvent: %v", err)
		return checklist.FollowUpOutput{}, fmt.Errorf("failed to create follow-up event: %w", err)
	}

	uc.l.Infof(ctx, "Scheduled follow-up %s for session %s", event.ID, session.ID)

	return checklist.FollowUpOutput{
		Meeting: checklist.Meeting{
			EventID:   event.ID,
			Summary:   event.Summary,
			HTMLLink:  event.HtmlLink,
			StartTime: event.StartTime,
			EndTime:   event.EndTime,
		},
	}, nil
}
