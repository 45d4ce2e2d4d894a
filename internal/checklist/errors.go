package checklist

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrTemplateNotFound     = errors.New("template not found")
	ErrCalendarUnavailable  = errors.New("calendar integration not configured")
	ErrInvalidFollowUpRange = errors.New("follow-up end time must be after start time")
)
