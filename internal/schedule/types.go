package schedule

import "calendar-assistant/internal/model"

const (
	DefaultUpcomingLimit = 10
	MaxUpcomingLimit     = 50
)

// --- UseCase Inputs ---

type ScheduleQueryInput struct {
	Query string
}

type ScheduleEventInput struct {
	Event model.EventPayload
}

type ListUpcomingInput struct {
	Limit int // 0 selects the configured default
}

// --- UseCase Outputs ---

type ScheduleOutput struct {
	Event    model.EventConfirmation
	Category string // empty for pre-structured events
}

type ListUpcomingOutput struct {
	Events []model.EventConfirmation
}
