package repository

import (
	"context"

	"calendar-assistant/internal/model"
)

// Repository is the calendar gateway used by the schedule use case.
type Repository interface {
	EventRepository
}

// EventRepository defines the calendar operations for scheduled events.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.EventConfirmation, error)
	ListUpcoming(ctx context.Context, opt ListUpcomingOptions) ([]model.EventConfirmation, error)
}
