package repository

import (
	"time"

	"calendar-assistant/internal/model"
)

// CreateEventOptions holds the validated event to store.
type CreateEventOptions struct {
	Event model.StructuredEvent
}

// ListUpcomingOptions selects at most Limit events starting at or after From.
type ListUpcomingOptions struct {
	From  time.Time
	Limit int
}
