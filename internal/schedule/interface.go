package schedule

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ScheduleFromQuery parses a natural-language request, validates it and creates the event.
	ScheduleFromQuery(ctx context.Context, input ScheduleQueryInput) (ScheduleOutput, error)
	// ScheduleEvent validates a pre-structured event and creates it.
	ScheduleEvent(ctx context.Context, input ScheduleEventInput) (ScheduleOutput, error)
	// ListUpcoming returns events starting from now, ordered by start time.
	ListUpcoming(ctx context.Context, input ListUpcomingInput) (ListUpcomingOutput, error)
}
