package gcalendar

import "time"

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID    string
	Summary       string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	StartTimezone string // e.g. "America/Los_Angeles"
	EndTimezone   string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID            string
	Summary       string
	Description   string
	HtmlLink      string
	StartTime     time.Time
	EndTime       time.Time
	StartTimezone string
	EndTimezone   string
	AllDay        bool
	Location      string
}

// ListEventsRequest is the input for listing Google Calendar events.
// Recurring events are expanded into single instances ordered by start time.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time // zero means unbounded
	MaxResults int64
}
