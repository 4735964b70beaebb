package assistant

import (
	"fmt"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 60 * time.Second
)

// TimeValue mirrors the start/end shape used by the service.
type TimeValue struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Event is a calendar event as returned by the service.
type Event struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       TimeValue `json:"start"`
	End         TimeValue `json:"end"`
	Link        string    `json:"link,omitempty"`
}

// EventInput is a pre-structured event sent to /calendar/schedule.
type EventInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       *TimeValue `json:"start"`
	End         *TimeValue `json:"end"`
}

// ScheduleResult is the outcome of a successful scheduling call.
type ScheduleResult struct {
	Message  string `json:"message"`
	Category string `json:"category"`
	Event    Event  `json:"event"`
}

// Issue is one validation problem reported by the service.
type Issue struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

// APIError is a non-2xx reply from the service.
type APIError struct {
	StatusCode int
	Message    string
	Issues     []Issue
}

func (e *APIError) Error() string {
	return fmt.Sprintf("assistant: %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Errors   []Issue `json:"errors"`
	Category string  `json:"category"`
	Event    *Event  `json:"event"`
	Events   []Event `json:"events"`
}
