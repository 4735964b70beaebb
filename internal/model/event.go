package model

import (
	"strings"
	"time"
)

// TimePoint is a zone-qualified instant.
type TimePoint struct {
	Instant time.Time // carries the offset of Zone at that instant
	Zone    string    // IANA identifier, e.g. "America/Los_Angeles"
}

// StructuredEvent is the canonical event representation handed to the calendar.
// End is always after Start.
type StructuredEvent struct {
	Title       string
	Description string
	Start       TimePoint
	End         TimePoint
}

// Duration returns End - Start.
func (e StructuredEvent) Duration() time.Duration {
	return e.End.Instant.Sub(e.Start.Instant)
}

// EventPayload is the loosely structured, JSON-facing shape of an event.
// It is what the completion model returns and what clients send directly.
// Summary is accepted as an alias of Title.
type EventPayload struct {
	Title       string       `json:"title,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Description string       `json:"description,omitempty"`
	Start       *TimePayload `json:"start,omitempty"`
	End         *TimePayload `json:"end,omitempty"`
}

// TimePayload mirrors the Google Calendar EventDateTime shape.
type TimePayload struct {
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// EventTitle returns the trimmed Title, falling back to Summary when Title is blank.
func (p EventPayload) EventTitle() string {
	if title := strings.TrimSpace(p.Title); title != "" {
		return title
	}
	return strings.TrimSpace(p.Summary)
}

// EventConfirmation is what the calendar provider returns for a stored event.
type EventConfirmation struct {
	ID          string
	Title       string
	Description string
	Start       TimePoint
	End         TimePoint
	AllDay      bool
	Link        string
}
