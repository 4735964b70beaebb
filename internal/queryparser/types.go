package queryparser

import "calendar-assistant/internal/model"

// Category classifies a request and selects its default duration.
type Category string

const (
	CategoryErrand      Category = "errand"
	CategoryMeeting     Category = "meeting"
	CategoryAppointment Category = "appointment"
	CategoryTask        Category = "task"
)

// Outcome is the result of parsing a query: either Parsed or Rejected.
type Outcome interface {
	isOutcome()
}

// Parsed carries a candidate event. It still has to pass validation.
type Parsed struct {
	Event    model.EventPayload
	Category Category
}

// Rejected means the query is not a usable scheduling request.
type Rejected struct {
	Reason string
}

func (Parsed) isOutcome()   {}
func (Rejected) isOutcome() {}

// Options configures the parser.
type Options struct {
	// Timezone is the IANA zone used for relative phrases and as the default event zone.
	Timezone  string
	MaxTokens int
}

// completionReply is the JSON document the model is instructed to return.
type completionReply struct {
	Event    *model.EventPayload `json:"event"`
	Category string              `json:"category"`
	Error    *replyError         `json:"error"`
}

type replyError struct {
	Reason string `json:"reason"`
}
