// Package validation checks StructuredEvent-shaped payloads before they reach the calendar.
//
// Validation is structural only: required fields, parseable timestamps, known zones and
// end after start. It never re-derives what a vague phrase in the query meant.
package validation

import (
	"strings"
	"time"

	"calendar-assistant/internal/model"
)

// Layouts accepted for dateTime values without an explicit offset.
// Such values are resolved in the accompanying timeZone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Validate turns a candidate payload into a StructuredEvent or returns *Error
// listing every missing or malformed field. It has no side effects.
func Validate(p model.EventPayload) (model.StructuredEvent, error) {
	var issues []Issue

	title := strings.TrimSpace(p.EventTitle())
	if title == "" {
		issues = append(issues, Issue{Field: "title", Problem: ProblemMissing})
	}

	start, startIssues := validateTimePoint("start", p.Start)
	end, endIssues := validateTimePoint("end", p.End)
	issues = append(issues, startIssues...)
	issues = append(issues, endIssues...)

	if len(startIssues) == 0 && len(endIssues) == 0 && !end.Instant.After(start.Instant) {
		issues = append(issues, Issue{Field: "end", Problem: ProblemNotAfterStart})
	}

	if len(issues) > 0 {
		return model.StructuredEvent{}, &Error{Issues: issues}
	}

	return model.StructuredEvent{
		Title:       title,
		Description: strings.TrimSpace(p.Description),
		Start:       start,
		End:         end,
	}, nil
}

func validateTimePoint(field string, tp *model.TimePayload) (model.TimePoint, []Issue) {
	if tp == nil {
		return model.TimePoint{}, []Issue{{Field: field, Problem: ProblemMissing}}
	}

	var issues []Issue

	zone := strings.TrimSpace(tp.TimeZone)
	var loc *time.Location
	switch {
	case zone == "":
		issues = append(issues, Issue{Field: field + ".timeZone", Problem: ProblemMissing})
	default:
		l, err := time.LoadLocation(zone)
		if err != nil {
			issues = append(issues, Issue{Field: field + ".timeZone", Problem: ProblemMalformed})
		} else {
			loc = l
		}
	}

	raw := strings.TrimSpace(tp.DateTime)
	if raw == "" {
		issues = append(issues, Issue{Field: field + ".dateTime", Problem: ProblemMissing})
		return model.TimePoint{}, issues
	}

	instant, ok := ParseDateTime(raw, loc)
	if !ok {
		issues = append(issues, Issue{Field: field + ".dateTime", Problem: ProblemMalformed})
	}

	if len(issues) > 0 {
		return model.TimePoint{}, issues
	}
	return model.TimePoint{Instant: instant, Zone: zone}, nil
}

// ParseDateTime parses an RFC 3339 timestamp, or a naive local timestamp resolved in loc.
// A nil loc only checks that the value is well formed.
func ParseDateTime(raw string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		if loc != nil {
			t = t.In(loc)
		}
		return t, true
	}

	resolveIn := loc
	if resolveIn == nil {
		resolveIn = time.UTC
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, resolveIn); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
