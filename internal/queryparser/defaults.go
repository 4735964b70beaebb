package queryparser

import (
	"regexp"
	"strings"
	"time"
)

const (
	errandDuration  = 2 * time.Hour
	defaultDuration = time.Hour
)

var errandKeywords = []string{
	"errand", "errands", "shopping", "shop", "groceries", "grocery", "pick up", "pickup",
	"drop off", "post office", "pharmacy", "bank", "car wash", "cleaning",
}

var meetingKeywords = []string{"meeting", "meetings", "meet", "call", "sync", "standup", "interview", "1:1"}

var appointmentKeywords = []string{"appointment", "doctor", "dentist", "haircut", "checkup", "vet"}

var wordRe = regexp.MustCompile(`[a-z0-9:]+`)

// DefaultDuration returns the duration used when no end or explicit duration is known.
func DefaultDuration(c Category) time.Duration {
	if c == CategoryErrand {
		return errandDuration
	}
	return defaultDuration
}

// parseCategory normalizes the model's category, falling back to the keyword heuristic.
func parseCategory(raw string, texts ...string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(raw))); c {
	case CategoryErrand, CategoryMeeting, CategoryAppointment, CategoryTask:
		return c
	}
	return inferCategory(texts...)
}

// inferCategory matches whole words only. Meetings and appointments win over
// errands so a meeting held at a bank keeps the one hour default.
func inferCategory(texts ...string) Category {
	text := " " + strings.Join(wordRe.FindAllString(strings.ToLower(strings.Join(texts, " ")), -1), " ") + " "
	switch {
	case containsAny(text, appointmentKeywords):
		return CategoryAppointment
	case containsAny(text, meetingKeywords):
		return CategoryMeeting
	case containsAny(text, errandKeywords):
		return CategoryErrand
	default:
		return CategoryTask
	}
}

// containsAny reports whether text, a space-padded run of words, holds any keyword as whole words.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, " "+kw+" ") {
			return true
		}
	}
	return false
}
