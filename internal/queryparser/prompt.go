package queryparser

import (
	"fmt"
	"strings"
	"time"

	"calendar-assistant/pkg/datemath"
)

// systemPrompt is the fixed instruction sent with every query. %[1]s is the default zone.
const systemPrompt = `You are a calendar assistant that turns a natural-language scheduling request into structured event data.
Respond with exactly one JSON object and nothing else. It must have one of these two shapes.

SUCCESS:
{
  "event": {
    "summary": "short title that keeps the purpose of the request",
    "description": "any other relevant detail, or an empty string",
    "start": {"dateTime": "RFC3339 with offset, e.g. 2024-03-21T09:00:00-07:00", "timeZone": "%[1]s"},
    "end": {"dateTime": "RFC3339 with offset", "timeZone": "%[1]s"}
  },
  "category": "errand | meeting | appointment | task"
}

REJECTION:
{"error": {"reason": "why the request cannot be scheduled"}}

TIME RULES:
1. An explicit time of day is used verbatim.
2. "morning" means 09:00, "afternoon" means 14:00, "evening" or "tonight" means 18:00.
3. A date without any time of day means 10:00 on that date.
4. No date and no time at all means the next whole hour after the current time.
5. Use the IANA zone %[1]s unless the request names another zone.

DURATION RULES:
1. An explicit duration or end time always wins.
2. Errands and shopping last 2 hours.
3. Meetings, appointments and general tasks last 1 hour.

REJECT the request when it has no discernible purpose (e.g. random characters) or is not a request to schedule something.`

// buildSystemPrompt renders the instruction for the default zone.
func buildSystemPrompt(zone string) string {
	return fmt.Sprintf(systemPrompt, zone)
}

// buildUserPrompt embeds the query together with concrete reference values so
// relative phrases resolve against the request time instead of the model's guess.
func buildUserPrompt(query string, ref datemath.Reference) string {
	var sb strings.Builder
	sb.WriteString("CURRENT TIME CONTEXT (USE FOR RELATIVE DATE/TIME RESOLUTION):\n")
	fmt.Fprintf(&sb, "- now: %s (%s)\n", ref.Now.Format(time.RFC3339), ref.Now.Weekday())
	fmt.Fprintf(&sb, "- next whole hour: %s\n", ref.NextWholeHour.Format(time.RFC3339))
	fmt.Fprintf(&sb, "- tomorrow: %s (%s)\n", ref.Tomorrow.Format(time.DateOnly), ref.Tomorrow.Weekday())
	fmt.Fprintf(&sb, "- tomorrow morning: %s\n", ref.TomorrowMorning.Format(time.RFC3339))
	fmt.Fprintf(&sb, "- tomorrow evening: %s\n", ref.TomorrowEvening.Format(time.RFC3339))
	fmt.Fprintf(&sb, "- this weekend starts: %s\n", ref.UpcomingSaturday.Format(time.DateOnly))
	fmt.Fprintf(&sb, "- current week: %s to %s\n", ref.WeekStart.Format(time.DateOnly), ref.WeekEnd.Format(time.DateOnly))
	fmt.Fprintf(&sb, "- in one week: %s\n", ref.InOneWeek.Format(time.DateOnly))
	for _, d := range ref.NextWeekdays {
		fmt.Fprintf(&sb, "- next %s: %s\n", strings.ToLower(d.Weekday.String()), d.Date.Format(time.DateOnly))
	}
	sb.WriteString("\nParse this scheduling request and return only the JSON object:\n")
	fmt.Fprintf(&sb, "%q", query)
	return sb.String()
}
