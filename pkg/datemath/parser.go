package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts relative date strings to absolute time.Time values in one zone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Los_Angeles"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's zone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Zone returns the IANA name of the parser's zone.
func (p *Parser) Zone() string {
	return p.location.String()
}

// Parse converts a relative date string to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "this weekend", "weekend":
		return p.upcoming(time.Saturday, baseTime, true), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// weekOrder lists weekdays Monday first, the order they appear in prompts.
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return p.upcoming(targetWeekday, baseTime, false), nil
}

// upcoming returns the start of the next day falling on wd. includeToday keeps
// today when it already is wd.
func (p *Parser) upcoming(wd time.Weekday, baseTime time.Time, includeToday bool) time.Time {
	base := baseTime.In(p.location)
	daysUntil := int(wd - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At returns day's date at the anchor hour, in the parser's zone.
func (p *Parser) At(day time.Time, anchor Anchor) time.Time {
	d := day.In(p.location)
	return time.Date(d.Year(), d.Month(), d.Day(), int(anchor), 0, 0, 0, p.location)
}

// NextWholeHour returns the first full hour strictly after ref.
func (p *Parser) NextWholeHour(ref time.Time) time.Time {
	r := ref.In(p.location)
	top := time.Date(r.Year(), r.Month(), r.Day(), r.Hour(), 0, 0, 0, p.location)
	return top.Add(time.Hour)
}

// Reference derives the concrete anchor values for ref.
func (p *Parser) Reference(ref time.Time) Reference {
	now := ref.In(p.location)
	tomorrow, _ := p.Parse("tomorrow", now)
	saturday, _ := p.Parse("this weekend", now)
	inOneWeek, _ := p.Parse("in 1 week", now)

	next := make([]NamedDay, 0, len(weekOrder))
	for _, wd := range weekOrder {
		day, _ := p.Parse("next "+strings.ToLower(wd.String()), now)
		next = append(next, NamedDay{Weekday: wd, Date: day})
	}

	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := p.startOfDay(now.AddDate(0, 0, -(weekday - 1)))

	return Reference{
		Now:              now,
		NextWholeHour:    p.NextWholeHour(now),
		Tomorrow:         tomorrow,
		TomorrowMorning:  p.At(tomorrow, AnchorMorning),
		TomorrowEvening:  p.At(tomorrow, AnchorEvening),
		UpcomingSaturday: saturday,
		WeekStart:        weekStart,
		WeekEnd:          weekStart.AddDate(0, 0, 6),
		InOneWeek:        inOneWeek,
		NextWeekdays:     next,
	}
}
