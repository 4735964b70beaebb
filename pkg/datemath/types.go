package datemath

import "time"

// Anchor is the hour a vague time reference resolves to.
type Anchor int

const (
	AnchorMorning   Anchor = 9
	AnchorAfternoon Anchor = 14
	AnchorEvening   Anchor = 18
	AnchorDateOnly  Anchor = 10
)

// Reference holds concrete values derived from a reference timestamp, used to
// resolve relative phrases consistently.
type Reference struct {
	Now              time.Time
	NextWholeHour    time.Time
	Tomorrow         time.Time // start of day
	TomorrowMorning  time.Time
	TomorrowEvening  time.Time
	UpcomingSaturday time.Time // start of day, "this weekend"
	WeekStart        time.Time // Monday, start of day
	WeekEnd          time.Time // Sunday, start of day
	InOneWeek        time.Time // start of day, seven days out
	NextWeekdays     []NamedDay
}

// NamedDay is the start of the next day falling on Weekday, never today.
type NamedDay struct {
	Weekday time.Weekday
	Date    time.Time
}
