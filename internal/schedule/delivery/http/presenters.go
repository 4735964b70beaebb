package http

import (
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/internal/schedule"
	"calendar-assistant/pkg/response"
)

const msgEventCreated = "Event created successfully"

// --- Request DTOs ---

// scheduleReq accepts either a free-text query or a pre-structured event.
// Pointers distinguish an absent field from an empty one.
type scheduleReq struct {
	Query *string             `json:"query,omitempty" example:"schedule a cleaning session tomorrow morning"`
	Event *model.EventPayload `json:"event,omitempty"`
}

func (r scheduleReq) validate() error {
	switch {
	case r.Query != nil && r.Event != nil:
		return schedule.ErrAmbiguousInput
	case r.Query == nil && r.Event == nil:
		return schedule.ErrMissingInput
	}
	return nil
}

func (r scheduleReq) toQueryInput() schedule.ScheduleQueryInput {
	return schedule.ScheduleQueryInput{Query: *r.Query}
}

func (r scheduleReq) toEventInput() schedule.ScheduleEventInput {
	return schedule.ScheduleEventInput{Event: *r.Event}
}

// ---

type listUpcomingReq struct {
	Limit int `form:"limit"`
}

func (r listUpcomingReq) validate() error {
	if r.Limit < 0 {
		return schedule.ErrInvalidLimit
	}
	return nil
}

func (r listUpcomingReq) toInput() schedule.ListUpcomingInput {
	return schedule.ListUpcomingInput{Limit: r.Limit}
}

// --- Response DTOs ---

type timeResp struct {
	DateTime string `json:"dateTime,omitempty" example:"2024-03-21T09:00:00-07:00"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty" example:"America/Los_Angeles"`
}

func newTimeResp(tp model.TimePoint, allDay bool) timeResp {
	if tp.Instant.IsZero() {
		return timeResp{TimeZone: tp.Zone}
	}
	if allDay {
		return timeResp{Date: tp.Instant.Format(time.DateOnly), TimeZone: tp.Zone}
	}
	return timeResp{DateTime: tp.Instant.Format(time.RFC3339), TimeZone: tp.Zone}
}

type eventResp struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Start       timeResp `json:"start"`
	End         timeResp `json:"end"`
	Link        string   `json:"link,omitempty"`
}

func newEventResp(ev model.EventConfirmation) eventResp {
	return eventResp{
		ID:          ev.ID,
		Summary:     ev.Title,
		Title:       ev.Title,
		Description: ev.Description,
		Start:       newTimeResp(ev.Start, ev.AllDay),
		End:         newTimeResp(ev.End, ev.AllDay),
		Link:        ev.Link,
	}
}

type scheduleResp struct {
	response.Resp
	Category string    `json:"category,omitempty"`
	Event    eventResp `json:"event"`
}

func (h *handler) newScheduleResp(out schedule.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Resp:     response.NewOKResp(msgEventCreated),
		Category: out.Category,
		Event:    newEventResp(out.Event),
	}
}

type listUpcomingResp struct {
	response.Resp
	Events []eventResp `json:"events"`
}

func (h *handler) newListUpcomingResp(out schedule.ListUpcomingOutput) listUpcomingResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listUpcomingResp{
		Resp:   response.NewOKResp(""),
		Events: events,
	}
}
