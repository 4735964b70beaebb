package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/schedule"
	"calendar-assistant/pkg/response"
)

// Schedule godoc
// @Summary     Schedule an event
// @Description Creates a calendar event from either a natural-language query or a pre-structured event.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Either {query} or {event}"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Rejected query or invalid event"
// @Failure     500  {object} response.Resp "Completion or calendar provider failure"
// @Router      /schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		h.l.Warnf(ctx, "schedule.delivery.http.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	var output schedule.ScheduleOutput
	if req.Query != nil {
		output, err = h.uc.ScheduleFromQuery(ctx, req.toQueryInput())
	} else {
		output, err = h.uc.ScheduleEvent(ctx, req.toEventInput())
	}
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// ScheduleFromQuery godoc
// @Summary     Schedule an event from text
// @Description Parses a natural-language request with the completion model and creates the event.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "{query}"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Rejected or empty query"
// @Failure     500  {object} response.Resp "Completion or calendar provider failure"
// @Router      /nlp/create [POST]
func (h *handler) ScheduleFromQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err == nil && req.Query == nil {
		err = schedule.ErrMissingQuery
	}
	if err != nil {
		h.l.Warnf(ctx, "schedule.delivery.http.ScheduleFromQuery: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ScheduleFromQuery(ctx, req.toQueryInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// ScheduleEvent godoc
// @Summary     Schedule a pre-structured event
// @Description Validates the event and creates it without calling the completion model.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "{event}"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Invalid event"
// @Failure     500  {object} response.Resp "Calendar provider failure"
// @Router      /calendar/schedule [POST]
func (h *handler) ScheduleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err == nil && req.Event == nil {
		err = schedule.ErrMissingEvent
	}
	if err != nil {
		h.l.Warnf(ctx, "schedule.delivery.http.ScheduleEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ScheduleEvent(ctx, req.toEventInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// ListUpcoming godoc
// @Summary     List upcoming events
// @Description Returns events starting from now, ordered by start time.
// @Tags        Schedule
// @Produce     json
// @Param       limit query int false "Maximum number of events (default 10, max 50)"
// @Success     200 {object} listUpcomingResp
// @Failure     400 {object} response.Resp "Invalid limit"
// @Failure     500 {object} response.Resp "Calendar provider failure"
// @Router      /events/upcoming [GET]
func (h *handler) ListUpcoming(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListUpcomingReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ListUpcoming(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListUpcomingResp(output))
}
