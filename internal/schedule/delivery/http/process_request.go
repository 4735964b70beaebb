package http

import (
	"fmt"

	"calendar-assistant/internal/schedule"

	"github.com/gin-gonic/gin"
)

// processScheduleReq binds and validates the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: malformed JSON body: %v", schedule.ErrInvalidRequest, err)
	}
	return req, req.validate()
}

// processListUpcomingReq binds and validates the upcoming events query parameters.
func (h *handler) processListUpcomingReq(c *gin.Context) (listUpcomingReq, error) {
	var req listUpcomingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, fmt.Errorf("%w: %v", schedule.ErrInvalidLimit, err)
	}
	return req, req.validate()
}
