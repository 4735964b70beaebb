package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods, including the
// legacy /nlp and /calendar paths.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/schedule", h.Schedule)
	r.GET("/events/upcoming", h.ListUpcoming)

	r.POST("/nlp/create", h.ScheduleFromQuery)

	calendar := r.Group("/calendar")
	{
		calendar.POST("/schedule", h.ScheduleEvent)
		calendar.GET("/events/upcoming", h.ListUpcoming)
	}
}
