package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-assistant/internal/model"
	scheduleHTTP "calendar-assistant/internal/schedule/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.mw.Recovery(),
		srv.mw.RequestID(),
		srv.mw.Metrics(),
		srv.mw.AccessLog(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP server mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/health/check", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the scheduling API behind the rate limiter.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("", srv.mw.RateLimit())

	h := scheduleHTTP.New(srv.l, srv.scheduleUC)
	scheduleHTTP.RegisterRoutes(api, h)

	srv.l.Infof(context.Background(), "Schedule routes registered: POST /schedule, GET /events/upcoming")
}
