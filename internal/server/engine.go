package server

import (
	"log/slog"
	"net/http"

	"github.com/eventt-hub/event-manager/internal/middleware"
	"github.com/eventt-hub/event-manager/pkg/config"
	"github.com/eventt-hub/event-manager/pkg/event"
	"github.com/eventt-hub/event-manager/pkg/health"
	"github.com/eventt-hub/event-manager/pkg/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func GetEngine(logger *slog.Logger, cfg config.Config, eventHandler event.Handler, userHandler user.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("event-manager"))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Server working fine",
		})
	})
	r.GET("/health", health.Health)

	event.Routes(r, eventHandler)
	user.Routes(r, userHandler)

	return r
}
