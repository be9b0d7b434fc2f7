package event

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, handler Handler) {
	events := r.Group("/events")
	events.POST("/create-event", handler.Create)
	events.GET("", handler.FindUpcoming)
	events.GET("/features-events", handler.FindFeatured)
	events.GET("/:name", handler.FindByName)
	events.POST("/join", handler.Join)
	events.PATCH("/:eventId", handler.Update)
	events.DELETE("/:eventId", handler.Delete)
}
