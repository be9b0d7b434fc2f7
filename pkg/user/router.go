package user

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, handler Handler) {
	users := r.Group("/users")
	users.POST("/register", handler.Register)
	users.POST("/login", handler.SignIn)
	users.GET("/:id", handler.FindById)
	users.PATCH("/:id", handler.Update)
}
