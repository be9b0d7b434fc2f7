package user

import (
	"context"
	"net/http"

	"github.com/eventt-hub/event-manager/internal/handler"
	"github.com/eventt-hub/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

type userService interface {
	Register(ctx context.Context, name, email, password, photoURL string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (*model.User, error)
	FindById(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, update UpdateUser) (*model.User, error)
}

func NewHandler(userService userService) Handler {
	return Handler{userService}
}

type Handler struct {
	userService userService
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,gte=8,lte=128"`
	PhotoURL string `json:"photoURL" binding:"omitempty,url"`
}

// Register creates a new user account
func (h Handler) Register(c *gin.Context) {
	request := &RegisterRequest{}
	if err := handler.DataBinder(c, request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), request.Name, request.Email, request.Password, request.PhotoURL)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignIn verifies a user's credentials
func (h Handler) SignIn(c *gin.Context) {
	request := &SignInRequest{}
	if err := handler.DataBinder(c, request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignIn(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Signed in successfully",
		"user":    user,
	})
}

// FindById returns a single user
func (h Handler) FindById(c *gin.Context) {
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.FindById(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,gte=8,lte=128"`
	PhotoURL *string `json:"photoURL" binding:"omitempty,url"`
}

// Update applies a partial update to a user
func (h Handler) Update(c *gin.Context) {
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	request := &UpdateUserRequest{}
	if err := handler.DataBinder(c, request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, UpdateUser{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		PhotoURL: request.PhotoURL,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"user":    user,
	})
}
