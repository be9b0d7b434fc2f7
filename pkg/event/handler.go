package event

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/eventt-hub/event-manager/internal/handler"
	"github.com/eventt-hub/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

type eventService interface {
	Create(ctx context.Context, event *model.Event) error
	FindUpcoming(ctx context.Context, viewerID uint) ([]EventView, error)
	FindFeatured(ctx context.Context) ([]EventView, error)
	FindByName(ctx context.Context, name string) ([]model.Event, error)
	Join(ctx context.Context, userID, eventID uint) error
	Update(ctx context.Context, id uint, update UpdateEvent) (*model.Event, error)
	Delete(ctx context.Context, id uint) (*model.Event, error)
}

func NewHandler(eventService eventService) Handler {
	return Handler{eventService}
}

type Handler struct {
	eventService eventService
}

type CreateEventRequest struct {
	EventTitle    string `json:"eventTitle" binding:"required,notblank"`
	Name          string `json:"name" binding:"required,notblank"`
	DateAndTime   string `json:"dateAndTime" binding:"required,dateparseable"`
	Location      string `json:"location" binding:"required,notblank"`
	Description   string `json:"description" binding:"required,min=10"`
	AttendeeCount *int   `json:"attendeeCount" binding:"omitempty,gte=0"`
}

// Create saves a new event
func (h Handler) Create(c *gin.Context) {
	request := &CreateEventRequest{}
	if err := handler.DataBinder(c, request); err != nil {
		_ = c.Error(err)
		return
	}

	dateAndTime, err := handler.ParseDate(request.DateAndTime)
	if err != nil {
		_ = c.Error(err)
		return
	}

	event := &model.Event{
		EventTitle:  strings.TrimSpace(request.EventTitle),
		Name:        strings.TrimSpace(request.Name),
		DateAndTime: dateAndTime,
		Location:    request.Location,
		Description: request.Description,
	}
	if request.AttendeeCount != nil {
		event.AttendeeCount = *request.AttendeeCount
	}

	if err := h.eventService.Create(c.Request.Context(), event); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Event created successfully",
		"event":   event,
	})
}

// FindUpcoming lists all events. An optional userId query parameter marks each
// event with whether that user has joined it; without one, every row carries
// joined=false. A userId that does not parse is treated the same as no viewer
// rather than failing the listing.
func (h Handler) FindUpcoming(c *gin.Context) {
	var viewerID uint
	if raw := c.Query("userId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			viewerID = uint(id)
		}
	}

	events, err := h.eventService.FindUpcoming(c.Request.Context(), viewerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
	})
}

// FindFeatured lists all events without viewer context
func (h Handler) FindFeatured(c *gin.Context) {
	events, err := h.eventService.FindFeatured(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
	})
}

// FindByName lists the events carrying the given name
func (h Handler) FindByName(c *gin.Context) {
	events, err := h.eventService.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
	})
}

type JoinEventRequest struct {
	User  string `json:"user" binding:"required"`
	Event string `json:"event" binding:"required"`
}

// Join records that a user attends an event
func (h Handler) Join(c *gin.Context) {
	request := &JoinEventRequest{}
	if err := handler.DataBinder(c, request); err != nil {
		_ = c.Error(err)
		return
	}

	userID, err := handler.ParseID(request.User)
	if err != nil {
		_ = c.Error(err)
		return
	}

	eventID, err := handler.ParseID(request.Event)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.eventService.Join(c.Request.Context(), userID, eventID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Successfully joined the event",
	})
}

type UpdateEventRequest struct {
	EventTitle    *string `json:"eventTitle" binding:"omitempty,min=3"`
	Name          *string `json:"name" binding:"omitempty,min=2"`
	DateAndTime   *string `json:"dateAndTime" binding:"omitempty,dateparseable"`
	Location      *string `json:"location" binding:"omitempty,min=2"`
	Description   *string `json:"description" binding:"omitempty,min=10"`
	AttendeeCount *int    `json:"attendeeCount" binding:"omitempty,gte=0"`
}

// Update applies a partial update to an event
func (h Handler) Update(c *gin.Context) {
	id, ok := handler.GetPathParameter(c, "eventId")
	if !ok {
		return
	}

	request := &UpdateEventRequest{}
	if err := handler.DataBinder(c, request); err != nil {
		_ = c.Error(err)
		return
	}

	update := UpdateEvent{
		Location:      request.Location,
		Description:   request.Description,
		AttendeeCount: request.AttendeeCount,
	}
	if request.EventTitle != nil {
		title := strings.TrimSpace(*request.EventTitle)
		update.EventTitle = &title
	}
	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		update.Name = &name
	}
	if request.DateAndTime != nil {
		dateAndTime, err := handler.ParseDate(*request.DateAndTime)
		if err != nil {
			_ = c.Error(err)
			return
		}
		update.DateAndTime = &dateAndTime
	}

	event, err := h.eventService.Update(c.Request.Context(), id, update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event updated successfully",
		"event":   event,
	})
}

// Delete removes an event along with its attendance records
func (h Handler) Delete(c *gin.Context) {
	id, ok := handler.GetPathParameter(c, "eventId")
	if !ok {
		return
	}

	event, err := h.eventService.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event deleted successfully",
		"event":   event,
	})
}
