package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/eventt-hub/event-manager/internal/errdef"
	"github.com/eventt-hub/event-manager/pkg/model"
)

const (
	featuredCacheKey = "events:featured"
	featuredCacheTTL = 30 * time.Second
)

type eventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindAll(ctx context.Context) ([]model.Event, error)
	FindById(ctx context.Context, id uint) (*model.Event, error)
	FindByName(ctx context.Context, name string) ([]model.Event, error)
	Save(ctx context.Context, event *model.Event) error
	Join(ctx context.Context, userID, eventID uint) error
	Delete(ctx context.Context, id uint) (*model.Event, error)
}

type attendanceRepository interface {
	Exists(ctx context.Context, userID, eventID uint) (bool, error)
	FindByEventIDs(ctx context.Context, eventIDs []uint) ([]model.Attendance, error)
}

type cache interface {
	Get(key string) (string, error)
	Set(key string, value string, expiration time.Duration) error
	Del(keys ...string) error
}

type publisher interface {
	PublishJoin(ctx context.Context, userID, eventID uint) error
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, eventRepository eventRepository, attendanceRepository attendanceRepository, cache cache, publisher publisher) *service {
	return &service{
		logger:               logger,
		eventRepository:      eventRepository,
		attendanceRepository: attendanceRepository,
		cache:                cache,
		publisher:            publisher,
	}
}

type service struct {
	logger               *slog.Logger
	eventRepository      eventRepository
	attendanceRepository attendanceRepository
	cache                cache
	publisher            publisher
}

// EventView is an event as seen by a particular viewer. JoinedUsers carries
// the attendance records of the event and Joined reflects whether the viewer
// is among them. Joined is always present on the main listing, false when
// there is no viewer; only the featured listing omits it.
type EventView struct {
	model.Event
	JoinedUsers []model.Attendance `json:"joinedUsers"`
	Joined      *bool              `json:"joined,omitempty"`
}

func (s service) Create(ctx context.Context, event *model.Event) error {
	err := s.eventRepository.Create(ctx, event)
	if err != nil {
		return err
	}

	s.invalidateFeatured(ctx)

	return nil
}

// FindUpcoming returns all events ordered by date, each annotated with its
// attendance records and whether the viewer has joined it. Every row carries
// the flag; without a viewer (viewerID 0, also the degraded form of a
// malformed viewer id) it is false on all of them.
func (s service) FindUpcoming(ctx context.Context, viewerID uint) ([]EventView, error) {
	views, err := s.listViews(ctx)
	if err != nil {
		return nil, err
	}

	for i := range views {
		joined := false
		if viewerID != 0 {
			for _, attendance := range views[i].JoinedUsers {
				if attendance.UserID == viewerID {
					joined = true
					break
				}
			}
		}
		views[i].Joined = &joined
	}

	return views, nil
}

func (s service) listViews(ctx context.Context) ([]EventView, error) {
	events, err := s.eventRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}

	attendances, err := s.attendanceRepository.FindByEventIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byEvent := map[uint][]model.Attendance{}
	for _, attendance := range attendances {
		byEvent[attendance.EventID] = append(byEvent[attendance.EventID], attendance)
	}

	views := make([]EventView, len(events))
	for i, event := range events {
		joinedUsers := byEvent[event.ID]
		if joinedUsers == nil {
			joinedUsers = []model.Attendance{}
		}
		views[i] = EventView{Event: event, JoinedUsers: joinedUsers}
	}

	return views, nil
}

// FindFeatured is the anonymous variant of FindUpcoming: the same listing
// without a viewer, so the joined flag is omitted from every row. The listing
// is served from Redis when present and repopulated on a miss; cache failures
// degrade to the database rather than failing the request.
func (s service) FindFeatured(ctx context.Context) ([]EventView, error) {
	cached, err := s.cache.Get(featuredCacheKey)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read featured events from cache", "error", err)
	} else if cached != "" {
		var views []EventView
		if err := json.Unmarshal([]byte(cached), &views); err == nil {
			return views, nil
		}
		s.logger.WarnContext(ctx, "Discarding unreadable featured events cache entry")
	}

	views, err := s.listViews(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(views)
	if err == nil {
		if err := s.cache.Set(featuredCacheKey, string(encoded), featuredCacheTTL); err != nil {
			s.logger.WarnContext(ctx, "Failed to cache featured events", "error", err)
		}
	}

	return views, nil
}

func (s service) FindById(ctx context.Context, id uint) (*model.Event, error) {
	return s.eventRepository.FindById(ctx, id)
}

func (s service) FindByName(ctx context.Context, name string) ([]model.Event, error) {
	return s.eventRepository.FindByName(ctx, name)
}

// Join records the user's attendance. The existence pre-check keeps the common
// repeated-join case cheap; the unique index on (user, event) remains the
// authority under concurrency and surfaces as the same conflict.
func (s service) Join(ctx context.Context, userID, eventID uint) error {
	exists, err := s.attendanceRepository.Exists(ctx, userID, eventID)
	if err != nil {
		return err
	}
	if exists {
		return errdef.NewDuplicated("you have already joined this event")
	}

	err = s.eventRepository.Join(ctx, userID, eventID)
	if err != nil {
		return err
	}

	s.invalidateFeatured(ctx)

	if err := s.publisher.PublishJoin(ctx, userID, eventID); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish join notification", "error", err, "userId", userID, "eventId", eventID)
	}

	return nil
}

// UpdateEvent carries the fields of an update request. Nil fields are left
// untouched on the event.
type UpdateEvent struct {
	EventTitle    *string
	Name          *string
	DateAndTime   *time.Time
	Location      *string
	Description   *string
	AttendeeCount *int
}

func (s service) Update(ctx context.Context, id uint, update UpdateEvent) (*model.Event, error) {
	event, err := s.eventRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.EventTitle != nil {
		event.EventTitle = *update.EventTitle
	}
	if update.Name != nil {
		event.Name = *update.Name
	}
	if update.DateAndTime != nil {
		event.DateAndTime = *update.DateAndTime
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.AttendeeCount != nil {
		event.AttendeeCount = *update.AttendeeCount
	}

	err = s.eventRepository.Save(ctx, event)
	if err != nil {
		return nil, err
	}

	s.invalidateFeatured(ctx)

	return event, nil
}

func (s service) Delete(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.eventRepository.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateFeatured(ctx)

	return event, nil
}

func (s service) invalidateFeatured(ctx context.Context) {
	if err := s.cache.Del(featuredCacheKey); err != nil {
		s.logger.WarnContext(ctx, "Failed to invalidate featured events cache", "error", err)
	}
}
