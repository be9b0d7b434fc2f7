package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventt-hub/event-manager/internal/errdef"
	"github.com/eventt-hub/event-manager/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) Create(ctx context.Context, event *model.Event) error {
	err := r.db.WithContext(ctx).Create(&event).Error
	if err != nil {
		return fmt.Errorf("failed to create event: %v", err)
	}
	return nil
}

func (r repository) FindAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event

	// ties on date_and_time fall back to id so the listing is stable
	err := r.db.
		WithContext(ctx).
		Order("date_and_time, id").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all events: %v", err)
	}

	return events, nil
}

func (r repository) FindById(ctx context.Context, id uint) (*model.Event, error) {
	var e *model.Event
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("event not found by id: %d", id)
	}
	return e, err
}

func (r repository) FindByName(ctx context.Context, name string) ([]model.Event, error) {
	var events []model.Event
	err := r.db.
		WithContext(ctx).
		Where("name = ?", name).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events by name %q: %v", name, err)
	}
	return events, nil
}

func (r repository) Save(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(&event).Error
}

// Join inserts the attendance record and increments the event's denormalized
// attendee counter in one transaction. A duplicate-key failure from the unique
// (user, event) index means this pair lost a race against an identical join,
// which is reported as a conflict rather than a generic store failure.
func (r repository) Join(ctx context.Context, userID, eventID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attendance := &model.Attendance{UserID: userID, EventID: eventID}
		if err := tx.Create(attendance).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errdef.NewDuplicated("you have already joined this event")
			}
			return err
		}

		return tx.
			Model(&model.Event{}).
			Where("id = ?", eventID).
			UpdateColumn("attendee_count", gorm.Expr("attendee_count + ?", 1)).Error
	})
}

// Delete removes the event and every attendance record referencing it. The
// attendance cascade runs before the event's existence is verified, so deleting
// a missing event still cleans up any orphaned attendance rows.
func (r repository) Delete(ctx context.Context, id uint) (*model.Event, error) {
	var event *model.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("event_id = ?", id).Delete(&model.Attendance{}).Error
		if err != nil {
			return err
		}

		err = tx.First(&event, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errdef.NewNotFound("event not found by id: %d", id)
		}
		if err != nil {
			return err
		}

		return tx.Delete(&model.Event{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}
