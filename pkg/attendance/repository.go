package attendance

import (
	"context"
	"fmt"

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

// Exists reports whether an attendance record exists for the (user, event)
// pair. Callers must treat this as a fast path only; the unique index on the
// pair is what actually guards against duplicates.
func (r repository) Exists(ctx context.Context, userID, eventID uint) (bool, error) {
	var count int64
	err := r.db.
		WithContext(ctx).
		Model(&model.Attendance{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check attendance for user %d and event %d: %v", userID, eventID, err)
	}
	return count > 0, nil
}

func (r repository) FindByEventIDs(ctx context.Context, eventIDs []uint) ([]model.Attendance, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var attendances []model.Attendance
	err := r.db.
		WithContext(ctx).
		Where("event_id IN ?", eventIDs).
		Order("id").
		Find(&attendances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find attendances: %v", err)
	}

	return attendances, nil
}
