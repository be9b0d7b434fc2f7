package model

import "time"

// Attendance records one user's commitment to attend one event. At most one
// record exists per (user, event) pair; the unique index is authoritative, the
// service-level pre-check is a fast path only.
type Attendance struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"uniqueIndex:idx_attendance_user_event;not null" json:"user"`
	EventID   uint      `gorm:"uniqueIndex:idx_attendance_user_event;not null" json:"event"`
}
