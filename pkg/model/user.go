package model

import "time"

// User domain object defining a user. Referenced by Attendance; the password
// is stored as a salted hash and never serialized.
type User struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Name          string    `gorm:"index;unique;not null" json:"name"`
	Email         string    `gorm:"index;unique;not null" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	LastLoginTime time.Time `json:"lastLoginTime"`
	PhotoURL      string    `json:"photoURL,omitempty"`
}
