package model

import "time"

// Event domain object defining a scheduled gathering
type Event struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	EventTitle    string    `gorm:"index;not null" json:"eventTitle"`
	Name          string    `gorm:"not null" json:"name"`
	DateAndTime   time.Time `gorm:"index;not null" json:"dateAndTime"`
	Location      string    `gorm:"not null" json:"location"`
	Description   string    `gorm:"not null" json:"description"`
	AttendeeCount int       `gorm:"not null;default:0" json:"attendeeCount"`
}
