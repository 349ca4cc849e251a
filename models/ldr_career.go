package models

import "time"

// LdrCareer is a career-form submission from the public website.
type LdrCareer struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:255" json:"name"`
	Email       string    `gorm:"column:email;size:255" json:"email"`
	PhoneNumber string    `gorm:"column:phone_number;size:255" json:"phone_number"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name
func (LdrCareer) TableName() string {
	return "ldr_career"
}
