package models

import "time"

// ClientRegister is a client self-registration row from the public website.
// The password never leaves the database.
type ClientRegister struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	UserName    string    `gorm:"column:user_name;size:255" json:"user_name"`
	Password    string    `gorm:"column:password;size:255" json:"-"`
	PhoneNumber string    `gorm:"column:phone_number;size:15" json:"phone_number"`
	Email       string    `gorm:"column:email;size:255" json:"email"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name
func (ClientRegister) TableName() string {
	return "client_register"
}
