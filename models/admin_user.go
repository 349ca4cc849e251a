package models

import "time"

// AdminUser is a legacy back-office account row. Only listed, never written,
// and the password never leaves the database.
type AdminUser struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:100" json:"name"`
	Email     string    `gorm:"column:email;size:100" json:"email"`
	Password  string    `gorm:"column:password;size:100" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name
func (AdminUser) TableName() string {
	return "admin"
}
