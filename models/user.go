package models

import "time"

// User is the identity record used for authentication, distinct from the
// domain Customer. IsStaff maps to the external role "admin".
type User struct {
	ID         uint       `gorm:"column:id;primaryKey" json:"id"`
	Username   string     `gorm:"column:username;size:150;uniqueIndex;not null" json:"username"`
	Email      string     `gorm:"column:email;size:255" json:"email"`
	Password   string     `gorm:"column:password;size:255;not null" json:"-"`
	IsStaff    bool       `gorm:"column:is_staff;default:false" json:"is_staff"`
	IsActive   bool       `gorm:"column:is_active;default:true" json:"is_active"`
	DateJoined time.Time  `gorm:"column:date_joined" json:"date_joined"`
	LastLogin  *time.Time `gorm:"column:last_login" json:"last_login"`
}

// TableName overrides the default table name
func (User) TableName() string {
	return "auth_users"
}

// Role maps the staff flag to the role exposed over the API.
func (u *User) Role() string {
	if u.IsStaff {
		return "admin"
	}
	return "user"
}
