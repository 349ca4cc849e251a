package models

import "time"

// UserCustomerData is the optional 1:1 profile a user keeps for their own
// customer details. It is removed together with its user.
type UserCustomerData struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	Phone     *string   `gorm:"column:phone;size:20" json:"phone"`
	Company   *string   `gorm:"column:company;size:255" json:"company"`
	Address   *string   `gorm:"column:address" json:"address"`
	Notes     *string   `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the default table name
func (UserCustomerData) TableName() string {
	return "user_customer_data"
}
