package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Communication is a logged interaction with a customer (call, email, visit).
// Direction is inbound or outbound.
type Communication struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	CustomerID *string   `gorm:"column:customer_id;size:36" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	Type       string    `gorm:"column:type" json:"type"`
	Subject    *string   `gorm:"column:subject" json:"subject"`
	Content    string    `gorm:"column:content" json:"content"`
	Direction  string    `gorm:"column:direction" json:"direction"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name
func (Communication) TableName() string {
	return "communications"
}

// BeforeCreate assigns the primary key when the caller did not supply one.
func (cm *Communication) BeforeCreate(tx *gorm.DB) error {
	if cm.ID == "" {
		cm.ID = uuid.NewString()
	}
	return nil
}
