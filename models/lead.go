package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead is a sales-pipeline entry for a customer. Probability is a 0-100
// percentage.
type Lead struct {
	ID                string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	CustomerID        *string    `gorm:"column:customer_id;size:36" json:"customer_id"`
	Customer          *Customer  `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	Stage             string     `gorm:"column:stage" json:"stage"`
	Value             *float64   `gorm:"column:value;type:decimal(10,2)" json:"value"`
	Probability       int        `gorm:"column:probability" json:"probability"`
	ExpectedCloseDate *time.Time `gorm:"column:expected_close_date" json:"expected_close_date"`
	Notes             *string    `gorm:"column:notes" json:"notes"`
	ServiceType       *string    `gorm:"column:service_type;size:100" json:"service_type"`
	InquirySource     *string    `gorm:"column:inquiry_source;size:100" json:"inquiry_source"`
	Urgency           string     `gorm:"column:urgency;size:20" json:"urgency"`
	CreatedAt         time.Time  `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name
func (Lead) TableName() string {
	return "leads"
}

// BeforeCreate assigns the primary key and insert-time defaults.
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Stage == "" {
		l.Stage = "prospecting"
	}
	if l.Urgency == "" {
		l.Urgency = "medium"
	}
	return nil
}
