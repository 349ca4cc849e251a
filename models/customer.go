package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer is a CRM customer of the survey business. Projects, leads,
// communications and survey records point at it with nullable keys.
type Customer struct {
	ID              string         `gorm:"column:id;primaryKey;size:36" json:"id"`
	FirstName       string         `gorm:"column:first_name" json:"first_name"`
	LastName        string         `gorm:"column:last_name" json:"last_name"`
	Email           string         `gorm:"column:email" json:"email"`
	Phone           *string        `gorm:"column:phone" json:"phone"`
	Company         *string        `gorm:"column:company" json:"company"`
	Address         *string        `gorm:"column:address" json:"address"`
	Status          string         `gorm:"column:status" json:"status"`
	Priority        string         `gorm:"column:priority" json:"priority"`
	LeadSource      *string        `gorm:"column:lead_source" json:"lead_source"`
	Notes           *string        `gorm:"column:notes" json:"notes"`
	SurveyType      *string        `gorm:"column:survey_type;size:100" json:"survey_type"`
	Location        *string        `gorm:"column:location" json:"location"`
	PropertyDetails datatypes.JSON `gorm:"column:property_details" json:"property_details"`
	ServiceCategory *string        `gorm:"column:service_category;size:100" json:"service_category"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	LastContact     *time.Time     `gorm:"column:last_contact" json:"last_contact"`
}

// TableName overrides the default table name
func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate assigns the primary key and insert-time defaults.
func (cu *Customer) BeforeCreate(tx *gorm.DB) error {
	if cu.ID == "" {
		cu.ID = uuid.NewString()
	}
	if cu.Status == "" {
		cu.Status = "prospect"
	}
	if cu.Priority == "" {
		cu.Priority = "medium"
	}
	return nil
}
