package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SurveyRecord is a single field-survey measurement record. It may hang off a
// project and a customer, both nullable.
type SurveyRecord struct {
	ID            string         `gorm:"column:id;primaryKey;size:36" json:"id"`
	ProjectID     *string        `gorm:"column:project_id;size:36" json:"project_id"`
	Project       *Project       `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL" json:"-"`
	CustomerID    *string        `gorm:"column:customer_id;size:36" json:"customer_id"`
	Customer      *Customer      `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	SurveyType    string         `gorm:"column:survey_type;size:100" json:"survey_type"`
	SurveyNumber  *string        `gorm:"column:survey_number;size:100" json:"survey_number"`
	PlotNumber    *string        `gorm:"column:plot_number;size:100" json:"plot_number"`
	Area          *string        `gorm:"column:area;size:100" json:"area"`
	Location      *string        `gorm:"column:location" json:"location"`
	Village       *string        `gorm:"column:village;size:255" json:"village"`
	District      *string        `gorm:"column:district;size:255" json:"district"`
	State         string         `gorm:"column:state;size:100" json:"state"`
	Coordinates   datatypes.JSON `gorm:"column:coordinates" json:"coordinates"`
	Boundaries    datatypes.JSON `gorm:"column:boundaries" json:"boundaries"`
	Measurements  datatypes.JSON `gorm:"column:measurements" json:"measurements"`
	Notes         *string        `gorm:"column:notes" json:"notes"`
	Status        string         `gorm:"column:status" json:"status"`
	SurveyDate    *time.Time     `gorm:"column:survey_date" json:"survey_date"`
	CompletedDate *time.Time     `gorm:"column:completed_date" json:"completed_date"`
	SurveyorName  *string        `gorm:"column:surveyor_name;size:255" json:"surveyor_name"`
	EquipmentUsed *string        `gorm:"column:equipment_used" json:"equipment_used"`
	Accuracy      *string        `gorm:"column:accuracy;size:50" json:"accuracy"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name
func (SurveyRecord) TableName() string {
	return "survey_records"
}

// BeforeCreate assigns the primary key and insert-time defaults.
func (s *SurveyRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.State == "" {
		s.State = "Tamil Nadu"
	}
	if s.Status == "" {
		s.Status = "in_progress"
	}
	return nil
}
