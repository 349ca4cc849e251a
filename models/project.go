package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is a survey project, optionally tied to a customer. Deleting the
// customer leaves the project behind with a null customer_id.
type Project struct {
	ID            string         `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name          string         `gorm:"column:name" json:"name"`
	Description   *string        `gorm:"column:description" json:"description"`
	CustomerID    *string        `gorm:"column:customer_id;size:36" json:"customer_id"`
	Customer      *Customer      `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	Status        string         `gorm:"column:status" json:"status"`
	Budget        *float64       `gorm:"column:budget;type:decimal(10,2)" json:"budget"`
	StartDate     *time.Time     `gorm:"column:start_date" json:"start_date"`
	EndDate       *time.Time     `gorm:"column:end_date" json:"end_date"`
	SurveyType    *string        `gorm:"column:survey_type;size:100" json:"survey_type"`
	Location      *string        `gorm:"column:location" json:"location"`
	Area          *string        `gorm:"column:area;size:100" json:"area"`
	PlotNumber    *string        `gorm:"column:plot_number;size:100" json:"plot_number"`
	SurveyNumber  *string        `gorm:"column:survey_number;size:100" json:"survey_number"`
	Village       *string        `gorm:"column:village;size:255" json:"village"`
	District      *string        `gorm:"column:district;size:255" json:"district"`
	State         *string        `gorm:"column:state;size:100" json:"state"`
	Coordinates   datatypes.JSON `gorm:"column:coordinates" json:"coordinates"`
	EquipmentUsed *string        `gorm:"column:equipment_used" json:"equipment_used"`
	TeamMembers   datatypes.JSON `gorm:"column:team_members" json:"team_members"`
	Deliverables  datatypes.JSON `gorm:"column:deliverables" json:"deliverables"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate assigns the primary key and insert-time defaults.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = "planning"
	}
	return nil
}
