package models

import "time"

// UserLeave is a leave application by a user. It is removed with the applicant
// but only detached from a deleted approver.
type UserLeave struct {
	ID             uint       `gorm:"column:id;primaryKey" json:"id"`
	UserID         uint       `gorm:"column:user_id;not null" json:"user_id"`
	User           *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	LeaveType      string     `gorm:"column:leave_type;size:50" json:"leave_type"`
	StartDate      time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate        time.Time  `gorm:"column:end_date" json:"end_date"`
	TotalDays      int        `gorm:"column:total_days" json:"total_days"`
	Reason         string     `gorm:"column:reason" json:"reason"`
	Status         string     `gorm:"column:status;size:20;default:pending" json:"status"`
	AppliedAt      time.Time  `gorm:"column:applied_at" json:"applied_at"`
	ApprovedByID   *uint      `gorm:"column:approved_by_id" json:"approved_by_id"`
	ApprovedBy     *User      `gorm:"foreignKey:ApprovedByID;constraint:OnDelete:SET NULL" json:"-"`
	ApprovedAt     *time.Time `gorm:"column:approved_at" json:"approved_at"`
	RejectedReason *string    `gorm:"column:rejected_reason" json:"rejected_reason"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name
func (UserLeave) TableName() string {
	return "user_leaves"
}
