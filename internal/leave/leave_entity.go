package leave

import (
	"time"
)

const (
	TypeAnnual    = "Annual"
	TypeSick      = "Sick"
	TypeEmergency = "Emergency"

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type LeaveRequest struct {
	ID         uint         `gorm:"column:id;primaryKey"`
	EmployeeID uint         `gorm:"column:employee_id;not null;index"`
	LeaveType  string       `gorm:"column:leave_type;type:varchar(30);not null"`
	StartDate  time.Time    `gorm:"column:start_date;type:date;not null"`
	EndDate    time.Time    `gorm:"column:end_date;type:date;not null"`
	Reason     string       `gorm:"column:reason;type:text"`
	Status     string       `gorm:"column:status;type:varchar(20);not null;default:'Pending';index"`
	AppliedOn  time.Time    `gorm:"column:applied_on;type:timestamptz;not null"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

type EmployeeRef struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"column:code"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e EmployeeRef) FullName() string {
	return e.FirstName + " " + e.LastName
}
