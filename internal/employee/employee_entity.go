package employee

import (
	"time"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Employee struct {
	ID         uint       `gorm:"column:id;primaryKey"`
	Code       string     `gorm:"column:code;type:varchar(50);not null;uniqueIndex:uq_employee_code"`
	FirstName  string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName   string     `gorm:"column:last_name;type:varchar(100);not null"`
	Department string     `gorm:"column:department;type:varchar(100)"`
	Position   string     `gorm:"column:position;type:varchar(100)"`
	HireDate   *time.Time `gorm:"column:hire_date;type:date"`
	Contact    string     `gorm:"column:contact;type:varchar(100)"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'Active'"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
