package attendance

import (
	"time"
)

type Attendance struct {
	ID          uint         `gorm:"column:id;primaryKey"`
	EmployeeID  uint         `gorm:"column:employee_id;not null;index"`
	Date        time.Time    `gorm:"column:date;type:date;not null;index"`
	CheckIn     *time.Time   `gorm:"column:check_in;type:timestamptz"`
	CheckOut    *time.Time   `gorm:"column:check_out;type:timestamptz"`
	HoursWorked *float64     `gorm:"column:hours_worked;type:numeric(5,2)"`
	LoggedBy    string       `gorm:"column:logged_by;type:varchar(100)"`
	CreatedAt   time.Time    `gorm:"column:created_at"`
	Employee    *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef is a read-only slice of the employees table, enough to show
// who a record belongs to and to fill the employee dropdown.
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
