package inventory

import (
	"time"
)

const (
	TypeUniform = "Uniform"
	TypeRadio   = "Radio"
	TypeBoots   = "Boots"
	TypeOther   = "Other"

	ConditionNew  = "New"
	ConditionGood = "Good"
	ConditionFair = "Fair"
	ConditionPoor = "Poor"
)

type Item struct {
	ID           uint         `gorm:"column:id;primaryKey"`
	ItemName     string       `gorm:"column:item_name;type:varchar(100);not null"`
	ItemType     string       `gorm:"column:item_type;type:varchar(30);not null"`
	SerialNumber string       `gorm:"column:serial_number;type:varchar(100);not null;uniqueIndex:uq_item_serial_number"`
	AssignedTo   *uint        `gorm:"column:assigned_to;index"`
	DateAssigned *time.Time   `gorm:"column:date_assigned;type:date"`
	Condition    string       `gorm:"column:condition;type:varchar(20);not null;default:'New'"`
	CreatedAt    time.Time    `gorm:"column:created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at"`
	Employee     *EmployeeRef `gorm:"foreignKey:AssignedTo;references:ID"`
}

func (Item) TableName() string {
	return "inventory_items"
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
