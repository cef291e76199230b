package inventory

type AddItemForm struct {
	ItemName     string `form:"item_name" binding:"required"`
	ItemType     string `form:"item_type" binding:"required,oneof=Uniform Radio Boots Other"`
	SerialNumber string `form:"serial_number" binding:"required"`
	Condition    string `form:"condition" binding:"omitempty,oneof=New Good Fair Poor"`
}

type AssignItemForm struct {
	ItemID       uint   `form:"item_id" binding:"required"`
	AssignedTo   uint   `form:"assigned_to" binding:"required"`
	DateAssigned string `form:"date_assigned"`
}

type ItemResponse struct {
	ID           uint
	ItemName     string
	ItemType     string
	SerialNumber string
	AssignedTo   uint
	AssignedName string
	DateAssigned string
	Condition    string
}

type EmployeeOption struct {
	ID   uint
	Code string
	Name string
}
