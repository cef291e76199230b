package employee

type CreateEmployeeForm struct {
	FirstName  string `form:"first_name" binding:"required"`
	LastName   string `form:"last_name" binding:"required"`
	Department string `form:"department"`
	Position   string `form:"position"`
	HireDate   string `form:"hire_date"`
	Contact    string `form:"contact"`
	Status     string `form:"status" binding:"omitempty,oneof=Active Inactive"`
}

type EmployeeResponse struct {
	ID         uint
	Code       string
	FirstName  string
	LastName   string
	FullName   string
	Department string
	Position   string
	HireDate   string
	Contact    string
	Status     string
}
