package attendance

type LogAttendanceForm struct {
	EmployeeID uint   `form:"employee_id" binding:"required"`
	Date       string `form:"date" binding:"required"`
	CheckIn    string `form:"check_in"`
	CheckOut   string `form:"check_out"`
	LoggedBy   string `form:"logged_by"`
}

type AttendanceResponse struct {
	ID           uint
	EmployeeID   uint
	EmployeeName string
	Date         string
	CheckIn      string
	CheckOut     string
	HoursWorked  string
	LoggedBy     string
}

type EmployeeOption struct {
	ID   uint
	Code string
	Name string
}
