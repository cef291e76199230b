package leave

type ApplyLeaveForm struct {
	EmployeeID uint   `form:"employee_id" binding:"required"`
	LeaveType  string `form:"leave_type" binding:"required,oneof=Annual Sick Emergency"`
	StartDate  string `form:"start_date" binding:"required"`
	EndDate    string `form:"end_date" binding:"required"`
	Reason     string `form:"reason"`
}

type DecideLeaveForm struct {
	LeaveID uint   `form:"leave_id" binding:"required"`
	Status  string `form:"status" binding:"required,oneof=Approved Rejected"`
}

type LeaveResponse struct {
	ID           uint
	EmployeeID   uint
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Reason       string
	Status       string
	AppliedOn    string
}

type EmployeeOption struct {
	ID   uint
	Code string
	Name string
}
