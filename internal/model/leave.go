package model

// LeaveRecord aggregates one employee's leave data from leaves.json.
type LeaveRecord struct {
	EmployeeName string         `json:"employee_name"`
	Balance      LeaveBalance   `json:"balance"`
	Requests     []LeaveRequest `json:"requests"`
}

// LeaveBalance tracks allocations and usage per leave type.
type LeaveBalance struct {
	Annual       int `json:"annual"`
	UsedAnnual   int `json:"used_annual"`
	Sick         int `json:"sick"`
	UsedSick     int `json:"used_sick"`
	Personal     int `json:"personal"`
	UsedPersonal int `json:"used_personal"`
}

// RemainingAnnual returns unused annual leave days.
func (b LeaveBalance) RemainingAnnual() int { return b.Annual - b.UsedAnnual }

// RemainingSick returns unused sick leave days.
func (b LeaveBalance) RemainingSick() int { return b.Sick - b.UsedSick }

// RemainingPersonal returns unused personal leave days.
func (b LeaveBalance) RemainingPersonal() int { return b.Personal - b.UsedPersonal }

// TotalAvailable returns all remaining days across leave types.
func (b LeaveBalance) TotalAvailable() int {
	return b.RemainingAnnual() + b.RemainingSick() + b.RemainingPersonal()
}

// LeaveRequest is one historical or pending leave request.
type LeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
}
