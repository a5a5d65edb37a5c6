package model

// AttendanceRecord aggregates one employee's attendance data from
// attendance.json.
type AttendanceRecord struct {
	EmployeeName string            `json:"employee_name"`
	WorkSchedule WorkSchedule      `json:"work_schedule"`
	Records      []AttendanceEntry `json:"records"`
	Summary      AttendanceSummary `json:"summary"`
}

// WorkSchedule is the employee's contracted schedule. Times are "HH:MM"
// strings so lexicographic comparison matches chronological order.
type WorkSchedule struct {
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	WorkDays  []string `json:"work_days"`
}

// AttendanceEntry is one daily attendance record, stored newest-first.
type AttendanceEntry struct {
	Date        string  `json:"date"`
	ClockIn     string  `json:"clock_in"`
	ClockOut    string  `json:"clock_out"`
	HoursWorked float64 `json:"hours_worked"`
	Overtime    float64 `json:"overtime"`
	Status      string  `json:"status"`
}

// AttendanceSummary is the monthly roll-up.
type AttendanceSummary struct {
	Month             string  `json:"month"`
	Year              int     `json:"year"`
	TotalDaysPresent  int     `json:"total_days_present"`
	TotalDaysLate     int     `json:"total_days_late"`
	TotalDaysAbsent   int     `json:"total_days_absent"`
	TotalHoursWorked  float64 `json:"total_hours_worked"`
	TotalOvertime     float64 `json:"total_overtime"`
}
