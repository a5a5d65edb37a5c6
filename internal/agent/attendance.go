package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-assistant/internal/llm"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/markdown"
)

const attendanceSystemContext = "You are the Attendance Agent. Help employees track attendance, clock in/out, view work hours, and check overtime. For clock in/out requests, simulate the action and confirm."

var attendanceKeywords = []string{
	"attendance", "clock", "time", "check in", "check out",
	"late", "overtime", "hours", "work hours", "working hours",
	"punch", "present", "absent", "schedule",
}

// AttendanceAgent answers attendance, schedule and clock in/out queries.
// Clock actions are simulated against the wall clock; now is injectable
// for tests.
type AttendanceAgent struct {
	store   DataStore
	gateway llm.Gateway
	l       log.Logger
	now     func() time.Time
}

var _ Agent = (*AttendanceAgent)(nil)

// NewAttendanceAgent creates a new AttendanceAgent.
func NewAttendanceAgent(store DataStore, gateway llm.Gateway, l log.Logger) *AttendanceAgent {
	return &AttendanceAgent{store: store, gateway: gateway, l: l, now: time.Now}
}

func (a *AttendanceAgent) Name() string        { return "Attendance Agent" }
func (a *AttendanceAgent) Description() string { return "Handles attendance tracking and time queries" }
func (a *AttendanceAgent) Keywords() []string  { return attendanceKeywords }

func (a *AttendanceAgent) CanHandle(query string) bool {
	return canHandle(query, attendanceKeywords)
}

func (a *AttendanceAgent) Process(ctx context.Context, query, employeeID string, agentCtx *Context) (string, error) {
	records, err := a.store.Attendance()
	if err != nil {
		return "", err
	}

	record, ok := records[employeeID]
	if !ok {
		return "❌ Sorry, I couldn't find your attendance records.", nil
	}

	recent := record.Records
	if len(recent) > 7 {
		recent = recent[:7]
	}

	if out, ok := tryLLM(ctx, a.gateway, a.l, a.Name(), attendanceSystemContext, query, map[string]interface{}{
		"employee_name":   record.EmployeeName,
		"work_schedule":   record.WorkSchedule,
		"recent_records":  recent,
		"monthly_summary": record.Summary,
		"current_time":    a.now().Format("2006-01-02 15:04"),
	}, agentCtx); ok {
		return out, nil
	}

	queryLower := strings.ToLower(query)

	switch {
	case matchesAny(queryLower, "clock in", "check in", "punch in"):
		return a.clockIn(record), nil
	case matchesAny(queryLower, "clock out", "check out", "punch out"):
		return a.clockOut(record), nil
	case matchesAny(queryLower, "summary", "total", "month"):
		return a.summary(record), nil
	case matchesAny(queryLower, "overtime"):
		return a.overtime(record), nil
	default:
		return a.todayStatus(record), nil
	}
}

func (a *AttendanceAgent) clockIn(record model.AttendanceRecord) string {
	now := a.now()
	currentTime := now.Format("15:04")

	// "HH:MM" strings compare chronologically
	status := "✅ On Time"
	if currentTime > record.WorkSchedule.StartTime {
		status = "⚠️ Late"
	}

	return fmt.Sprintf(`⏰ **Clock In Recorded**

| Detail | Value |
|--------|-------|
| **Date** | %s |
| **Time** | %s |
| **Scheduled** | %s |
| **Status** | %s |

Have a productive day! 🚀`,
		now.Format("2006-01-02"), currentTime, record.WorkSchedule.StartTime, status,
	)
}

func (a *AttendanceAgent) clockOut(record model.AttendanceRecord) string {
	now := a.now()

	return fmt.Sprintf(`⏰ **Clock Out Recorded**

| Detail | Value |
|--------|-------|
| **Date** | %s |
| **Time** | %s |

See you tomorrow! 👋`,
		now.Format("2006-01-02"), now.Format("15:04"),
	)
}

func (a *AttendanceAgent) summary(record model.AttendanceRecord) string {
	s := record.Summary

	return fmt.Sprintf(`📊 **Attendance Summary - %s %d**

| Metric | Value |
|--------|-------|
| ✅ Days Present | %d |
| ⚠️ Days Late | %d |
| ❌ Days Absent | %d |
| ⏱️ Hours Worked | %g hrs |
| 🌙 Overtime | %g hrs |`,
		s.Month, s.Year,
		s.TotalDaysPresent, s.TotalDaysLate, s.TotalDaysAbsent,
		s.TotalHoursWorked, s.TotalOvertime,
	)
}

func (a *AttendanceAgent) overtime(record model.AttendanceRecord) string {
	s := record.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "🌙 **Overtime - %s %d**\n\n", s.Month, s.Year)
	fmt.Fprintf(&b, "**Total:** %g hours\n\n", s.TotalOvertime)
	b.WriteString("| Date | Hours Worked | Overtime |\n")
	b.WriteString("|------|--------------|----------|\n")

	entries := record.Records
	if len(entries) > 5 {
		entries = entries[:5]
	}
	for _, entry := range entries {
		if entry.Overtime > 0 {
			b.WriteString(markdown.TableRow(
				entry.Date,
				fmt.Sprintf("%g", entry.HoursWorked),
				fmt.Sprintf("+%g", entry.Overtime),
			))
		}
	}

	return b.String()
}

func (a *AttendanceAgent) todayStatus(record model.AttendanceRecord) string {
	schedule := record.WorkSchedule

	return fmt.Sprintf(`📍 **Attendance Status**

**Schedule:**
- Start: %s
- End: %s
- Days: %s

Would you like to **clock in** or **clock out**?`,
		schedule.StartTime, schedule.EndTime, strings.Join(schedule.WorkDays, ", "),
	)
}
