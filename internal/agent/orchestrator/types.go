package orchestrator

// Route identifies the handler for a classified query. Domain routes match
// the registry keys; the meta routes are resolved by the orchestrator
// itself.
type Route string

const (
	RoutePayslip     Route = "PAYSLIP"
	RouteLeave       Route = "LEAVE"
	RouteEmployee    Route = "EMPLOYEE"
	RouteAttendance  Route = "ATTENDANCE"
	RouteBenefits    Route = "BENEFITS"
	RoutePerformance Route = "PERFORMANCE"
	RoutePolicy      Route = "POLICY"

	RouteGreeting Route = "GREETING"
	RouteHelp     Route = "HELP"
	RouteGeneral  Route = "GENERAL"
)
