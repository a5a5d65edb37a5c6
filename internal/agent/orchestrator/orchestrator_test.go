package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hr-assistant/internal/agent"
	"hr-assistant/internal/llm"
	"hr-assistant/internal/model"
)

type fakeStore struct {
	employees []model.Employee
	payslips  map[string]model.PayslipRecord
	leaves    map[string]model.LeaveRecord
}

func (f *fakeStore) Employees() ([]model.Employee, error) { return f.employees, nil }

func (f *fakeStore) Employee(id string) (model.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Employee{}, errors.New("employee not found")
}

func (f *fakeStore) Payslips() (map[string]model.PayslipRecord, error) { return f.payslips, nil }
func (f *fakeStore) Leaves() (map[string]model.LeaveRecord, error)     { return f.leaves, nil }
func (f *fakeStore) Attendance() (map[string]model.AttendanceRecord, error) {
	return map[string]model.AttendanceRecord{}, nil
}
func (f *fakeStore) Benefits() (model.BenefitsData, error) { return model.BenefitsData{}, nil }
func (f *fakeStore) Performance() (map[string]model.PerformanceRecord, error) {
	return map[string]model.PerformanceRecord{}, nil
}
func (f *fakeStore) Policies() (model.PolicyCatalog, error) { return model.PolicyCatalog{}, nil }

// fakeGateway classifies with a canned decision and generates canned text.
type fakeGateway struct {
	available bool
	decision  llm.RoutingDecision
	text      string
	genErr    error
}

func (f *fakeGateway) IsAvailable() bool { return f.available }

func (f *fakeGateway) RouteQuery(ctx context.Context, query string) llm.RoutingDecision {
	return f.decision
}

func (f *fakeGateway) GenerateResponse(ctx context.Context, input llm.GenerateInput) (string, error) {
	if f.genErr != nil {
		return "", f.genErr
	}
	return f.text, nil
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

func testFixtures() *fakeStore {
	return &fakeStore{
		employees: []model.Employee{
			{ID: "EMP001", Name: "Sarah Johnson"},
		},
		payslips: map[string]model.PayslipRecord{
			"EMP001": {
				EmployeeName: "Sarah Johnson",
				Payslips: []model.Payslip{
					{Month: "November", Year: 2024, GrossSalary: 8583.33, NetSalary: 5535.86},
				},
			},
		},
		leaves: map[string]model.LeaveRecord{
			"EMP001": {
				EmployeeName: "Sarah Johnson",
				Balance:      model.LeaveBalance{Annual: 20, UsedAnnual: 5, Sick: 10, UsedSick: 2, Personal: 5, UsedPersonal: 1},
			},
		},
	}
}

func newOrchestrator(store agent.DataStore, gateway llm.Gateway) *Orchestrator {
	registry := agent.NewRegistry()
	registry.Register(string(RoutePayslip), agent.NewPayslipAgent(store, gateway, nopLogger{}))
	registry.Register(string(RouteLeave), agent.NewLeaveAgent(store, gateway, nopLogger{}))
	registry.Register(string(RouteEmployee), agent.NewEmployeeAgent(store, gateway, nopLogger{}))
	registry.Register(string(RouteAttendance), agent.NewAttendanceAgent(store, gateway, nopLogger{}))
	registry.Register(string(RouteBenefits), agent.NewBenefitsAgent(store, gateway, nopLogger{}))
	registry.Register(string(RoutePerformance), agent.NewPerformanceAgent(store, gateway, nopLogger{}))
	registry.Register(string(RoutePolicy), agent.NewPolicyAgent(store, gateway, nopLogger{}))
	return New(registry, gateway, store, nopLogger{})
}

func TestRouteWithKeywords(t *testing.T) {
	o := newOrchestrator(testFixtures(), llm.NewDisabled())

	cases := []struct {
		query string
		want  Route
	}{
		{"hello", RouteGreeting},
		{"good morning!", RouteGreeting},
		{"help", RouteHelp},
		{"what can you do", RouteHelp},
		{"show my payslip", RoutePayslip},
		{"leave balance", RouteLeave},
		{"who is my manager", RouteEmployee},
		{"clock in", RouteAttendance},
		{"401k details", RouteBenefits},
		{"my performance review", RoutePerformance},
		{"what is the wfh policy", RoutePolicy},
		{"asdf qwerty", RouteGeneral},
	}

	for _, tc := range cases {
		if got := o.routeWithKeywords(tc.query); got != tc.want {
			t.Errorf("routeWithKeywords(%q) = %s, want %s", tc.query, got, tc.want)
		}
	}
}

func TestProcess_Greeting(t *testing.T) {
	o := newOrchestrator(testFixtures(), llm.NewDisabled())

	out, err := o.Process(context.Background(), "hello", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "👋 **Hello, Sarah!**") {
		t.Errorf("greeting missing first name: %s", out)
	}
	if !strings.Contains(out, "📋 **Keyword-Based**") {
		t.Errorf("expected keyword-mode greeting: %s", out)
	}
}

func TestProcess_GreetingUnknownEmployee(t *testing.T) {
	o := newOrchestrator(testFixtures(), llm.NewDisabled())

	out, err := o.Process(context.Background(), "hi", "EMP999", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "👋 **Hello, there!**") {
		t.Errorf("expected default name: %s", out)
	}
}

func TestProcess_GreetingLocalized(t *testing.T) {
	o := newOrchestrator(testFixtures(), llm.NewDisabled())

	out, err := o.Process(context.Background(), "hello", "EMP001", &agent.Context{Language: "es"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "¡Hola, Sarah!") {
		t.Errorf("expected Spanish greeting: %s", out)
	}
}

func TestProcess_Help(t *testing.T) {
	o := newOrchestrator(testFixtures(), llm.NewDisabled())

	out, err := o.Process(context.Background(), "help", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "🤖 **HR Assistant - Help**") {
		t.Errorf("missing help header: %s", out)
	}
	if !strings.Contains(out, "Using keyword-based matching.") {
		t.Errorf("expected keyword-mode help: %s", out)
	}
}

func TestProcess_DispatchesToAgent(t *testing.T) {
	o := newOrchestrator(testFixtures(), llm.NewDisabled())

	out, err := o.Process(context.Background(), "show my payslip", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "💰 **Payslip - November 2024**") {
		t.Errorf("expected payslip agent answer: %s", out)
	}
}

func TestProcess_GeneralFallbackCard(t *testing.T) {
	o := newOrchestrator(testFixtures(), llm.NewDisabled())

	out, err := o.Process(context.Background(), "zzz unknown topic", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "🤔 **I'm not sure how to help with that**") {
		t.Errorf("missing fallback header: %s", out)
	}
	if !strings.Contains(out, `I couldn't understand: *"zzz unknown topic"*`) {
		t.Errorf("query not echoed: %s", out)
	}
}

func TestProcess_LLMRoutingAccepted(t *testing.T) {
	gw := &fakeGateway{
		available: true,
		decision:  llm.RoutingDecision{Agent: "LEAVE", Intent: "check balance", Confidence: 0.92},
		text:      "LLM leave answer",
	}
	o := newOrchestrator(testFixtures(), gw)

	// query has payslip keywords, but the high-confidence LLM decision wins
	out, err := o.Process(context.Background(), "how much pay do I lose per leave day", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "LLM leave answer" {
		t.Errorf("expected leave agent via LLM routing, got: %s", out)
	}
}

func TestProcess_LowConfidenceFallsBackToKeywords(t *testing.T) {
	gw := &fakeGateway{
		available: true,
		decision:  llm.RoutingDecision{Agent: "BENEFITS", Intent: "?", Confidence: 0.3},
		genErr:    errors.New("generation down"),
	}
	o := newOrchestrator(testFixtures(), gw)

	out, err := o.Process(context.Background(), "show my payslip", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "💰 **Payslip - November 2024**") {
		t.Errorf("expected keyword routing to payslip: %s", out)
	}
}

func TestProcess_GeneralUsesLLM(t *testing.T) {
	gw := &fakeGateway{
		available: true,
		decision:  llm.RoutingDecision{Agent: "GENERAL", Intent: "general question", Confidence: 0.8},
		text:      "General LLM answer",
	}
	o := newOrchestrator(testFixtures(), gw)

	out, err := o.Process(context.Background(), "tell me about company culture", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "General LLM answer" {
		t.Errorf("expected general LLM answer, got: %s", out)
	}
}

func TestProcess_GeneralGreetingRecheck(t *testing.T) {
	gw := &fakeGateway{
		available: true,
		decision:  llm.RoutingDecision{Agent: "GENERAL", Intent: "greeting", Confidence: 0.9},
		text:      "should not be used",
	}
	o := newOrchestrator(testFixtures(), gw)

	out, err := o.Process(context.Background(), "hey there", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "👋 **Hello, Sarah!**") {
		t.Errorf("greeting re-check did not fire: %s", out)
	}
	if !strings.Contains(out, "🧠 **AI-Powered**") {
		t.Errorf("expected AI-mode greeting: %s", out)
	}
}

func TestAgentForQuery(t *testing.T) {
	o := newOrchestrator(testFixtures(), llm.NewDisabled())

	cases := []struct {
		query    string
		wantName string
		wantDesc string
	}{
		{"hello", "HR Assistant", "Greeting"},
		{"help", "HR Assistant", "Help"},
		{"show my payslip", "Payslip Agent", "Handles payslip generation and salary queries"},
		{"unknown topic zzz", "HR Assistant", "General Query"},
	}

	for _, tc := range cases {
		name, desc := o.AgentForQuery(context.Background(), tc.query)
		if name != tc.wantName || desc != tc.wantDesc {
			t.Errorf("AgentForQuery(%q) = (%s, %s), want (%s, %s)", tc.query, name, desc, tc.wantName, tc.wantDesc)
		}
	}
}
