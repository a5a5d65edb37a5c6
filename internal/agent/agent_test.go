package agent

import (
	"context"
	"errors"

	"hr-assistant/internal/llm"
	"hr-assistant/internal/model"
)

// fakeStore returns canned fixtures; methods with nil data return errors
// so tests can exercise load failures.
type fakeStore struct {
	employees   []model.Employee
	payslips    map[string]model.PayslipRecord
	leaves      map[string]model.LeaveRecord
	attendance  map[string]model.AttendanceRecord
	benefits    model.BenefitsData
	performance map[string]model.PerformanceRecord
	policies    model.PolicyCatalog

	failAll bool
}

var errStore = errors.New("fixture unreadable")

func (f *fakeStore) Employees() ([]model.Employee, error) {
	if f.failAll {
		return nil, errStore
	}
	return f.employees, nil
}

func (f *fakeStore) Employee(id string) (model.Employee, error) {
	if f.failAll {
		return model.Employee{}, errStore
	}
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Employee{}, errStore
}

func (f *fakeStore) Payslips() (map[string]model.PayslipRecord, error) {
	if f.failAll {
		return nil, errStore
	}
	return f.payslips, nil
}

func (f *fakeStore) Leaves() (map[string]model.LeaveRecord, error) {
	if f.failAll {
		return nil, errStore
	}
	return f.leaves, nil
}

func (f *fakeStore) Attendance() (map[string]model.AttendanceRecord, error) {
	if f.failAll {
		return nil, errStore
	}
	return f.attendance, nil
}

func (f *fakeStore) Benefits() (model.BenefitsData, error) {
	if f.failAll {
		return model.BenefitsData{}, errStore
	}
	return f.benefits, nil
}

func (f *fakeStore) Performance() (map[string]model.PerformanceRecord, error) {
	if f.failAll {
		return nil, errStore
	}
	return f.performance, nil
}

func (f *fakeStore) Policies() (model.PolicyCatalog, error) {
	if f.failAll {
		return model.PolicyCatalog{}, errStore
	}
	return f.policies, nil
}

// fakeGateway answers with a fixed string, or reports unavailable.
type fakeGateway struct {
	available bool
	text      string
	err       error

	lastInput llm.GenerateInput
}

func (f *fakeGateway) IsAvailable() bool { return f.available }

func (f *fakeGateway) RouteQuery(ctx context.Context, query string) llm.RoutingDecision {
	return llm.RoutingDecision{Agent: "GENERAL", Intent: "unknown", Confidence: 0.5}
}

func (f *fakeGateway) GenerateResponse(ctx context.Context, input llm.GenerateInput) (string, error) {
	f.lastInput = input
	if f.err != nil {
		return "", f.err
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

func offline() llm.Gateway { return llm.NewDisabled() }
