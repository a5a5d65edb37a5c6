package hrdata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

var fixtureBodies = map[string]string{
	FileEmployees: `[
		{"id": "EMP001", "name": "Sarah Johnson", "department": "Engineering", "manager_id": "EMP002"},
		{"id": "EMP002", "name": "Michael Chen", "department": "Engineering", "team": ["EMP001"]}
	]`,
	FilePayslips: `{
		"EMP001": {"employee_name": "Sarah Johnson", "payslips": [
			{"month": "November", "year": 2024, "gross_salary": 8583.33, "net_salary": 5535.86}
		]}
	}`,
	FileLeaves: `{
		"EMP001": {"employee_name": "Sarah Johnson", "balance": {"annual": 20, "used_annual": 5}}
	}`,
	FileAttendance: `{
		"EMP001": {"employee_name": "Sarah Johnson", "work_schedule": {"start_time": "09:00", "end_time": "18:00"}}
	}`,
	FileBenefits: `{
		"packages": {"health_premium": {"name": "Premium Health Insurance", "type": "health_insurance"}},
		"enrollments": {"EMP001": {"employee_name": "Sarah Johnson", "enrolled_benefits": []}}
	}`,
	FilePerformance: `{
		"EMP001": {"employee_name": "Sarah Johnson", "current_rating": 4.2, "kpis": {"delivery": 88}}
	}`,
	FilePolicies: `{
		"policies": [{"id": "POL001", "title": "Work From Home Policy", "keywords": ["wfh"]}],
		"faqs": [{"question": "q", "answer": "a"}]
	}`,
}

func writeFixtures(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range fixtureBodies {
		if override, ok := overrides[name]; ok {
			if override == "" {
				continue // simulate a missing file
			}
			body = override
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestVerify(t *testing.T) {
	t.Run("complete fixture set", func(t *testing.T) {
		store := New(writeFixtures(t, nil), nopLogger{})
		if err := store.Verify(); err != nil {
			t.Errorf("Verify: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		store := New(writeFixtures(t, map[string]string{FileLeaves: ""}), nopLogger{})
		if err := store.Verify(); !errors.Is(err, ErrFixtureUnreadable) {
			t.Errorf("expected ErrFixtureUnreadable, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		store := New(writeFixtures(t, map[string]string{FileBenefits: "{not json"}), nopLogger{})
		if err := store.Verify(); !errors.Is(err, ErrFixtureMalformed) {
			t.Errorf("expected ErrFixtureMalformed, got %v", err)
		}
	})

	t.Run("wrong shape", func(t *testing.T) {
		// employees.json must be an array, not an object
		store := New(writeFixtures(t, map[string]string{FileEmployees: `{"id": "EMP001"}`}), nopLogger{})
		if err := store.Verify(); !errors.Is(err, ErrFixtureMalformed) {
			t.Errorf("expected ErrFixtureMalformed, got %v", err)
		}
	})
}

func TestEmployee(t *testing.T) {
	store := New(writeFixtures(t, nil), nopLogger{})

	t.Run("found", func(t *testing.T) {
		emp, err := store.Employee("EMP002")
		if err != nil {
			t.Fatalf("Employee: %v", err)
		}
		if emp.Name != "Michael Chen" {
			t.Errorf("unexpected employee: %+v", emp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := store.Employee("EMP999"); !errors.Is(err, ErrEmployeeNotFound) {
			t.Errorf("expected ErrEmployeeNotFound, got %v", err)
		}
	})
}

func TestReadsAreUncached(t *testing.T) {
	dir := writeFixtures(t, nil)
	store := New(dir, nopLogger{})

	before, err := store.Employees()
	if err != nil {
		t.Fatalf("Employees: %v", err)
	}

	updated := `[{"id": "EMP001", "name": "Sarah Johnson"}]`
	if err := os.WriteFile(filepath.Join(dir, FileEmployees), []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	after, err := store.Employees()
	if err != nil {
		t.Fatalf("Employees after rewrite: %v", err)
	}
	if len(before) == len(after) {
		t.Errorf("expected fresh read to observe the edit: before=%d after=%d", len(before), len(after))
	}
}

func TestTypedAccessors(t *testing.T) {
	store := New(writeFixtures(t, nil), nopLogger{})

	payslips, err := store.Payslips()
	if err != nil {
		t.Fatalf("Payslips: %v", err)
	}
	if payslips["EMP001"].Payslips[0].Month != "November" {
		t.Errorf("unexpected payslip: %+v", payslips["EMP001"])
	}

	policies, err := store.Policies()
	if err != nil {
		t.Fatalf("Policies: %v", err)
	}
	if len(policies.Policies) != 1 || policies.Policies[0].ID != "POL001" {
		t.Errorf("unexpected policies: %+v", policies)
	}

	benefits, err := store.Benefits()
	if err != nil {
		t.Fatalf("Benefits: %v", err)
	}
	if _, ok := benefits.Packages["health_premium"]; !ok {
		t.Errorf("missing package: %+v", benefits.Packages)
	}
}
