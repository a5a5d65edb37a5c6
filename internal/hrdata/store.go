// Package hrdata is the read-only accessor over the JSON fixture directory.
// Every accessor re-reads its file so edits to the fixtures show up without
// a restart; there is deliberately no caching layer.
package hrdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
)

// Fixture file names, one per domain.
const (
	FileEmployees   = "employees.json"
	FilePayslips    = "payslips.json"
	FileLeaves      = "leaves.json"
	FileAttendance  = "attendance.json"
	FileBenefits    = "benefits.json"
	FilePerformance = "performance.json"
	FilePolicies    = "policies.json"
)

// Store reads typed domain records from the fixture directory.
type Store struct {
	dir string
	l   log.Logger
}

// New creates a Store over the given fixture directory.
func New(dir string, l log.Logger) *Store {
	return &Store{dir: dir, l: l}
}

// Verify decodes every fixture once so schema problems fail fast at
// startup instead of surfacing mid-conversation.
func (s *Store) Verify() error {
	if _, err := s.Employees(); err != nil {
		return err
	}
	if _, err := s.Payslips(); err != nil {
		return err
	}
	if _, err := s.Leaves(); err != nil {
		return err
	}
	if _, err := s.Attendance(); err != nil {
		return err
	}
	if _, err := s.Benefits(); err != nil {
		return err
	}
	if _, err := s.Performance(); err != nil {
		return err
	}
	if _, err := s.Policies(); err != nil {
		return err
	}
	return nil
}

// Employees returns the full employee collection.
func (s *Store) Employees() ([]model.Employee, error) {
	var out []model.Employee
	if err := s.loadJSON(FileEmployees, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Employee finds one employee by id. Returns ErrEmployeeNotFound when the
// id is unknown.
func (s *Store) Employee(id string) (model.Employee, error) {
	employees, err := s.Employees()
	if err != nil {
		return model.Employee{}, err
	}
	for _, emp := range employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return model.Employee{}, ErrEmployeeNotFound
}

// Payslips returns payslip records keyed by employee id.
func (s *Store) Payslips() (map[string]model.PayslipRecord, error) {
	out := make(map[string]model.PayslipRecord)
	if err := s.loadJSON(FilePayslips, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Leaves returns leave records keyed by employee id.
func (s *Store) Leaves() (map[string]model.LeaveRecord, error) {
	out := make(map[string]model.LeaveRecord)
	if err := s.loadJSON(FileLeaves, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Attendance returns attendance records keyed by employee id.
func (s *Store) Attendance() (map[string]model.AttendanceRecord, error) {
	out := make(map[string]model.AttendanceRecord)
	if err := s.loadJSON(FileAttendance, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Benefits returns the benefits catalog and enrollments.
func (s *Store) Benefits() (model.BenefitsData, error) {
	var out model.BenefitsData
	if err := s.loadJSON(FileBenefits, &out); err != nil {
		return model.BenefitsData{}, err
	}
	return out, nil
}

// Performance returns performance records keyed by employee id.
func (s *Store) Performance() (map[string]model.PerformanceRecord, error) {
	out := make(map[string]model.PerformanceRecord)
	if err := s.loadJSON(FilePerformance, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Policies returns the policy catalog and FAQ list.
func (s *Store) Policies() (model.PolicyCatalog, error) {
	var out model.PolicyCatalog
	if err := s.loadJSON(FilePolicies, &out); err != nil {
		return model.PolicyCatalog{}, err
	}
	return out, nil
}

func (s *Store) loadJSON(filename string, v interface{}) error {
	path := filepath.Join(s.dir, filename)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFixtureUnreadable, filename, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFixtureMalformed, filename, err)
	}

	return nil
}
