package agent

import (
	"context"
	"strings"
	"testing"

	"hr-assistant/internal/model"
)

func employeeFixture() []model.Employee {
	return []model.Employee{
		{
			ID: "EMP001", Name: "Sarah Johnson", Email: "sarah.johnson@company.com",
			Department: "Engineering", Position: "Senior Software Engineer",
			Manager: "Michael Chen", ManagerID: "EMP002",
			JoinDate: "2021-03-15", Phone: "+1-555-0101",
			Team: []string{"EMP003"},
		},
		{
			ID: "EMP002", Name: "Michael Chen", Email: "michael.chen@company.com",
			Department: "Engineering", Position: "Engineering Manager",
			Phone: "+1-555-0102",
		},
		{
			ID: "EMP003", Name: "Emily Rodriguez", Email: "emily.rodriguez@company.com",
			Department: "Engineering", Position: "Software Engineer",
			ManagerID: "EMP001",
		},
		{
			ID: "EMP004", Name: "David Kim", Email: "david.kim@company.com",
			Department: "Marketing", Position: "Marketing Lead",
		},
	}
}

func TestEmployeeAgent_Profile(t *testing.T) {
	a := NewEmployeeAgent(&fakeStore{employees: employeeFixture()}, offline(), nopLogger{})

	out, err := a.Process(context.Background(), "show my profile", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "👤 **Your Profile**") {
		t.Errorf("missing header: %s", out)
	}
	if !strings.Contains(out, "| **Name** | Sarah Johnson |") {
		t.Errorf("missing name row: %s", out)
	}
	if !strings.Contains(out, "| **Manager** | Michael Chen |") {
		t.Errorf("missing manager row: %s", out)
	}
}

func TestEmployeeAgent_Team(t *testing.T) {
	a := NewEmployeeAgent(&fakeStore{employees: employeeFixture()}, offline(), nopLogger{})

	out, err := a.Process(context.Background(), "who is on my team", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "👥 **Your Team** (1 members)") {
		t.Errorf("missing header: %s", out)
	}
	if !strings.Contains(out, "| Emily Rodriguez | Software Engineer | emily.rodriguez@company.com |") {
		t.Errorf("missing team member: %s", out)
	}
}

func TestEmployeeAgent_NoTeam(t *testing.T) {
	a := NewEmployeeAgent(&fakeStore{employees: employeeFixture()}, offline(), nopLogger{})

	out, err := a.Process(context.Background(), "show me my team", "EMP004", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "👥 You don't have any direct team members." {
		t.Errorf("unexpected message: %s", out)
	}
}

func TestEmployeeAgent_Manager(t *testing.T) {
	a := NewEmployeeAgent(&fakeStore{employees: employeeFixture()}, offline(), nopLogger{})

	t.Run("has manager", func(t *testing.T) {
		out, err := a.Process(context.Background(), "who is my manager", "EMP001", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "👔 **Your Manager**") {
			t.Errorf("missing header: %s", out)
		}
		if !strings.Contains(out, "| **Name** | Michael Chen |") {
			t.Errorf("missing manager name: %s", out)
		}
	})

	t.Run("no manager", func(t *testing.T) {
		out, err := a.Process(context.Background(), "who is my manager", "EMP002", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "👔 You are at the top - no manager assigned." {
			t.Errorf("unexpected message: %s", out)
		}
	})
}

func TestEmployeeAgent_Department(t *testing.T) {
	a := NewEmployeeAgent(&fakeStore{employees: employeeFixture()}, offline(), nopLogger{})

	out, err := a.Process(context.Background(), "tell me about my department", "EMP001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "🏢 **Engineering Department** (3 members)") {
		t.Errorf("missing header: %s", out)
	}
	if !strings.Contains(out, "| Sarah Johnson ⭐ | Senior Software Engineer |") {
		t.Errorf("requester not starred: %s", out)
	}
	if strings.Contains(out, "David Kim") {
		t.Errorf("other department leaked in: %s", out)
	}
}

func TestEmployeeAgent_UnknownEmployee(t *testing.T) {
	a := NewEmployeeAgent(&fakeStore{employees: employeeFixture()}, offline(), nopLogger{})

	out, err := a.Process(context.Background(), "show my profile", "EMP999", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "❌ Sorry, I couldn't find your employee record." {
		t.Errorf("unexpected message: %s", out)
	}
}
