package model

// BenefitsData is the whole benefits.json document: the company-wide
// package catalog plus per-employee enrollments.
type BenefitsData struct {
	Packages          map[string]BenefitPackage    `json:"packages"`
	Enrollments       map[string]BenefitEnrollment `json:"enrollments"`
	EnrollmentPeriods map[string]string            `json:"enrollment_periods"`
}

// BenefitPackage describes one offered benefit.
type BenefitPackage struct {
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	MonthlyCost     float64           `json:"monthly_cost"`
	EmployeeCost    float64           `json:"employee_cost"`
	Coverage        map[string]string `json:"coverage"`
	EmployerMatch   string            `json:"employer_match"`
	VestingSchedule string            `json:"vesting_schedule"`
}

// BenefitEnrollment is one employee's enrollment state.
type BenefitEnrollment struct {
	EmployeeName     string            `json:"employee_name"`
	EnrolledBenefits []EnrolledBenefit `json:"enrolled_benefits"`
}

// EnrolledBenefit links an enrollment to a package in the catalog.
type EnrolledBenefit struct {
	PackageID           string `json:"package_id"`
	Status              string `json:"status"`
	EnrollmentDate      string `json:"enrollment_date"`
	ContributionPercent int    `json:"contribution_percent,omitempty"`
}
