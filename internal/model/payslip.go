package model

// PayslipRecord aggregates one employee's payslips from payslips.json.
type PayslipRecord struct {
	EmployeeName string    `json:"employee_name"`
	Payslips     []Payslip `json:"payslips"`
}

// Payslip is a single monthly payslip. Payslips are stored newest-first.
type Payslip struct {
	Month           string     `json:"month"`
	Year            int        `json:"year"`
	PayPeriod       string     `json:"pay_period"`
	PaymentDate     string     `json:"payment_date"`
	BasicSalary     float64    `json:"basic_salary"`
	Allowances      Allowances `json:"allowances"`
	GrossSalary     float64    `json:"gross_salary"`
	Deductions      Deductions `json:"deductions"`
	TotalDeductions float64    `json:"total_deductions"`
	NetSalary       float64    `json:"net_salary"`
}

type Allowances struct {
	Housing   float64 `json:"housing"`
	Transport float64 `json:"transport"`
	Meal      float64 `json:"meal"`
}

type Deductions struct {
	FederalTax      float64 `json:"federal_tax"`
	StateTax        float64 `json:"state_tax"`
	SocialSecurity  float64 `json:"social_security"`
	Medicare        float64 `json:"medicare"`
	HealthInsurance float64 `json:"health_insurance"`
	Retirement401k  float64 `json:"retirement_401k"`
}

// Items returns the deduction lines in a fixed display order.
func (d Deductions) Items() []DeductionItem {
	return []DeductionItem{
		{"federal_tax", d.FederalTax},
		{"state_tax", d.StateTax},
		{"social_security", d.SocialSecurity},
		{"medicare", d.Medicare},
		{"health_insurance", d.HealthInsurance},
		{"retirement_401k", d.Retirement401k},
	}
}

type DeductionItem struct {
	Key    string
	Amount float64
}
