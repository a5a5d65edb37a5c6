package agent

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant/internal/llm"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/markdown"
)

const payslipSystemContext = "You are the Payslip Agent. Help employees understand their salary, payslips, deductions, and taxes. Present payslip data in clear tables with proper currency formatting."

var payslipKeywords = []string{
	"payslip", "salary", "pay", "payment", "wage", "income",
	"deduction", "tax", "gross", "net", "earnings", "compensation",
	"how much", "money", "paid",
}

// PayslipAgent answers salary and payslip queries.
type PayslipAgent struct {
	store   DataStore
	gateway llm.Gateway
	l       log.Logger
}

var _ Agent = (*PayslipAgent)(nil)

// NewPayslipAgent creates a new PayslipAgent.
func NewPayslipAgent(store DataStore, gateway llm.Gateway, l log.Logger) *PayslipAgent {
	return &PayslipAgent{store: store, gateway: gateway, l: l}
}

func (a *PayslipAgent) Name() string        { return "Payslip Agent" }
func (a *PayslipAgent) Description() string { return "Handles payslip generation and salary queries" }
func (a *PayslipAgent) Keywords() []string  { return payslipKeywords }

func (a *PayslipAgent) CanHandle(query string) bool {
	return canHandle(query, payslipKeywords)
}

func (a *PayslipAgent) Process(ctx context.Context, query, employeeID string, agentCtx *Context) (string, error) {
	records, err := a.store.Payslips()
	if err != nil {
		return "", err
	}

	record, ok := records[employeeID]
	if !ok {
		return "❌ Sorry, I couldn't find your payslip records.", nil
	}

	if out, ok := tryLLM(ctx, a.gateway, a.l, a.Name(), payslipSystemContext, query, map[string]interface{}{
		"employee_name": record.EmployeeName,
		"employee_id":   employeeID,
		"payslips":      record.Payslips,
	}, agentCtx); ok {
		return out, nil
	}

	queryLower := strings.ToLower(query)

	if len(record.Payslips) == 0 {
		return "❌ No payslips found for your account.", nil
	}

	switch {
	case matchesAny(queryLower, "history", "all", "previous", "past"):
		return a.payslipHistory(record), nil
	case matchesAny(queryLower, "deduction", "tax"):
		return a.deductions(record.Payslips[0], record.EmployeeName), nil
	default:
		return a.currentPayslip(record.Payslips[0], record.EmployeeName), nil
	}
}

func (a *PayslipAgent) currentPayslip(p model.Payslip, employeeName string) string {
	return fmt.Sprintf(`💰 **Payslip - %s %d**

**Employee:** %s
**Pay Period:** %s
**Payment Date:** %s

---

### 📈 Earnings

| Description | Amount |
|-------------|--------|
| Basic Salary | %s |
| Housing Allowance | %s |
| Transport Allowance | %s |
| Meal Allowance | %s |
| **Gross Salary** | **%s** |

---

### 📉 Deductions

| Description | Amount |
|-------------|--------|
| Federal Tax | %s |
| State Tax | %s |
| Social Security | %s |
| Medicare | %s |
| Health Insurance | %s |
| 401(k) | %s |
| **Total Deductions** | **%s** |

---

### 💵 Net Pay: **%s**`,
		p.Month, p.Year,
		employeeName,
		p.PayPeriod,
		p.PaymentDate,
		markdown.Currency(p.BasicSalary),
		markdown.Currency(p.Allowances.Housing),
		markdown.Currency(p.Allowances.Transport),
		markdown.Currency(p.Allowances.Meal),
		markdown.Currency(p.GrossSalary),
		markdown.Currency(p.Deductions.FederalTax),
		markdown.Currency(p.Deductions.StateTax),
		markdown.Currency(p.Deductions.SocialSecurity),
		markdown.Currency(p.Deductions.Medicare),
		markdown.Currency(p.Deductions.HealthInsurance),
		markdown.Currency(p.Deductions.Retirement401k),
		markdown.Currency(p.TotalDeductions),
		markdown.Currency(p.NetSalary),
	)
}

func (a *PayslipAgent) payslipHistory(record model.PayslipRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Payslip History for %s**\n\n", record.EmployeeName)
	b.WriteString("| Month | Year | Gross | Net | Date |\n")
	b.WriteString("|-------|------|-------|-----|------|\n")

	for _, p := range record.Payslips {
		b.WriteString(markdown.TableRow(
			p.Month,
			fmt.Sprintf("%d", p.Year),
			markdown.Currency(p.GrossSalary),
			markdown.Currency(p.NetSalary),
			p.PaymentDate,
		))
	}

	return b.String()
}

func (a *PayslipAgent) deductions(p model.Payslip, employeeName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Deduction Breakdown - %s %d**\n\n", p.Month, p.Year)
	b.WriteString("| Category | Amount | % of Gross |\n")
	b.WriteString("|----------|--------|------------|\n")

	for _, item := range p.Deductions.Items() {
		b.WriteString(markdown.TableRow(
			markdown.TitleCase(item.Key),
			markdown.Currency(item.Amount),
			markdown.Percent(item.Amount, p.GrossSalary),
		))
	}

	b.WriteString(markdown.TableRow(
		"**Total**",
		fmt.Sprintf("**%s**", markdown.Currency(p.TotalDeductions)),
		fmt.Sprintf("**%s**", markdown.Percent(p.TotalDeductions, p.GrossSalary)),
	))
	fmt.Fprintf(&b, "\n💵 Take-home: **%s** of gross",
		markdown.Percent(p.GrossSalary-p.TotalDeductions, p.GrossSalary))

	return b.String()
}
