package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hr-assistant/internal/llm"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/markdown"
)

const benefitsSystemContext = "You are the Benefits Agent. Help employees understand their benefits, health insurance, 401k, and wellness programs. Present options clearly with costs and coverage details."

var benefitsKeywords = []string{
	"benefit", "insurance", "health", "medical", "dental", "vision",
	"retirement", "401k", "401(k)", "pension", "wellness", "gym",
	"coverage", "enroll", "enrollment", "life insurance",
}

// BenefitsAgent answers benefits and enrollment queries.
type BenefitsAgent struct {
	store   DataStore
	gateway llm.Gateway
	l       log.Logger
}

var _ Agent = (*BenefitsAgent)(nil)

// NewBenefitsAgent creates a new BenefitsAgent.
func NewBenefitsAgent(store DataStore, gateway llm.Gateway, l log.Logger) *BenefitsAgent {
	return &BenefitsAgent{store: store, gateway: gateway, l: l}
}

func (a *BenefitsAgent) Name() string { return "Benefits Agent" }
func (a *BenefitsAgent) Description() string {
	return "Handles employee benefits and enrollment queries"
}
func (a *BenefitsAgent) Keywords() []string { return benefitsKeywords }

func (a *BenefitsAgent) CanHandle(query string) bool {
	return canHandle(query, benefitsKeywords)
}

func (a *BenefitsAgent) Process(ctx context.Context, query, employeeID string, agentCtx *Context) (string, error) {
	data, err := a.store.Benefits()
	if err != nil {
		return "", err
	}

	enrollment, enrolled := data.Enrollments[employeeID]

	contextData := map[string]interface{}{
		"available_packages": data.Packages,
		"enrollment_periods": data.EnrollmentPeriods,
	}
	if enrolled {
		contextData["employee_enrollment"] = enrollment
	}

	if out, ok := tryLLM(ctx, a.gateway, a.l, a.Name(), benefitsSystemContext, query, contextData, agentCtx); ok {
		return out, nil
	}

	queryLower := strings.ToLower(query)

	switch {
	case matchesAny(queryLower, "my benefit", "enrolled", "my plan"):
		return a.enrolledBenefits(enrollment, enrolled, data.Packages), nil
	case matchesAny(queryLower, "health", "medical", "dental"):
		return a.healthInfo(data.Packages), nil
	case matchesAny(queryLower, "401k", "401(k)", "retirement"):
		return a.retirementInfo(data.Packages, enrollment, enrolled), nil
	default:
		return a.benefitsSummary(enrollment, enrolled), nil
	}
}

func (a *BenefitsAgent) enrolledBenefits(enrollment model.BenefitEnrollment, enrolled bool, packages map[string]model.BenefitPackage) string {
	if !enrolled {
		return "❌ No benefits enrollment found. Contact HR to enroll."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎁 **Your Benefits - %s**\n\n", enrollment.EmployeeName)

	for _, benefit := range enrollment.EnrolledBenefits {
		pkg, ok := packages[benefit.PackageID]
		if !ok {
			continue
		}
		status := "❌ Inactive"
		if benefit.Status == "active" {
			status = "✅ Active"
		}
		fmt.Fprintf(&b, "### %s\n", pkg.Name)
		fmt.Fprintf(&b, "- Status: %s\n", status)
		fmt.Fprintf(&b, "- Enrolled: %s\n\n", benefit.EnrollmentDate)
	}

	return b.String()
}

func (a *BenefitsAgent) healthInfo(packages map[string]model.BenefitPackage) string {
	var b strings.Builder
	b.WriteString("🏥 **Health Insurance Plans**\n\n")

	// map iteration order is random; sort ids for stable output
	ids := make([]string, 0, len(packages))
	for id := range packages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		pkg := packages[id]
		if pkg.Type != "health_insurance" {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", pkg.Name)
		fmt.Fprintf(&b, "- Monthly: %s (You pay: %s)\n",
			markdown.Currency(pkg.MonthlyCost), markdown.Currency(pkg.EmployeeCost))

		covTypes := make([]string, 0, len(pkg.Coverage))
		for t := range pkg.Coverage {
			covTypes = append(covTypes, t)
		}
		sort.Strings(covTypes)
		for _, t := range covTypes {
			fmt.Fprintf(&b, "- %s: %s\n", markdown.TitleCase(t), pkg.Coverage[t])
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (a *BenefitsAgent) retirementInfo(packages map[string]model.BenefitPackage, enrollment model.BenefitEnrollment, enrolled bool) string {
	retirement := packages["retirement_401k"]

	match := retirement.EmployerMatch
	if match == "" {
		match = "N/A"
	}
	vesting := retirement.VestingSchedule
	if vesting == "" {
		vesting = "N/A"
	}

	response := fmt.Sprintf(`💰 **401(k) Retirement Plan**

- **Employer Match:** %s
- **Vesting:** %s`, match, vesting)

	if enrolled {
		for _, benefit := range enrollment.EnrolledBenefits {
			if benefit.PackageID == "retirement_401k" && benefit.ContributionPercent > 0 {
				response += fmt.Sprintf("\n- **Your Contribution:** %d%%", benefit.ContributionPercent)
			}
		}
	}

	return response
}

func (a *BenefitsAgent) benefitsSummary(enrollment model.BenefitEnrollment, enrolled bool) string {
	if !enrolled {
		return `🎁 **Benefits Overview**

You don't have any benefits enrolled. Available:
- 🏥 Health Insurance
- 💰 401(k) Retirement
- 🛡️ Life Insurance
- 🏃 Wellness Program

Contact HR to enroll!`
	}

	return fmt.Sprintf(`🎁 **Benefits Summary - %s**

✅ Active Benefits: %d

Ask me about:
- "My enrolled benefits"
- "Health insurance options"
- "401k details"
- "Wellness program"`,
		enrollment.EmployeeName, len(enrollment.EnrolledBenefits),
	)
}
