package model

// PolicyCatalog is the whole policies.json document.
type PolicyCatalog struct {
	Policies []Policy `json:"policies"`
	FAQs     []FAQ    `json:"faqs"`
}

// Policy is one published HR policy, looked up by id or matched against
// free text via its keyword list.
type Policy struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Title         string   `json:"title"`
	Keywords      []string `json:"keywords"`
	Summary       string   `json:"summary"`
	Content       string   `json:"content"`
	EffectiveDate string   `json:"effective_date"`
	LastUpdated   string   `json:"last_updated"`
}

// FAQ is one frequently asked question.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Categories returns the distinct policy categories in catalog order.
func (c PolicyCatalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.Policies {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
