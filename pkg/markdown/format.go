// Package markdown holds pure formatting helpers used by the domain agents
// when rendering deterministic (non-LLM) responses.
package markdown

import (
	"fmt"
	"strings"
	"time"
)

const progressSegments = 5

// Currency formats an amount with a dollar prefix, thousands separators and
// two decimal places: Currency(1234.5) == "$1,234.50".
func Currency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), cents)
}

// Date renders a YYYY-MM-DD string as "December 5, 2024". Strings that do
// not parse are returned unchanged.
func Date(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("January 2, 2006")
}

// Percent computes amount/denominator as a percentage with one decimal
// place. A zero denominator renders as "0.0%".
func Percent(amount, denominator float64) string {
	if denominator == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", amount/denominator*100)
}

// ProgressBar renders a 0-100 progress value as a fixed-width bar of five
// filled/empty segments, 20% per segment with floor division.
func ProgressBar(progress int) string {
	if progress < 0 {
		progress = 0
	}
	filled := progress / 20
	if filled > progressSegments {
		filled = progressSegments
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", progressSegments-filled)
}

// TitleCase turns a snake_case key into a display name:
// "federal_tax" -> "Federal Tax".
func TitleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// TableRow renders one markdown table row from its cells.
func TableRow(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}
