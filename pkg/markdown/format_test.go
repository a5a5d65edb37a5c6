package markdown

import "testing"

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{999.999, "$1,000.00"},
		{1250000, "$1,250,000.00"},
		{85.5, "$85.50"},
		{-42.25, "-$42.25"},
	}

	for _, c := range cases {
		if got := Currency(c.in); got != c.want {
			t.Errorf("Currency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDate(t *testing.T) {
	if got := Date("2024-12-05"); got != "December 5, 2024" {
		t.Errorf("Date = %q", got)
	}

	// Unparseable input passes through untouched.
	if got := Date("next friday"); got != "next friday" {
		t.Errorf("Date fallback = %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(250, 1000); got != "25.0%" {
		t.Errorf("Percent = %q", got)
	}
	if got := Percent(1, 3); got != "33.3%" {
		t.Errorf("Percent = %q", got)
	}
	if got := Percent(5, 0); got != "0.0%" {
		t.Errorf("Percent zero denominator = %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	cases := []struct {
		progress int
		want     string
	}{
		{0, "░░░░░"},
		{19, "░░░░░"},
		{20, "█░░░░"},
		{50, "██░░░"},
		{100, "█████"},
		{120, "█████"},
		{-5, "░░░░░"},
	}

	for _, c := range cases {
		if got := ProgressBar(c.progress); got != c.want {
			t.Errorf("ProgressBar(%d) = %q, want %q", c.progress, got, c.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("federal_tax"); got != "Federal Tax" {
		t.Errorf("TitleCase = %q", got)
	}
	if got := TitleCase("retirement_401k"); got != "Retirement 401k" {
		t.Errorf("TitleCase = %q", got)
	}
}
