package datemath_test

import (
	"testing"
	"time"

	"voice-task-management/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024

	tests := []struct {
		name       string
		expression string
		want       string
	}{
		{name: "Today", expression: "today", want: "2024-05-01"},
		{name: "Today mixed case", expression: "  ToDaY ", want: "2024-05-01"},
		{name: "Tomorrow", expression: "tomorrow", want: "2024-05-02"},
		{name: "Tomorrow inside phrase", expression: "by tomorrow morning", want: "2024-05-02"},
		{name: "Next week", expression: "next week", want: "2024-05-08"},
		{name: "Second week", expression: "second week", want: "2024-05-08"},
		{name: "1st week", expression: "1st week", want: "2024-05-08"},
		{name: "3rd week", expression: "the 3rd week", want: "2024-05-22"},
		{name: "4th week no space", expression: "4thweek", want: "2024-05-29"},
		{name: "In 2 weeks", expression: "in 2 weeks", want: "2024-05-15"},
		{name: "1 week", expression: "1 week from now", want: "2024-05-08"},
		{name: "Next month", expression: "next month", want: "2024-06-01"},
		{name: "In 3 months", expression: "in 3 months", want: "2024-08-01"},
		{name: "Friday from Wednesday", expression: "friday", want: "2024-05-03"},
		{name: "Same weekday rolls a week", expression: "Wednesday", want: "2024-05-08"},
		{name: "Past weekday rolls forward", expression: "monday", want: "2024-05-06"},
		{name: "Next friday adds a week", expression: "next friday", want: "2024-05-10"},
		{name: "Next monday", expression: "next monday", want: "2024-05-06"},
		{name: "In 10 days", expression: "in 10 days", want: "2024-05-11"},
		{name: "1 day", expression: "1 day", want: "2024-05-02"},
		{name: "ISO date", expression: "2024-12-25", want: "2024-12-25"},
		{name: "US numeric date", expression: "12/15/2024", want: "2024-12-15"},
		{name: "Month name with ordinal", expression: "March 3rd, 2025", want: "2025-03-03"},
		{name: "Yearless future", expression: "December 15th", want: "2024-12-15"},
		{name: "Yearless past rolls to next year", expression: "April 3", want: "2025-04-03"},
		{name: "Yearless numeric", expression: "12/15", want: "2024-12-15"},
		{name: "Unknown words returned verbatim", expression: "someday", want: "someday"},
		{name: "Unparseable digits returned verbatim", expression: "99/99", want: "99/99"},
		{name: "Empty", expression: "", want: ""},
		{name: "Earlier rule wins", expression: "tomorrow or next week", want: "2024-05-02"},
		{name: "Weeks before weekday", expression: "friday in 2 weeks", want: "2024-05-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Resolve(tt.expression, baseTime)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.expression, got, tt.want)
			}
		})
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	for _, hour := range []int{0, 1, 12, 23} {
		now := time.Date(2024, 5, 1, hour, 59, 59, 0, time.UTC)
		if got := parser.Resolve("tomorrow", now); got != "2024-05-02" {
			t.Errorf("hour %d: Resolve(tomorrow) = %q, want 2024-05-02", hour, got)
		}
	}
}

func TestResolveUsesParserTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")

	// 20:00 UTC on May 1 is already 03:00 on May 2 in UTC+7.
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if got := parser.Resolve("tomorrow", now); got != "2024-05-03" {
		t.Errorf("Resolve(tomorrow) = %q, want 2024-05-03", got)
	}
}

func TestResolveWeekEquivalences(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)

	if parser.Resolve("next week", now) != parser.Resolve("1st week", now) {
		t.Errorf("next week and 1st week should resolve to the same date")
	}
	if got, want := parser.Resolve("3rd week", now), now.AddDate(0, 0, 21).Format(datemath.DateLayout); got != want {
		t.Errorf("Resolve(3rd week) = %q, want %q", got, want)
	}
}

func TestResolveClampsMonthEnd(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		now        time.Time
		expression string
		want       string
	}{
		{time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC), "next month", "2024-02-29"},
		{time.Date(2023, 1, 31, 10, 0, 0, 0, time.UTC), "next month", "2023-02-28"},
		{time.Date(2024, 10, 31, 10, 0, 0, 0, time.UTC), "in 4 months", "2025-02-28"},
		{time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC), "next month", "2025-01-15"},
	}

	for _, tt := range tests {
		if got := parser.Resolve(tt.expression, tt.now); got != tt.want {
			t.Errorf("Resolve(%q, %s) = %q, want %q", tt.expression, tt.now.Format(datemath.DateLayout), got, tt.want)
		}
	}
}
