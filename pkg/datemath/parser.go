package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ordinalWeekPattern = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)\s*week`)
	weeksPattern       = regexp.MustCompile(`(\d+)\s*weeks?`)
	monthsPattern      = regexp.MustCompile(`(\d+)\s*months?`)
	daysPattern        = regexp.MustCompile(`(\d+)\s*days?`)
	ordinalSuffix      = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)\b`)
	digitPattern       = regexp.MustCompile(`\d`)
)

// weekdayNames is indexed by time.Weekday (Sunday = 0).
var weekdayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// rules is the recognition order. The first rule that matches wins.
var rules = []rule{
	keyword("today", 0, 0),
	keyword("tomorrow", 0, 1),
	keyword("next week", 0, 7),
	keyword("second week", 0, 7),
	count(ordinalWeekPattern, func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) }),
	count(weeksPattern, func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) }),
	keyword("next month", 1, 0),
	count(monthsPattern, addMonths),
	nextWeekday,
	count(daysPattern, func(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }),
}

// Parser converts free-text time expressions into calendar dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone dates are computed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve converts expression into a YYYY-MM-DD date relative to now.
// It never fails: an expression it cannot interpret is returned unchanged.
func (p *Parser) Resolve(expression string, now time.Time) string {
	lower := strings.ToLower(strings.TrimSpace(expression))
	today := p.startOfDay(now)

	for _, r := range rules {
		if t, ok := r(lower, today); ok {
			return t.Format(DateLayout)
		}
	}

	if t, ok := p.parseLiteral(expression, today); ok {
		return t.Format(DateLayout)
	}

	return expression
}

// parseLiteral tries absolute date layouts. Only expressions containing a digit are considered.
func (p *Parser) parseLiteral(expression string, today time.Time) (time.Time, bool) {
	s := strings.TrimSpace(expression)
	if !digitPattern.MatchString(s) {
		return time.Time{}, false
	}
	s = ordinalSuffix.ReplaceAllString(s, "$1")

	for _, layout := range literalLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, true
		}
	}

	// Year-less dates resolve to the next occurrence on or after today.
	for _, layout := range yearlessLayouts {
		t, err := time.ParseInLocation(layout, s, p.location)
		if err != nil {
			continue
		}
		t = time.Date(today.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
		if t.Before(today) {
			t = t.AddDate(1, 0, 0)
		}
		return t, true
	}

	return time.Time{}, false
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

func keyword(word string, months, days int) rule {
	return func(lower string, today time.Time) (time.Time, bool) {
		if !strings.Contains(lower, word) {
			return time.Time{}, false
		}
		return addMonths(today, months).AddDate(0, 0, days), true
	}
}

func count(pattern *regexp.Regexp, apply func(time.Time, int) time.Time) rule {
	return func(lower string, today time.Time) (time.Time, bool) {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return apply(today, n), true
	}
}

// nextWeekday resolves a weekday name to its next occurrence, never today.
// "next <weekday>" adds a full week to the naive offset.
func nextWeekday(lower string, today time.Time) (time.Time, bool) {
	for i, name := range weekdayNames {
		if !strings.Contains(lower, name) {
			continue
		}
		offset := i - int(today.Weekday())
		if strings.Contains(lower, "next") {
			offset += 7
		} else if offset <= 0 {
			offset += 7
		}
		return today.AddDate(0, 0, offset), true
	}
	return time.Time{}, false
}

// addMonths adds n calendar months, clamping the day to the target month's length
// so that Jan 31 + 1 month is the last day of February.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
