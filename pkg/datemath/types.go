package datemath

import "time"

// DateLayout is the normalized calendar-date format produced by Resolve.
const DateLayout = "2006-01-02"

// rule recognizes one family of relative expressions. lower is the trimmed,
// lower-cased expression and today is midnight of the reference day.
type rule func(lower string, today time.Time) (time.Time, bool)

// literalLayouts are tried in order when no relative rule matches.
var literalLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, January 2, 2006",
	"Mon, Jan 2, 2006",
}

// yearlessLayouts parse into year 0; the year is filled in from the reference day.
var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
	"1/2",
}
