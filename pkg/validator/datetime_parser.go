package validator

import (
	"regexp"
	"strconv"
)

// DateTimeLayout is the only textual form accepted by the date-time rules.
const DateTimeLayout = "YYYY-MM-DD HH:MM:SS"

// RE2 \d matches ASCII digits only.
var dateTimeRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) (\d{2}):(\d{2}):(\d{2})$`)

// DateTimeFields holds the numeric parts of a lexically valid date-time string.
// The values are not range checked.
type DateTimeFields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// ParseDateTime matches s against DateTimeLayout and extracts its fields.
// It returns false if s is not exactly in that layout.
func ParseDateTime(s string) (DateTimeFields, bool) {
	m := dateTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return DateTimeFields{}, false
	}

	var parts [6]int
	for i := range parts {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return DateTimeFields{}, false
		}
		parts[i] = n
	}

	return DateTimeFields{
		Year:   parts[0],
		Month:  parts[1],
		Day:    parts[2],
		Hour:   parts[3],
		Minute: parts[4],
		Second: parts[5],
	}, true
}

// ValidDate reports whether Year, Month and Day name an existing Gregorian day.
func (f DateTimeFields) ValidDate() bool {
	return CheckDate(f.Year, f.Month, f.Day)
}

// ValidTime reports whether Hour, Minute and Second form a valid wall-clock time.
func (f DateTimeFields) ValidTime() bool {
	return CheckTime(f.Hour, f.Minute, f.Second)
}
