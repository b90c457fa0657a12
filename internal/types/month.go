// Package types implements special types for the finance tracker.
package types

import (
	"fmt"
	"regexp"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), m.Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the month of the year.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// Window returns the first and the last instant of the month
// in loc. The end is the nanosecond before the next month starts.
func (m Month) Window(loc *time.Location) (start, end time.Time) {
	start = time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// Day returns midnight of the given day of the month in loc.
//
// Days past the end of the month roll over into the next month,
// so day 31 of April is the 1st of May.
func (m Month) Day(day int, loc *time.Location) time.Time {
	return time.Date(m.Year(), m.Month(), day, 0, 0, 0, 0, loc)
}

var dateOnly = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// ParseTime parses an RFC 3339 timestamp or a "YYYY-MM-DD" date.
// Dates are interpreted as midnight in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if dateOnly.MatchString(s) {
		return time.ParseInLocation(time.DateOnly, s, loc)
	}

	return time.Parse(time.RFC3339Nano, s)
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
