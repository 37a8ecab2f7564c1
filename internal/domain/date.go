package domain

import "time"

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar day in the local calendar, stored as "YYYY-MM-DD".
// No time zone conversion is ever applied. The zero value means "absent";
// a malformed value is treated as absent by every aggregation.
type Date string

// DateOf returns the calendar date of the given instant.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate validates s as a calendar date. Invalid input yields the
// zero Date.
func ParseDate(s string) Date {
	if _, err := time.ParseInLocation(dateLayout, s, time.Local); err != nil {
		return ""
	}
	return Date(s)
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d == ""
}

// Valid reports whether d holds a well-formed calendar date.
func (d Date) Valid() bool {
	_, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	return err == nil
}

// Time returns the midnight instant of the date in the local zone.
// The second return value is false for absent or malformed dates.
func (d Date) Time() (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day returns the day-of-month number, or 0 for an invalid date.
func (d Date) Day() int {
	t, ok := d.Time()
	if !ok {
		return 0
	}
	return t.Day()
}

// AddDays returns the date n calendar days after d. Invalid dates are
// returned unchanged.
func (d Date) AddDays(n int) Date {
	t, ok := d.Time()
	if !ok {
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}

func (d Date) String() string {
	return string(d)
}
