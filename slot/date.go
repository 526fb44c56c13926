package slot

import (
	"fmt"
	"time"
)

// Date is a civil (year-month-day) date, per spec.md §3 "Dates are civil
// dates (year-month-day); when a datetime appears where a date is expected,
// the time component is dropped."
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String renders d as "YYYY-MM-DD", or "" if d is zero.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FromTime truncates t to its civil date, dropping the time-of-day and
// timezone components per spec.md §3/§9 ("timezones are not represented in
// date-valued slots").
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate parses s as either a plain "YYYY-MM-DD" date or an RFC3339
// datetime, truncating any time-of-day component in the latter case.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return FromTime(t), nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FromTime(t), nil
	}

	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return FromTime(t), nil
	}

	return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC3339", s)
}
