package codec

import (
	"context"
	"fmt"
	"time"

	objema "github.com/objema/objema"
)

// DateFormat selects the accepted wire layout for Date values. The selector
// is always explicit; layouts are never auto-detected.
type DateFormat int

const (
	DateISO DateFormat = iota // YYYY-MM-DD (canonical)
	DateMDY                   // MM-DD-YYYY
	DateDMY                   // DD-MM-YYYY
)

func (f DateFormat) layout() string {
	switch f {
	case DateMDY:
		return "01-02-2006"
	case DateDMY:
		return "02-01-2006"
	default:
		return "2006-01-02"
	}
}

// Date is a calendar date without time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the components against the real calendar (month lengths,
// leap years) and returns the Date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("codec: invalid date %04d-%02d-%02d", year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses s using the explicitly selected layout.
func ParseDate(s string, f DateFormat) (Date, error) {
	t, err := time.Parse(f.layout(), s)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String renders the canonical ISO-8601 form YYYY-MM-DD.
func (d Date) String() string { return d.Format(DateISO) }

// Format renders the date in the selected layout.
func (d Date) Format(f DateFormat) string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(f.layout())
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Compare orders dates chronologically: -1 when d is before o, +1 after,
// 0 when equal.
func (d Date) Compare(o Date) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(o.Year, o.Month, o.Day, 0, 0, 0, 0, time.UTC)
	return a.Compare(b)
}

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DateCodec returns the scalar codec for Date fields. Wire values must be
// strings in the selected layout; encoding always emits the canonical ISO
// form.
func DateCodec(f DateFormat) objema.Scalar {
	return Of(
		func(ctx context.Context, wire any) (Date, error) {
			s, ok := wire.(string)
			if !ok {
				return Date{}, objema.Issues{{Path: "/", Code: objema.CodeInvalidType, Message: "expected date string"}}
			}
			d, err := ParseDate(s, f)
			if err != nil {
				return Date{}, objema.Issues{{Path: "/", Code: objema.CodeInvalidFormat, Message: "invalid date '" + s + "'", Cause: err}}
			}
			return d, nil
		},
		func(ctx context.Context, d Date) (string, error) {
			return d.String(), nil
		},
	)
}
