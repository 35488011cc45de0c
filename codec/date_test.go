package codec_test

import (
	"context"
	"testing"
	"time"

	objema "github.com/objema/objema"
	"github.com/objema/objema/codec"
)

func TestParseDate_ISO(t *testing.T) {
	d, err := codec.ParseDate("2024-02-29", codec.DateISO)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Year != 2024 || d.Month != time.February || d.Day != 29 {
		t.Fatalf("unexpected date: %+v", d)
	}
	if d.String() != "2024-02-29" {
		t.Fatalf("canonical form: %q", d.String())
	}
}

func TestParseDate_RejectsInvalidCalendarDates(t *testing.T) {
	for _, s := range []string{"2023-02-29", "2024-13-01", "2024-04-31", "2024-1-1"} {
		if _, err := codec.ParseDate(s, codec.DateISO); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestParseDate_ExplicitSelectors(t *testing.T) {
	d, err := codec.ParseDate("12-10-1815", codec.DateMDY)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Month != time.December || d.Day != 10 || d.Year != 1815 {
		t.Fatalf("MDY mis-parsed: %+v", d)
	}
	d, err = codec.ParseDate("12-10-1815", codec.DateDMY)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Day != 12 || d.Month != time.October || d.Year != 1815 {
		t.Fatalf("DMY mis-parsed: %+v", d)
	}
	// the canonical layout is never accepted by the non-ISO selectors
	if _, err := codec.ParseDate("1815-12-10", codec.DateMDY); err == nil {
		t.Fatalf("MDY must not accept ISO input")
	}
}

func TestDate_Format(t *testing.T) {
	d, _ := codec.NewDate(1815, time.December, 10)
	if got := d.Format(codec.DateMDY); got != "12-10-1815" {
		t.Fatalf("MDY format: %q", got)
	}
	if got := d.Format(codec.DateDMY); got != "10-12-1815" {
		t.Fatalf("DMY format: %q", got)
	}
}

func TestNewDate_Validates(t *testing.T) {
	if _, err := codec.NewDate(2023, time.February, 30); err == nil {
		t.Fatalf("expected error for Feb 30")
	}
	if _, err := codec.NewDate(2000, time.February, 29); err != nil {
		t.Fatalf("2000 is a leap year: %v", err)
	}
}

func TestDate_Weekday(t *testing.T) {
	d, _ := codec.NewDate(2000, time.January, 1)
	if d.Weekday() != time.Saturday {
		t.Fatalf("2000-01-01 was a Saturday, got %s", d.Weekday())
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{2000: true, 1900: false, 2024: true, 2023: false, 2100: false}
	for year, want := range cases {
		if got := codec.IsLeapYear(year); got != want {
			t.Fatalf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDate_Compare(t *testing.T) {
	a, _ := codec.NewDate(1999, time.December, 31)
	b, _ := codec.NewDate(2000, time.January, 1)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("comparison out of order")
	}
}

func TestDateCodec_DecodeEncode(t *testing.T) {
	sc := codec.DateCodec(codec.DateISO)
	v, err := sc.Decode(context.Background(), "2024-02-29")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	s, err := sc.Encode(context.Background(), v)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if s != "2024-02-29" {
		t.Fatalf("round trip: %q", s)
	}

	_, err = sc.Decode(context.Background(), 42)
	if err == nil {
		t.Fatalf("non-string wire value must fail")
	}
	if iss, ok := objema.AsIssues(err); !ok || iss[0].Code != objema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %v", err)
	}
	if err := sc.ValidateValue(context.Background(), "2024-02-29"); err == nil {
		t.Fatalf("untyped value must fail ValidateValue")
	}
}
