package domain

import (
	"fmt"
	"time"
)

// DateLayout is the fixed calendar format used everywhere dates cross a
// boundary: persisted JSON, CSV imports, the relational archive, CLI flags.
const DateLayout = "2006-01-02"

// Date is a calendar date with an explicit absent state. The zero value is
// "no date"; it serializes as the empty string.
type Date struct {
	t time.Time
}

// ParseDate parses s under DateLayout. An empty string is the absent date,
// not an error.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrMalformedDate, s)
	}
	return Date{t: t}, nil
}

// MustDate parses s and panics on failure. Test and fixture use only.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf builds a Date from a time.Time, truncating to the calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Time() time.Time { return d.t }

// String returns the YYYY-MM-DD form, or "" for the absent date.
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// DaysSince returns the whole-day difference d - o. Both dates must be
// present; callers guard absence.
func (d Date) DaysSince(o Date) int {
	return int(d.t.Sub(o.t).Hours() / 24)
}

// LaterOf returns the later of d and o.
func LaterOf(d, o Date) Date {
	if o.After(d) {
		return o
	}
	return d
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrMalformedDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
