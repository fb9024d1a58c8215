package domain

import (
	"fmt"
	"time"
)

// claimDateLayout is the wire format for claim dates (no time component).
const claimDateLayout = "2006-01-02"

// ClaimDate is a calendar date with no time-of-day component. Daily reward
// eligibility is decided purely by comparing calendar dates, so the zone used
// to derive "today" is fixed to UTC.
type ClaimDate struct {
	year  int
	month time.Month
	day   int
}

// NewClaimDate builds a ClaimDate from its components.
func NewClaimDate(year int, month time.Month, day int) ClaimDate {
	return ClaimDate{year: year, month: month, day: day}
}

// Today returns the current calendar date in UTC.
func Today() ClaimDate {
	return DateOf(time.Now().UTC())
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) ClaimDate {
	y, m, d := t.Date()
	return ClaimDate{year: y, month: m, day: d}
}

// ParseClaimDate parses a YYYY-MM-DD string.
func ParseClaimDate(s string) (ClaimDate, error) {
	t, err := time.Parse(claimDateLayout, s)
	if err != nil {
		return ClaimDate{}, fmt.Errorf("parse claim date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Next returns the following calendar date.
func (d ClaimDate) Next() ClaimDate {
	return DateOf(d.Time().AddDate(0, 0, 1))
}

// Before reports whether d is strictly earlier than other.
func (d ClaimDate) Before(other ClaimDate) bool {
	return d.Time().Before(other.Time())
}

// Time returns midnight UTC of the date.
func (d ClaimDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the date is the zero value (no claim recorded).
func (d ClaimDate) IsZero() bool {
	return d == ClaimDate{}
}

func (d ClaimDate) String() string {
	return d.Time().Format(claimDateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d ClaimDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *ClaimDate) UnmarshalText(b []byte) error {
	parsed, err := ParseClaimDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
