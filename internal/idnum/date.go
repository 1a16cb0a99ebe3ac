package idnum

import (
	"fmt"
	"time"
)

// MinBirthYear is the historical floor for birth dates. Human lifespans do
// not reach 120 years, so no holder of a second-generation identity number
// was born before 1900.
const MinBirthYear = 1900

// Date is a validated birth date. It can only be produced by ParseDate, so a
// Date in an IdentityNumber is always a real calendar day between the
// historical floor and the validation-time clock.
type Date struct {
	year  int
	month time.Month
	day   int
}

// ParseDate validates an 8-digit YYYYMMDD string against the calendar, the
// historical floor, and now. The clock is a parameter so callers can pin it
// in tests instead of depending on the wall clock.
func ParseDate(s string, now time.Time) (Date, error) {
	rs := []rune(s)
	if len(rs) != birthdayLen {
		return Date{}, fmt.Errorf("birth date must be %d digits, got %d characters", birthdayLen, len(rs))
	}
	for _, r := range rs {
		if r < '0' || r > '9' {
			return Date{}, fmt.Errorf("birth date contains non-digit %q", r)
		}
	}
	year := atoi(rs[0:4])
	month := atoi(rs[4:6])
	day := atoi(rs[6:8])

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 1),
	// so a round-trip mismatch means the day never existed.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, fmt.Errorf("no such calendar date %q", s)
	}
	if year < MinBirthYear {
		return Date{}, fmt.Errorf("birth year %d precedes %d", year, MinBirthYear)
	}
	if t.After(now) {
		return Date{}, fmt.Errorf("birth date %s is in the future", t.Format("2006-01-02"))
	}
	return Date{year: year, month: time.Month(month), day: day}, nil
}

func atoi(rs []rune) int {
	n := 0
	for _, r := range rs {
		n = n*10 + int(r-'0')
	}
	return n
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Age returns completed years of age at the given instant.
func (d Date) Age(at time.Time) int {
	years := at.Year() - d.year
	if at.Month() < d.month || (at.Month() == d.month && at.Day() < d.day) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}
