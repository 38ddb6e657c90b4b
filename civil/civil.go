// Package civil decomposes a count of seconds since the Unix epoch into
// proleptic Gregorian calendar fields, using integer arithmetic only.
//
// All functions in this package are pure: they read no clock, no locale and
// no global mutable state, and are safe for concurrent use.
package civil

import (
	"fmt"

	"github.com/lestrrat-go/blackmagic"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
)

const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
	daysPerYear     = 365

	// days from 0001-01-01 to 1970-01-01
	unixToInternal = 719162

	// 1970-01-01 was a Thursday
	epochWeekday = Thursday
)

// Month is a month of the year, January = 1.
type Month uint8

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

const monthNames = "JanFebMarAprMayJunJulAugSepOctNovDec"

// String returns the three letter abbreviation used by IMF-fixdate.
func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("%%!Month(%d)", uint8(m))
	}
	i := 3 * int(m-1)
	return monthNames[i : i+3]
}

// Weekday is a day of the week, Sunday = 0.
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const weekdayNames = "SunMonTueWedThuFriSat"

// String returns the three letter abbreviation used by IMF-fixdate.
func (d Weekday) String() string {
	if d > Saturday {
		return fmt.Sprintf("%%!Weekday(%d)", uint8(d))
	}
	i := 3 * int(d)
	return weekdayNames[i : i+3]
}

var daysInMonth = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year uint64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month m of the given year.
// It returns 0 for an invalid month.
func DaysIn(m Month, year uint64) int {
	if m < January || m > December {
		return 0
	}
	if m == February && IsLeapYear(year) {
		return 29
	}
	return int(daysInMonth[m-1])
}

// Fields holds the civil calendar decomposition of an instant in UTC.
type Fields struct {
	Year    uint64
	Month   Month
	Day     uint8
	Weekday Weekday
	Hour    uint8
	Minute  uint8
	Second  uint8
}

// Decompose converts secs, a count of whole seconds since
// 1970-01-01T00:00:00Z, into calendar fields. It is defined for every uint64.
func Decompose(secs uint64) Fields {
	days := secs / SecondsPerDay
	rem := secs % SecondsPerDay

	f := Fields{
		Hour:    uint8(rem / SecondsPerHour),
		Minute:  uint8(rem % SecondsPerHour / SecondsPerMinute),
		Second:  uint8(rem % SecondsPerMinute),
		Weekday: Weekday((days + uint64(epochWeekday)) % 7),
	}

	year, yday := yearAndDay(days)
	f.Year = year
	f.Month, f.Day = monthAndDay(yday, IsLeapYear(year))
	return f
}

// yearAndDay resolves days since the epoch into a year and a zero-based
// day of that year.
func yearAndDay(days uint64) (uint64, uint64) {
	d := days + unixToInternal

	n := d / daysPer400Years
	year := 400 * n
	d -= daysPer400Years * n

	// the last day of a 400 year cycle belongs to the fourth century
	n = d / daysPer100Years
	if n == 4 {
		n = 3
	}
	year += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	year += 4 * n
	d -= daysPer4Years * n

	// likewise, the leap day closes the fourth year of a 4 year cycle
	n = d / daysPerYear
	if n == 4 {
		n = 3
	}
	year += n
	d -= daysPerYear * n

	return year + 1, d
}

func monthAndDay(yday uint64, leap bool) (Month, uint8) {
	m := January
	for ; m < December; m++ {
		n := uint64(daysInMonth[m-1])
		if m == February && leap {
			n++
		}
		if yday < n {
			break
		}
		yday -= n
	}
	return m, uint8(yday + 1)
}

// daysBefore returns the number of days from the epoch to January 1st of year.
// year must be at least 1970.
func daysBefore(year uint64) uint64 {
	y := year - 1
	return 365*y + y/4 - y/100 + y/400 - unixToInternal
}

// YearDay returns the day of the year, starting at 1.
func (f Fields) YearDay() int {
	leap := IsLeapYear(f.Year)
	n := int(f.Day)
	for m := January; m < f.Month; m++ {
		n += int(daysInMonth[m-1])
		if m == February && leap {
			n++
		}
	}
	return n
}

// Unix reconstructs the number of seconds since the epoch that f describes.
// For any secs, Decompose(secs).Unix() == secs.
func (f Fields) Unix() uint64 {
	days := daysBefore(f.Year) + uint64(f.YearDay()-1)
	return days*SecondsPerDay +
		uint64(f.Hour)*SecondsPerHour +
		uint64(f.Minute)*SecondsPerMinute +
		uint64(f.Second)
}

// Get assigns the named field to dst. Valid names are "year", "month",
// "day", "weekday", "hour", "minute" and "second". It serves callers that
// select fields by name at run time, such as log formats or templates
// configured with a list of field names. dst may be of any type the field
// converts to.
func (f Fields) Get(name string, dst any) error {
	var v any
	switch name {
	case "year":
		v = f.Year
	case "month":
		v = f.Month
	case "day":
		v = f.Day
	case "weekday":
		v = f.Weekday
	case "hour":
		v = f.Hour
	case "minute":
		v = f.Minute
	case "second":
		v = f.Second
	default:
		return fmt.Errorf("civil: unknown field %q", name)
	}
	if err := blackmagic.AssignIfCompatible(dst, v); err != nil {
		return fmt.Errorf("civil: failed to assign field %q: %w", name, err)
	}
	return nil
}
