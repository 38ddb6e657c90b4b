// Package httpdt generates timestamps for the HTTP Date header.
//
// A Datetime is an immutable snapshot of a number of whole seconds since
// 1970-01-01T00:00:00Z. ForHeader renders it as an IMF-fixdate, the only
// date format an HTTP implementation must produce:
//
//	dt, err := httpdt.New()
//	if err != nil {
//		// the clock is unavailable; RFC 9110 says to omit the header
//	}
//	w.Header().Set("Date", dt.ForHeader())
//
//	// later, refresh without keeping track of how dt was built
//	dt, err = dt.Now()
//
// Calendar arithmetic lives in package civil and rendering in package
// fixdate; both are pure and never consult the clock. All instants are UTC
// and the rendering always ends in the literal GMT.
package httpdt

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lestrrat-go/httpdt/civil"
	"github.com/lestrrat-go/httpdt/fixdate"
)

// ErrClockUnavailable is returned when the clock cannot provide a reading
// at or after the Unix epoch.
var ErrClockUnavailable = errors.New("httpdt: clock unavailable")

// Datetime holds a number of whole seconds since the Unix epoch.
// The zero value is the epoch itself.
type Datetime struct {
	secs uint64
}

// Epoch returns the Datetime for 1970-01-01T00:00:00Z.
func Epoch() Datetime {
	return Datetime{}
}

// At returns the Datetime secs seconds after the epoch.
func At(secs uint64) Datetime {
	return Datetime{secs: secs}
}

// FromTime returns the Datetime for t, truncated to the second.
// Times before the epoch are rejected with ErrClockUnavailable.
func FromTime(t time.Time) (Datetime, error) {
	secs := t.Unix()
	if secs < 0 {
		return Datetime{}, fmt.Errorf("clock reading %s precedes the epoch: %w", t.UTC().Format(time.RFC3339), ErrClockUnavailable)
	}
	return Datetime{secs: uint64(secs)}, nil
}

// New reads the clock and returns a Datetime for the current second.
func New(options ...NewOption) (Datetime, error) {
	var clock Clock = SystemClock{}
	for _, option := range options {
		switch option.Ident() {
		case identClock{}:
			clock, _ = option.Value().(Clock)
		}
	}

	if clock == nil {
		return Datetime{}, fmt.Errorf("no clock configured: %w", ErrClockUnavailable)
	}
	return FromTime(clock.Now())
}

// Now reads the clock again and returns a new Datetime for the current
// second. It performs the same read and validation as New; d is left as is.
func (d Datetime) Now(options ...NewOption) (Datetime, error) {
	return New(options...)
}

// Raw returns the number of seconds since the epoch.
func (d Datetime) Raw() uint64 {
	return d.secs
}

// Fields returns the calendar decomposition of d.
func (d Datetime) Fields() civil.Fields {
	return civil.Decompose(d.secs)
}

// ForHeader returns d formatted for the HTTP Date header,
// e.g. "Sun, 06 Nov 1994 08:49:37 GMT".
func (d Datetime) ForHeader() string {
	return fixdate.Format(d.Fields())
}

// AppendHeader appends the ForHeader rendering of d to dst.
func (d Datetime) AppendHeader(dst []byte) []byte {
	return fixdate.Append(dst, d.Fields())
}

func (d Datetime) String() string {
	return d.ForHeader()
}

// Time returns d as a UTC time.Time. Instants past the range of time.Time
// seconds saturate at math.MaxInt64.
func (d Datetime) Time() time.Time {
	if d.secs > math.MaxInt64 {
		return time.Unix(math.MaxInt64, 0).UTC()
	}
	return time.Unix(int64(d.secs), 0).UTC()
}

// Before reports whether d is strictly earlier than other.
func (d Datetime) Before(other Datetime) bool {
	return d.secs < other.secs
}

// Equal reports whether d and other denote the same second.
func (d Datetime) Equal(other Datetime) bool {
	return d.secs == other.secs
}
