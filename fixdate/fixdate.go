// Package fixdate renders civil calendar fields as an IMF-fixdate, the
// format RFC 9110 (formerly RFC 7231) mandates for the HTTP Date header:
//
//	Sun, 06 Nov 1994 08:49:37 GMT
//
// The zone is always the literal GMT; fields are expected to be in UTC.
package fixdate

import (
	"strconv"

	"github.com/lestrrat-go/httpdt/civil"
)

// TimeFormat is the layout of an IMF-fixdate in the notation of package
// time, suitable for time.Parse.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Len is the length in bytes of every IMF-fixdate whose year has four digits.
const Len = len(TimeFormat)

// MaxFixedWidth is the first instant, in seconds since the epoch, whose
// year (10000) no longer fits in four digits. Below it every rendering is
// exactly Len bytes long.
const MaxFixedWidth = 253402300800

const (
	weekdayNames = "SunMonTueWedThuFriSat"
	monthNames   = "JanFebMarAprMayJunJulAugSepOctNovDec"
)

// Append appends the IMF-fixdate rendering of f to dst and returns the
// extended buffer. Years are zero padded to four digits and never truncated.
func Append(dst []byte, f civil.Fields) []byte {
	wd := weekdayNames[3*int(f.Weekday%7):]
	mon := monthNames[3*int((f.Month+11)%12):]

	dst = append(dst,
		wd[0], wd[1], wd[2], ',', ' ',
		'0'+f.Day/10, '0'+f.Day%10, ' ',
		mon[0], mon[1], mon[2], ' ',
	)
	dst = appendYear(dst, f.Year)
	return append(dst, ' ',
		'0'+f.Hour/10, '0'+f.Hour%10, ':',
		'0'+f.Minute/10, '0'+f.Minute%10, ':',
		'0'+f.Second/10, '0'+f.Second%10, ' ',
		'G', 'M', 'T',
	)
}

func appendYear(dst []byte, year uint64) []byte {
	if year < 10000 {
		return append(dst,
			byte('0'+year/1000),
			byte('0'+year/100%10),
			byte('0'+year/10%10),
			byte('0'+year%10),
		)
	}
	return strconv.AppendUint(dst, year, 10)
}

// Format returns the IMF-fixdate rendering of f.
func Format(f civil.Fields) string {
	var buf [Len]byte
	return string(Append(buf[:0], f))
}
