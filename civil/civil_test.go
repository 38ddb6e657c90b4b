package civil_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lestrrat-go/httpdt/civil"
	"github.com/stretchr/testify/require"
)

const (
	day     = civil.SecondsPerDay
	month28 = 28 * day
	month29 = 29 * day
	month30 = 30 * day
	month31 = 31 * day
	year365 = 365 * day
	year366 = 366 * day
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		Name     string
		Input    uint64
		Expected civil.Fields
	}{
		{
			Name:     "epoch",
			Input:    0,
			Expected: civil.Fields{Year: 1970, Month: civil.January, Day: 1, Weekday: civil.Thursday},
		},
		{
			Name:     "one day after the epoch",
			Input:    day,
			Expected: civil.Fields{Year: 1970, Month: civil.January, Day: 2, Weekday: civil.Friday},
		},
		{
			Name:     "last second of February 1970",
			Input:    month31 + month28 - 1,
			Expected: civil.Fields{Year: 1970, Month: civil.February, Day: 28, Weekday: civil.Saturday, Hour: 23, Minute: 59, Second: 59},
		},
		{
			Name:     "first of March 1970",
			Input:    month31 + month28,
			Expected: civil.Fields{Year: 1970, Month: civil.March, Day: 1, Weekday: civil.Sunday},
		},
		{
			Name:     "last second of April 1970",
			Input:    month31*2 + month30 + month28 - 1,
			Expected: civil.Fields{Year: 1970, Month: civil.April, Day: 30, Weekday: civil.Thursday, Hour: 23, Minute: 59, Second: 59},
		},
		{
			Name:     "first of September 1970",
			Input:    month31*5 + month30*2 + month28,
			Expected: civil.Fields{Year: 1970, Month: civil.September, Day: 1, Weekday: civil.Tuesday},
		},
		{
			Name:     "last second of 1970",
			Input:    year365 - 1,
			Expected: civil.Fields{Year: 1970, Month: civil.December, Day: 31, Weekday: civil.Thursday, Hour: 23, Minute: 59, Second: 59},
		},
		{
			Name:     "leap day 1972",
			Input:    year365*2 + month31 + month29 - 1,
			Expected: civil.Fields{Year: 1972, Month: civil.February, Day: 29, Weekday: civil.Tuesday, Hour: 23, Minute: 59, Second: 59},
		},
		{
			Name:     "first of March 1972",
			Input:    year365*2 + month31 + month29,
			Expected: civil.Fields{Year: 1972, Month: civil.March, Day: 1, Weekday: civil.Wednesday},
		},
		{
			Name:     "last second of 1972",
			Input:    year365*2 + year366 - 1,
			Expected: civil.Fields{Year: 1972, Month: civil.December, Day: 31, Weekday: civil.Sunday, Hour: 23, Minute: 59, Second: 59},
		},
		{
			Name:     "first of January 2000",
			Input:    year365*23 + year366*7,
			Expected: civil.Fields{Year: 2000, Month: civil.January, Day: 1, Weekday: civil.Saturday},
		},
		{
			Name:     "leap day 2000",
			Input:    951782400,
			Expected: civil.Fields{Year: 2000, Month: civil.February, Day: 29, Weekday: civil.Tuesday},
		},
		{
			Name:     "last second of 2000",
			Input:    year365*23 + year366*8 - 1,
			Expected: civil.Fields{Year: 2000, Month: civil.December, Day: 31, Weekday: civil.Sunday, Hour: 23, Minute: 59, Second: 59},
		},
		{
			Name:     "RFC 7231 example",
			Input:    784111777,
			Expected: civil.Fields{Year: 1994, Month: civil.November, Day: 6, Weekday: civil.Sunday, Hour: 8, Minute: 49, Second: 37},
		},
		{
			Name:     "last second of 2024",
			Input:    year365*41 + year366*14 - 1,
			Expected: civil.Fields{Year: 2024, Month: civil.December, Day: 31, Weekday: civil.Tuesday, Hour: 23, Minute: 59, Second: 59},
		},
		{
			Name:     "2100 has no leap day",
			Input:    4107542400,
			Expected: civil.Fields{Year: 2100, Month: civil.March, Day: 1, Weekday: civil.Monday},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.Expected, civil.Decompose(tc.Input))
		})
	}
}

func TestDecomposeMatchesTime(t *testing.T) {
	t.Parallel()

	// 0001..9999 bounds what package time can render, which is wide
	// enough to cover several 400 year cycles after the epoch
	const limit = 253402300800
	rng := rand.New(rand.NewPCG(1, 2))
	samples := []uint64{0, 1, day - 1, day, limit - 1}
	for range 5000 {
		samples = append(samples, rng.Uint64N(limit))
	}

	for _, secs := range samples {
		ref := time.Unix(int64(secs), 0).UTC()
		got := civil.Decompose(secs)
		require.Equal(t, uint64(ref.Year()), got.Year, "year of %d", secs)
		require.Equal(t, int(ref.Month()), int(got.Month), "month of %d", secs)
		require.Equal(t, ref.Day(), int(got.Day), "day of %d", secs)
		require.Equal(t, int(ref.Weekday()), int(got.Weekday), "weekday of %d", secs)
		require.Equal(t, ref.Hour(), int(got.Hour), "hour of %d", secs)
		require.Equal(t, ref.Minute(), int(got.Minute), "minute of %d", secs)
		require.Equal(t, ref.Second(), int(got.Second), "second of %d", secs)
		require.Equal(t, ref.YearDay(), got.YearDay(), "day of year of %d", secs)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	samples := []uint64{0, 1, day, 784111777, 951782400, 4107542400, math.MaxUint64, math.MaxUint64 - day}
	for range 5000 {
		samples = append(samples, rng.Uint64())
	}
	for _, secs := range samples {
		require.Equal(t, secs, civil.Decompose(secs).Unix(), "round trip of %d", secs)
	}
}

func TestWeekday(t *testing.T) {
	t.Parallel()
	require.Equal(t, civil.Weekday(4), civil.Decompose(0).Weekday)
	require.Equal(t, civil.Weekday(5), civil.Decompose(day).Weekday)

	// weekdays advance by one per day
	prev := civil.Decompose(0).Weekday
	for i := uint64(1); i < 30; i++ {
		cur := civil.Decompose(i * day).Weekday
		require.Equal(t, (prev+1)%7, cur)
		prev = cur
	}
}

func TestIsLeapYear(t *testing.T) {
	t.Parallel()
	for _, y := range []uint64{1972, 2000, 2004, 2024, 2096, 2400} {
		require.True(t, civil.IsLeapYear(y), "%d", y)
	}
	for _, y := range []uint64{1900, 1970, 2001, 2100, 2200, 2300} {
		require.False(t, civil.IsLeapYear(y), "%d", y)
	}
}

func TestDaysIn(t *testing.T) {
	t.Parallel()
	require.Equal(t, 29, civil.DaysIn(civil.February, 2000))
	require.Equal(t, 28, civil.DaysIn(civil.February, 2100))
	require.Equal(t, 29, civil.DaysIn(civil.February, 2096))
	require.Equal(t, 31, civil.DaysIn(civil.December, 2023))
	require.Equal(t, 30, civil.DaysIn(civil.November, 2023))
	require.Equal(t, 0, civil.DaysIn(civil.Month(13), 2023))
	require.Equal(t, 0, civil.DaysIn(civil.Month(0), 2023))
}

func TestLeapDayPlacement(t *testing.T) {
	t.Parallel()
	feb28 := civil.Decompose(951696000)
	require.Equal(t, civil.Fields{Year: 2000, Month: civil.February, Day: 28, Weekday: civil.Monday}, feb28)

	feb29 := civil.Decompose(951696000 + day)
	require.Equal(t, civil.February, feb29.Month)
	require.Equal(t, uint8(29), feb29.Day)
	require.Equal(t, feb28.YearDay()+1, feb29.YearDay())

	mar01 := civil.Decompose(951696000 + 2*day)
	require.Equal(t, civil.March, mar01.Month)
	require.Equal(t, uint8(1), mar01.Day)
}

func TestNames(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Jan", civil.January.String())
	require.Equal(t, "Dec", civil.December.String())
	require.Equal(t, "Sun", civil.Sunday.String())
	require.Equal(t, "Sat", civil.Saturday.String())
	require.Equal(t, "%!Month(13)", civil.Month(13).String())
	require.Equal(t, "%!Weekday(7)", civil.Weekday(7).String())
}

func TestFieldsGet(t *testing.T) {
	t.Parallel()
	f := civil.Decompose(784111777)

	t.Run("year", func(t *testing.T) {
		t.Parallel()
		var year uint64
		require.NoError(t, f.Get("year", &year))
		require.Equal(t, uint64(1994), year)
	})
	t.Run("month", func(t *testing.T) {
		t.Parallel()
		var month civil.Month
		require.NoError(t, f.Get("month", &month))
		require.Equal(t, civil.November, month)
	})
	t.Run("weekday", func(t *testing.T) {
		t.Parallel()
		var wd civil.Weekday
		require.NoError(t, f.Get("weekday", &wd))
		require.Equal(t, civil.Sunday, wd)
	})
	t.Run("second", func(t *testing.T) {
		t.Parallel()
		var sec uint8
		require.NoError(t, f.Get("second", &sec))
		require.Equal(t, uint8(37), sec)
	})
	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		var v int
		require.Error(t, f.Get("century", &v))
	})
	t.Run("non-pointer destination", func(t *testing.T) {
		t.Parallel()
		var v uint64
		require.Error(t, f.Get("year", v))
	})
}
