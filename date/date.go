// Package date provides a day-granularity calendar date, the rebalancing
// periods used by Stylus portfolios, and chronological series of values.
package date

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the day of t, the time of day is discarded.
func FromTime(t time.Time) Date { return New(t.Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Time returns the day at midnight UTC.
func (d Date) Time() time.Time { return d.time() }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on d being before, equal or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Today returns the current date.
func Today() Date { return FromTime(time.Now()) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1",
// and date-times like "2018-01-01T00:00:00" or "2018-01-01 00:00:00" whose time is dropped.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range []string{readDateFormat, "2006-01-02T15:04:05", "2006-01-02 15:04:05", time.RFC3339} {
		if on, err := time.Parse(layout, str); err == nil {
			return FromTime(on), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", str, DateFormat)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Union returns all unique dates of the given series in ascending order.
// Each series must already be sorted.
func Union(series ...[]Date) []Date {
	return slices.Collect(iterate(series...))
}

// iterate returns an iterator over all unique, sorted dates from multiple series of dates.
func iterate(series ...[]Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		indexes := make([]int, len(series))
		heads := make([]Date, 0, len(series))
		for {
			heads = heads[:0]
			for i, index := range indexes {
				if index < len(series[i]) {
					heads = append(heads, series[i][index])
				}
			}
			if len(heads) == 0 {
				// All series have been consumed.
				return
			}
			m := slices.MinFunc(heads, Date.Compare)
			// consume every head equal to the min
			for i, index := range indexes {
				if index < len(series[i]) && series[i][index] == m {
					indexes[i]++
				}
			}
			if !yield(m) {
				return
			}
		}
	}
}
