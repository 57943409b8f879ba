package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a rebalancing frequency of a portfolio.
type Period int

const (
	Weekly Period = iota
	Monthly
	Quarterly
	SemiAnnually
	Annually
)

// String returns the name Stylus uses for the period.
func (p Period) String() string {
	switch p {
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	case Quarterly:
		return "Quarterly"
	case SemiAnnually:
		return "Semi-Annually"
	case Annually:
		return "Annually"
	default:
		panic(fmt.Sprintf("unknown period %d", int(p)))
	}
}

// months returns the length in months of the period, 0 for Weekly.
func (p Period) months() int {
	switch p {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case SemiAnnually:
		return 6
	case Annually:
		return 12
	default:
		return 0
	}
}

// ParsePeriod parses a rebalancing frequency, case insensitive.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "semi-annually", "semiannually", "semi-annual":
		return SemiAnnually, nil
	case "annually", "annual", "yearly", "year":
		return Annually, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q", p)
	}
}

// daysIn returns the number of days of the month.
func daysIn(year int, month time.Month) int { return New(year, month+1, 0).Day() }

// IsEndOfMonth reports whether d is the last day of its month.
func (d Date) IsEndOfMonth() bool { return d.d == daysIn(d.y, d.m) }

// Next returns the date one period after d.
//
// Month based periods keep the day of month, clamped to the length of the target month.
// The last day of a month maps to the last day of the target month.
func (d Date) Next(p Period) Date {
	n := p.months()
	if n == 0 {
		return d.Add(7)
	}
	target := New(d.y, d.m+time.Month(n), 1)
	last := daysIn(target.y, target.m)
	if d.IsEndOfMonth() || d.d > last {
		return New(target.y, target.m, last)
	}
	return New(target.y, target.m, d.d)
}
