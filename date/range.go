package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the smallest range containing all the dates, and false if there are none.
func NewRange(dates ...Date) (Range, bool) {
	if len(dates) == 0 {
		return Range{}, false
	}
	r := Range{From: dates[0], To: dates[0]}
	for _, d := range dates[1:] {
		if d.Before(r.From) {
			r.From = d
		}
		if d.After(r.To) {
			r.To = d
		}
	}
	return r, true
}

func (r Range) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return fmt.Sprintf("%s to %s", r.From, r.To)
}
