package stylus

import (
	"github.com/etnz/stylus/date"
)

// MergeOptions controls how conflicting funds are merged.
type MergeOptions struct {
	// Strict fails with a ConflictError when both portfolios have different non blank
	// Label or DBID for the same fund, instead of keeping the value of additions.
	Strict bool
}

// Merge outer merges additions into portfolio and returns the result as a new table.
//
// Funds of both tables appear exactly once: portfolio funds first in their order, then
// funds only known by additions in their order. When a fund exists in both tables,
// additions takes precedence for Label, DBID and every weight it supplies, but blank
// values never overwrite. Date columns are the union of both tables, in ascending order.
//
// A fund has no weight for a date column coming only from the other table; such
// weights are written as zero.
func Merge(portfolio, additions *Table, opts MergeOptions) (*Table, error) {
	res := portfolio.Clone()
	res.dates = date.Union(portfolio.dates, additions.dates)

	for _, add := range additions.records {
		r := res.index[add.ID]
		if r == nil {
			c := add.clone()
			res.records = append(res.records, c)
			res.index[c.ID] = c
			continue
		}
		label, err := coalesce(add.ID, LabelColumn, r.Label, add.Label, opts.Strict)
		if err != nil {
			return nil, err
		}
		dbid, err := coalesce(add.ID, DBIDColumn, r.DBID, add.DBID, opts.Strict)
		if err != nil {
			return nil, err
		}
		r.Label, r.DBID = label, dbid
		for day, w := range add.Weights.Values() {
			r.Weights.Append(day, w)
		}
	}
	return res, nil
}

// coalesce returns the value of a field of fund id, given its current value and the
// value coming from the additions.
func coalesce(id, field, current, addition string, strict bool) (string, error) {
	switch {
	case addition == "":
		return current, nil
	case current == "" || current == addition:
		return addition, nil
	case strict:
		return "", &ConflictError{ID: id, Field: field, Values: [2]string{current, addition}}
	default:
		return addition, nil
	}
}
