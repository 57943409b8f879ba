package stylus

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/stylus/date"
	"github.com/shopspring/decimal"
)

// Fixed column names of a portfolio table.
const (
	IDColumn    = "ID"
	LabelColumn = "Label"
	DBIDColumn  = "DBID"
)

// Record is a single fund of a portfolio.
type Record struct {
	ID    string // Fund ID within DBID.
	Label string // Referential label within the portfolio.
	DBID  string // ID of the parent database in Stylus.

	// Weights of the fund, a missing date means no weight was supplied.
	Weights date.History[decimal.Decimal]
}

// Weight returns the weight of the fund on day, zero if none was supplied.
func (r *Record) Weight(day date.Date) decimal.Decimal {
	w, _ := r.Weights.Get(day)
	return w
}

func (r *Record) clone() *Record {
	c := *r
	c.Weights = r.Weights.Clone()
	return &c
}

// Table is an ordered list of funds, keyed by their unique ID, with their weights at a
// growable set of dates.
//
// Column order is ID (key), Label, DBID, then the dates in ascending order.
type Table struct {
	records []*Record
	index   map[string]*Record
	dates   []date.Date // always sorted
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]*Record)}
}

// Len returns the number of funds.
func (t *Table) Len() int { return len(t.records) }

// Columns returns the number of non key columns: Label, DBID and the dates.
func (t *Table) Columns() int { return 2 + len(t.dates) }

// Dates returns a copy of the date columns, in ascending order.
func (t *Table) Dates() []date.Date { return slices.Clone(t.dates) }

// IDs returns the fund IDs in table order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.records))
	for i, r := range t.records {
		ids[i] = r.ID
	}
	return ids
}

// Records iterates over the funds in table order.
func (t *Table) Records() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		for i, r := range t.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Get returns the fund with that id, or nil.
func (t *Table) Get(id string) *Record { return t.index[id] }

// AddFund appends a new fund to the table.
func (t *Table) AddFund(id, label, dbid string) (*Record, error) {
	if id == "" {
		return nil, fmt.Errorf("fund ID cannot be empty")
	}
	if _, exists := t.index[id]; exists {
		return nil, fmt.Errorf("fund %q already exists", id)
	}
	r := &Record{ID: id, Label: label, DBID: dbid}
	t.records = append(t.records, r)
	t.index[id] = r
	return r, nil
}

// AddDate adds a date column. It does nothing if the column already exists.
func (t *Table) AddDate(day date.Date) {
	i, found := slices.BinarySearchFunc(t.dates, day, date.Date.Compare)
	if !found {
		t.dates = slices.Insert(t.dates, i, day)
	}
}

// HasDate reports whether the table has a column for day.
func (t *Table) HasDate(day date.Date) bool {
	_, found := slices.BinarySearchFunc(t.dates, day, date.Date.Compare)
	return found
}

// SetWeight sets the weight of a fund, adding the date column if needed.
func (t *Table) SetWeight(id string, day date.Date, w decimal.Decimal) error {
	r := t.index[id]
	if r == nil {
		return fmt.Errorf("unknown fund %q", id)
	}
	t.AddDate(day)
	r.Weights.Append(day, w)
	return nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable()
	c.dates = slices.Clone(t.dates)
	for _, r := range t.records {
		rc := r.clone()
		c.records = append(c.records, rc)
		c.index[rc.ID] = rc
	}
	return c
}
