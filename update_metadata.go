package stylus

// Positions of the Stylus layout.
const (
	metadataKeyRow   = 1
	metadataValueRow = 2
	headerRow        = 4
	firstDataRow     = 5
	firstDateCol     = 4 // column D
)

// Ranges are the cell ranges where each logical column of a table lives in the Stylus layout.
type Ranges struct {
	ID, Label, DBID, Dates CellRange
}

// DerivedRanges computes the ranges of t in the Stylus layout.
//
// Funds occupy rows 5 to Len()+4, and the date headers occupy row 4 from column D to
// the last table column.
func DerivedRanges(t *Table) Ranges {
	last := t.Len() + firstDataRow - 1
	lastCol := t.Columns() + 1
	column := func(col int) CellRange {
		return CellRange{From: Cell{Col: col, Row: firstDataRow}, To: Cell{Col: col, Row: last}}
	}
	return Ranges{
		ID:    column(1),
		Label: column(2),
		DBID:  column(3),
		Dates: CellRange{From: Cell{Col: firstDateCol, Row: headerRow}, To: Cell{Col: lastCol, Row: headerRow}},
	}
}

// UpdateMetadata returns a new Metadata reflecting the shape of t.
//
// It starts from primary (an empty one if nil), defaults the rebalancing frequency to
// Monthly, marks the portfolio as Advanced and rewrites the four derived range keys.
// Keys of secondary missing from the result are then appended: primary always wins.
// Neither primary nor secondary are modified.
func UpdateMetadata(t *Table, primary, secondary *Metadata) *Metadata {
	m := primary.Clone()
	if !m.Has(KeyRebalance) {
		m.Set(KeyRebalance, DefaultRebalance)
	}
	// The writer only produces the Advanced layout.
	m.Set(KeyPortfolioType, AdvancedPortfolio)

	r := DerivedRanges(t)
	m.Set(KeyAssetIDRange, r.ID.String())
	m.Set(KeyLabelRange, r.Label.String())
	m.Set(KeyDBIDRange, r.DBID.String())
	m.Set(KeyDateRange, r.Dates.String())

	for k, v := range secondary.All() {
		if !m.Has(k) {
			m.Set(k, v)
		}
	}
	return m
}

// Override returns a copy of m where every key of overrides is set to its value.
//
// Derived range keys cannot be overridden.
func Override(m, overrides *Metadata) (*Metadata, error) {
	res := m.Clone()
	for k, v := range overrides.All() {
		if IsDerived(k) {
			return nil, formatErrorf("overrides", "", "metadata key %q is derived from the portfolio and cannot be overridden", k)
		}
		res.Set(k, v)
	}
	return res, nil
}
