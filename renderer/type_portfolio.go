package renderer

import (
	"strings"

	"github.com/etnz/stylus"
	"github.com/etnz/stylus/date"
	"github.com/shopspring/decimal"
)

// Portfolio is the view of a portfolio table and its metadata.
type Portfolio struct {
	// Name of the portfolio, usually the workbook and sheet it comes from.
	Name string `json:"name"`
	// Span is the range of dates of the portfolio, blank if there are no dates.
	Span string `json:"span,omitempty"`
	// Metadata in order.
	Metadata []MetadataEntry `json:"metadata,omitempty"`
	// Dates are the date columns.
	Dates []string `json:"dates"`
	// Funds in table order.
	Funds []Fund `json:"funds"`
	// Totals are the sum of the weights at each date.
	Totals []string `json:"totals"`
}

// MetadataEntry is a single metadata key and value.
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Fund is a row of the portfolio, weights are blank when missing.
type Fund struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	DBID    string   `json:"dbid"`
	Weights []string `json:"weights"`
}

// NewPortfolio creates the view of a table. Metadata can be nil.
func NewPortfolio(name string, t *stylus.Table, m *stylus.Metadata) *Portfolio {
	dates := t.Dates()
	p := &Portfolio{Name: name}
	if span, ok := date.NewRange(dates...); ok {
		p.Span = span.String()
	}
	for k, v := range m.All() {
		p.Metadata = append(p.Metadata, MetadataEntry{Key: escape(k), Value: escape(v)})
	}

	totals := make([]decimal.Decimal, len(dates))
	for _, d := range dates {
		p.Dates = append(p.Dates, d.String())
	}
	for _, r := range t.Records() {
		f := Fund{ID: escape(r.ID), Label: escape(r.Label), DBID: escape(r.DBID)}
		for i, d := range dates {
			w, ok := r.Weights.Get(d)
			if !ok {
				f.Weights = append(f.Weights, "")
				continue
			}
			totals[i] = totals[i].Add(w)
			f.Weights = append(f.Weights, w.String())
		}
		p.Funds = append(p.Funds, f)
	}
	for _, total := range totals {
		p.Totals = append(p.Totals, total.String())
	}
	return p
}

// escape makes s safe inside a markdown table cell.
func escape(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
