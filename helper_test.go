package stylus

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/stylus/date"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// W is a helper for test to create weights from const.
func W(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// fund is a row of a test table, weights are given as "date=weight".
type fund struct {
	id, label, dbid string
	weights         []string
}

// newTable builds a table with the given date columns and funds.
func newTable(t *testing.T, dates []string, funds ...fund) *Table {
	t.Helper()
	tab := NewTable()
	for _, d := range dates {
		tab.AddDate(date.MustParse(d))
	}
	for _, f := range funds {
		if _, err := tab.AddFund(f.id, f.label, f.dbid); err != nil {
			t.Fatalf("AddFund(%q) error = %v", f.id, err)
		}
		for _, w := range f.weights {
			day, value, _ := strings.Cut(w, "=")
			if err := tab.SetWeight(f.id, date.MustParse(day), W(value)); err != nil {
				t.Fatalf("SetWeight(%q) error = %v", f.id, err)
			}
		}
	}
	return tab
}

// dump renders a table as one line per fund, "ID|Label|DBID|w1|w2...", after a header
// line listing the dates. Missing weights are rendered as "-".
func dump(tab *Table) []string {
	dates := tab.Dates()
	header := []string{"ID", "Label", "DBID"}
	for _, d := range dates {
		header = append(header, d.String())
	}
	lines := []string{strings.Join(header, "|")}
	for _, r := range tab.Records() {
		fields := []string{r.ID, r.Label, r.DBID}
		for _, d := range dates {
			if w, ok := r.Weights.Get(d); ok {
				fields = append(fields, w.String())
			} else {
				fields = append(fields, "-")
			}
		}
		lines = append(lines, strings.Join(fields, "|"))
	}
	return lines
}

// newWorkbook saves a workbook with a single sheet filled with cells, given as
// "A1" -> value, and returns its path.
func newWorkbook(t *testing.T, sheet string, cells map[string]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("SetSheetName() error = %v", err)
	}
	for cell, v := range cells {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			t.Fatalf("SetCellValue(%s) error = %v", cell, err)
		}
	}
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	return path
}

// exampleA and exampleB are the two portfolios of the package documentation.
func exampleA(t *testing.T) *Table {
	return newTable(t, nil, fund{"FOUSA1", "MStarFund", "MfX", []string{"2018-01-01=10"}})
}

func exampleB(t *testing.T) *Table {
	return newTable(t, nil,
		fund{"FOUSA1", "", "", []string{"2018-02-01=45.678"}},
		fund{"012345", "eVestFund", "eVa", []string{"2018-02-01=0"}},
	)
}
