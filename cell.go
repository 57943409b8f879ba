package stylus

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell is a 1-based position in a sheet.
type Cell struct {
	Col, Row int
}

// String returns the cell name, like "B5".
func (c Cell) String() string {
	name, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		// only invalid coordinates, keep something readable
		return fmt.Sprintf("R%dC%d", c.Row, c.Col)
	}
	return name
}

// ColumnName returns the column letters of the cell, like "B".
func (c Cell) ColumnName() string {
	name, err := excelize.ColumnNumberToName(c.Col)
	if err != nil {
		return fmt.Sprintf("C%d", c.Col)
	}
	return name
}

// ParseCell parses a cell name like "B5".
func ParseCell(name string) (Cell, error) {
	col, row, err := excelize.CellNameToCoordinates(strings.TrimSpace(name))
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell %q: %w", name, err)
	}
	return Cell{Col: col, Row: row}, nil
}

// CellRange is a rectangular region of a sheet.
type CellRange struct {
	From, To Cell
}

// String returns the range expression, like "A5:A14".
func (r CellRange) String() string { return r.From.String() + ":" + r.To.String() }

// ParseCellRange parses a range expression like "A5:A14".
func ParseCellRange(s string) (CellRange, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return CellRange{}, fmt.Errorf("invalid cell range %q: want <cell>:<cell>", s)
	}
	var (
		r   CellRange
		err error
	)
	if r.From, err = ParseCell(from); err != nil {
		return CellRange{}, fmt.Errorf("invalid cell range %q: %w", s, err)
	}
	if r.To, err = ParseCell(to); err != nil {
		return CellRange{}, fmt.Errorf("invalid cell range %q: %w", s, err)
	}
	return r, nil
}
