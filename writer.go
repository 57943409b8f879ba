package stylus

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// dateNumFmt is the builtin "m/d/yyyy" number format, a date without time.
const dateNumFmt = 14

// WriteOptions controls how the output workbook is opened.
type WriteOptions struct {
	// Create creates the workbook and the sheet if they do not exist.
	Create bool
}

// Write writes a portfolio and its metadata in the Stylus layout into the sheet of an
// existing workbook, and saves the workbook in place.
//
// The workbook is not written atomically: a failure while saving may leave it partially
// written. Use [Backup] beforehand to keep a copy.
func Write(path, sheet string, t *Table, m *Metadata, opts WriteOptions) error {
	f, err := openOutput(path, sheet, opts.Create)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteFile(f, sheet, t, m); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	if err := f.SaveAs(path); err != nil {
		return ioError("cannot save workbook %q", err, path)
	}
	return nil
}

// openOutput opens the output workbook, it must contain the sheet unless create is true.
func openOutput(path, sheet string, create bool) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	switch {
	case err == nil:
	case create && errors.Is(err, fs.ErrNotExist):
		f = excelize.NewFile()
		// A new workbook comes with a default sheet, rename it.
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			f.Close()
			return nil, ioError("cannot create sheet %q", err, sheet)
		}
	default:
		return nil, ioError("cannot open workbook %q", err, path)
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		f.Close()
		return nil, ioError("invalid sheet name %q", err, sheet)
	}
	if idx < 0 {
		if !create {
			f.Close()
			return nil, fmt.Errorf("%w: sheet %q does not exist in %q", ErrIO, sheet, path)
		}
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, ioError("cannot create sheet %q", err, sheet)
		}
	}
	return f, nil
}

// WriteFile writes a portfolio and its metadata in the Stylus layout into the sheet of
// an opened workbook. Existing cell values of the sheet are cleared first.
//
// Metadata keys go to row 1 and values to row 2, one pair per column, date headers go to
// row 4 from column D, and funds from row 5: the ID in column A, then Label, DBID and
// the weights at each date. Missing weights are written as zero. Weights are
// numeric cells, stored with float64 precision.
func WriteFile(f *excelize.File, sheet string, t *Table, m *Metadata) error {
	if err := clearSheet(f, sheet); err != nil {
		return err
	}

	col := 1
	for k, v := range m.All() {
		if err := setCell(f, sheet, Cell{Col: col, Row: metadataKeyRow}, k); err != nil {
			return err
		}
		if err := setCell(f, sheet, Cell{Col: col, Row: metadataValueRow}, metadataValue(v)); err != nil {
			return err
		}
		col++
	}

	dates := t.Dates()
	if len(dates) > 0 {
		for i, day := range dates {
			if err := setCell(f, sheet, Cell{Col: firstDateCol + i, Row: headerRow}, day.Time()); err != nil {
				return err
			}
		}
		style, err := f.NewStyle(&excelize.Style{NumFmt: dateNumFmt})
		if err != nil {
			return fmt.Errorf("cannot create date style: %w", err)
		}
		from := Cell{Col: firstDateCol, Row: headerRow}
		to := Cell{Col: firstDateCol + len(dates) - 1, Row: headerRow}
		if err := f.SetCellStyle(sheet, from.String(), to.String(), style); err != nil {
			return fmt.Errorf("cannot set date style on %s:%s: %w", from, to, err)
		}
	}

	for i, r := range t.Records() {
		row := make([]any, 0, 1+t.Columns())
		row = append(row, r.ID, r.Label, r.DBID)
		for _, day := range dates {
			row = append(row, r.Weight(day).InexactFloat64())
		}
		start := Cell{Col: 1, Row: firstDataRow + i}
		if err := f.SetSheetRow(sheet, start.String(), &row); err != nil {
			return fmt.Errorf("cannot write fund %q at %s: %w", r.ID, start, err)
		}
	}
	return nil
}

// clearSheet erases previously written values, so that no stale fund or metadata remains.
func clearSheet(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return ioError("cannot read sheet %q", err, sheet)
	}
	for r, cells := range rows {
		for c, v := range cells {
			if v == "" {
				continue
			}
			cell := Cell{Col: c + 1, Row: r + 1}
			if err := f.SetCellDefault(sheet, cell.String(), ""); err != nil {
				return fmt.Errorf("cannot clear cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// metadataValue returns v as a number when it is the canonical text of one, so that
// numeric metadata read from a sheet is written back as a number. Texts like "0012"
// keep their zeros.
func metadataValue(v string) any {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || strconv.FormatFloat(n, 'f', -1, 64) != v {
		return v
	}
	return n
}

func setCell(f *excelize.File, sheet string, c Cell, value any) error {
	if err := f.SetCellValue(sheet, c.String(), value); err != nil {
		return fmt.Errorf("cannot write cell %s: %w", c, err)
	}
	return nil
}

// Backup copies the workbook at path to path+".bak". It does nothing if path does not exist.
func Backup(path string) (string, error) {
	src, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", ioError("cannot open %q for backup", err, path)
	}
	defer src.Close()

	backup := path + ".bak"
	dst, err := os.Create(backup)
	if err != nil {
		return "", ioError("cannot create backup %q", err, backup)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", ioError("cannot write backup %q", err, backup)
	}
	if err := dst.Close(); err != nil {
		return "", ioError("cannot write backup %q", err, backup)
	}
	return backup, nil
}
