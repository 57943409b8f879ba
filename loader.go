package stylus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/stylus/date"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Layout is the cell layout of a portfolio sheet.
type Layout int

const (
	// Generic sheets have a header row whose first cell is "ID", followed by the funds:
	//
	//	     A        B       C       D       E
	//	1   ID      Label    DBID  <date>  <date>
	//	2 FOUSA1  MStarFund  MfX     10    45.678
	//	3 012345  eVestFund  eVa             0
	//
	// Optionally, rows 1 and 2 hold metadata keys and values, and the header is row 3.
	Generic Layout = iota
	// Stylus sheets have metadata keys in row 1 and values in row 2, date headers in
	// row 4 from column D, and funds from row 5.
	Stylus
)

func (l Layout) String() string {
	switch l {
	case Generic:
		return "generic"
	case Stylus:
		return "stylus"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout parses "generic" or "stylus".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, nil
	case "stylus":
		return Stylus, nil
	default:
		return Generic, fmt.Errorf("unknown layout %q want generic or stylus", s)
	}
}

// Load reads the portfolio stored in the sheet of an Excel workbook.
//
// Metadata is nil for generic sheets without metadata rows.
func Load(path, sheet string, layout Layout) (*Table, *Metadata, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, ioError("cannot open workbook %q", err, path)
	}
	defer f.Close()

	t, m, err := LoadFile(f, sheet, layout)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load %q: %w", path, err)
	}
	return t, m, nil
}

// LoadFile reads the portfolio stored in the sheet of an opened workbook.
func LoadFile(f *excelize.File, sheet string, layout Layout) (*Table, *Metadata, error) {
	s, err := openSheet(f, sheet)
	if err != nil {
		return nil, nil, err
	}
	switch layout {
	case Generic:
		return s.loadGeneric()
	case Stylus:
		return s.loadStylus()
	default:
		return nil, nil, fmt.Errorf("unsupported layout %v", layout)
	}
}

// sheetReader reads raw cell values of a sheet.
type sheetReader struct {
	f        *excelize.File
	name     string
	rows     [][]string
	date1904 bool
}

func openSheet(f *excelize.File, sheet string) (*sheetReader, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, ioError("invalid sheet name %q", err, sheet)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: sheet %q does not exist", ErrIO, sheet)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, ioError("cannot read sheet %q", err, sheet)
	}
	s := &sheetReader{f: f, name: sheet, rows: rows}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		s.date1904 = *props.Date1904
	}
	return s, nil
}

// value returns the raw value at the 1-based cell position, blank if out of the sheet.
func (s *sheetReader) value(c Cell) string {
	if c.Row < 1 || c.Row > len(s.rows) {
		return ""
	}
	row := s.rows[c.Row-1]
	if c.Col < 1 || c.Col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[c.Col-1])
}

// width returns the number of cells of the 1-based row.
func (s *sheetReader) width(row int) int {
	if row < 1 || row > len(s.rows) {
		return 0
	}
	return len(s.rows[row-1])
}

// metadata reads key/value pairs from rows 1 and 2, skipping blank keys.
func (s *sheetReader) metadata() *Metadata {
	m := NewMetadata()
	for col := 1; col <= s.width(metadataKeyRow); col++ {
		key := s.value(Cell{Col: col, Row: metadataKeyRow})
		if key == "" {
			continue
		}
		m.Set(key, s.value(Cell{Col: col, Row: metadataValueRow}))
	}
	return m
}

// date reads a header cell as a date.
//
// A date is either an ISO date text, or a number formatted as a date.
func (s *sheetReader) date(c Cell) (date.Date, error) {
	raw := s.value(c)
	if d, err := date.Parse(raw); err == nil {
		return d, nil
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || !s.isDateFormatted(c) {
		return date.Date{}, formatErrorf(s.name, c.String(), "header %q is not a date", raw)
	}
	t, err := excelize.ExcelDateToTime(serial, s.date1904)
	if err != nil {
		return date.Date{}, formatErrorf(s.name, c.String(), "invalid date serial %q: %v", raw, err)
	}
	return date.FromTime(t), nil
}

// isDateFormatted reports whether the number format of the cell displays a date.
func (s *sheetReader) isDateFormatted(c Cell) bool {
	idx, err := s.f.GetCellStyle(s.name, c.String())
	if err != nil || idx == 0 {
		return false
	}
	style, err := s.f.GetStyle(idx)
	if err != nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt)
	}
	switch n := style.NumFmt; {
	case n >= 14 && n <= 22, n >= 27 && n <= 36, n >= 45 && n <= 47, n >= 50 && n <= 58:
		return true
	}
	return false
}

// isDateFormat reports whether a custom number format has day or year tokens.
// Colors and conditions like "[Red]", quoted texts and escaped characters are not tokens.
func isDateFormat(format string) bool {
	var skip rune // closing rune of the section being skipped
	escaped := false
	for _, r := range strings.ToLower(format) {
		switch {
		case escaped:
			escaped = false
		case skip != 0:
			if r == skip {
				skip = 0
			}
		case r == '\\':
			escaped = true
		case r == '"':
			skip = '"'
		case r == '[':
			skip = ']'
		case r == 'y' || r == 'd':
			return true
		}
	}
	return false
}

// weight reads a weight cell, ok is false for blank cells.
func (s *sheetReader) weight(c Cell) (w decimal.Decimal, ok bool, err error) {
	raw := s.value(c)
	if raw == "" {
		return w, false, nil
	}
	w, err = decimal.NewFromString(raw)
	if err != nil {
		return w, false, formatErrorf(s.name, c.String(), "weight %q is not a number", raw)
	}
	return w, true, nil
}

// column describes where a field of the table is read from.
type column struct {
	col   int
	field string    // IDColumn, LabelColumn, DBIDColumn or "" for a date
	day   date.Date // for date columns
}

// readBody reads fund rows [first, last] using the columns mapping.
func (s *sheetReader) readBody(columns []column, first, last int) (*Table, error) {
	t := NewTable()
	for _, c := range columns {
		if c.field == "" {
			if t.HasDate(c.day) {
				return nil, formatErrorf(s.name, Cell{Col: c.col, Row: first - 1}.String(), "duplicated date column %s", c.day)
			}
			t.AddDate(c.day)
		}
	}
	for row := first; row <= last; row++ {
		var id, label, dbid string
		for _, c := range columns {
			switch c.field {
			case IDColumn:
				id = s.value(Cell{Col: c.col, Row: row})
			case LabelColumn:
				label = s.value(Cell{Col: c.col, Row: row})
			case DBIDColumn:
				dbid = s.value(Cell{Col: c.col, Row: row})
			}
		}
		if id == "" {
			continue
		}
		r, err := t.AddFund(id, label, dbid)
		if err != nil {
			return nil, formatErrorf(s.name, Cell{Col: 1, Row: row}.String(), "%v", err)
		}
		for _, c := range columns {
			if c.field != "" {
				continue
			}
			w, ok, err := s.weight(Cell{Col: c.col, Row: row})
			if err != nil {
				return nil, err
			}
			if ok {
				r.Weights.Append(c.day, w)
			}
		}
	}
	return t, nil
}

// loadGeneric reads a sheet in the generic layout.
func (s *sheetReader) loadGeneric() (*Table, *Metadata, error) {
	var (
		header = 1
		meta   *Metadata
	)
	switch {
	case s.value(Cell{Col: 1, Row: 1}) == IDColumn:
	case s.value(Cell{Col: 1, Row: 3}) == IDColumn:
		header = 3
		meta = s.metadata()
	default:
		return nil, nil, formatErrorf(s.name, "A1", "want header %q in A1 (or A3 after metadata rows), got %q", IDColumn, s.value(Cell{Col: 1, Row: 1}))
	}

	// Label and DBID are found by name, or else by position in columns B and C.
	named := make(map[string]bool)
	for col := 2; col <= s.width(header); col++ {
		if name := s.value(Cell{Col: col, Row: header}); name == LabelColumn || name == DBIDColumn {
			named[name] = true
		}
	}
	positional := map[int]string{2: LabelColumn, 3: DBIDColumn}

	columns := []column{{col: 1, field: IDColumn}}
	for col := 2; col <= s.width(header); col++ {
		c := Cell{Col: col, Row: header}
		switch name := s.value(c); name {
		case LabelColumn, DBIDColumn:
			columns = append(columns, column{col: col, field: name})
		case "":
			return nil, nil, formatErrorf(s.name, c.String(), "blank header")
		default:
			day, err := s.date(c)
			if field := positional[col]; err != nil && field != "" && !named[field] {
				named[field] = true
				columns = append(columns, column{col: col, field: field})
				continue
			}
			if err != nil {
				return nil, nil, err
			}
			columns = append(columns, column{col: col, day: day})
		}
	}
	t, err := s.readBody(columns, header+1, len(s.rows))
	if err != nil {
		return nil, nil, err
	}
	return t, meta, nil
}

// requiredRange reads and parses a metadata range key.
func (s *sheetReader) requiredRange(m *Metadata, key string) (CellRange, error) {
	v, ok := m.Get(key)
	if !ok {
		return CellRange{}, &MissingKeyError{Sheet: s.name, Key: key}
	}
	r, err := ParseCellRange(v)
	if err != nil {
		return CellRange{}, formatErrorf(s.name, "", "metadata %s: %v", key, err)
	}
	return r, nil
}

// loadStylus reads a sheet in the Stylus layout.
//
// The region read spans from the row above the label range start, to the label range
// end, and from column A to the last column of the portfolio date range. Its first row
// is the header.
func (s *sheetReader) loadStylus() (*Table, *Metadata, error) {
	meta := s.metadata()
	labels, err := s.requiredRange(meta, KeyLabelRange)
	if err != nil {
		return nil, nil, err
	}
	dates, err := s.requiredRange(meta, KeyDateRange)
	if err != nil {
		return nil, nil, err
	}
	header := labels.From.Row - 1
	if header < 1 {
		return nil, nil, formatErrorf(s.name, "", "metadata %s: range %v leaves no room for a header row", KeyLabelRange, labels)
	}

	// The first three header cells are not named in the sheet.
	columns := []column{
		{col: 1, field: IDColumn},
		{col: 2, field: LabelColumn},
		{col: 3, field: DBIDColumn},
	}
	for col := 4; col <= dates.To.Col; col++ {
		day, err := s.date(Cell{Col: col, Row: header})
		if err != nil {
			return nil, nil, err
		}
		columns = append(columns, column{col: col, day: day})
	}
	t, err := s.readBody(columns, header+1, labels.To.Row)
	if err != nil {
		return nil, nil, err
	}
	return t, meta, nil
}
