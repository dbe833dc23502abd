// Package table holds a delimited text table in memory. Cells are kept
// as the strings we read, and each column gets a kind (integer, float or
// string) worked out from its contents, so callers can ask for numbers
// where the file has numbers.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind is what we decided a column holds.
type Kind byte

const (
	String Kind = iota
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "string"
}

var (
	ErrNoHeader = errors.New("table: no header line")
	ErrDupCol   = errors.New("table: duplicate column")
	ErrNoCol    = errors.New("table: no such column")
)

// missing are the spellings of "no value" we meet in the csv files.
var missing = map[string]bool{
	"": true, "NA": true, "N/A": true, "NaN": true, "nan": true, "null": true, "None": true,
}

// IsMissing says if a cell should be treated as an absent value.
func IsMissing(s string) bool { return missing[strings.TrimSpace(s)] }

// Table is a header and rows of cells, all rows the same width.
type Table struct {
	cols  []string
	index map[string]int
	kinds []Kind
	rows  [][]string
}

// New builds a table from a header and rows. Every row must be as wide
// as the header.
func New(cols []string, rows [][]string) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoHeader
	}
	t := &Table{
		cols:  append([]string(nil), cols...),
		index: make(map[string]int, len(cols)),
		rows:  rows,
	}
	for i, c := range t.cols {
		if _, ok := t.index[c]; ok {
			return nil, fmt.Errorf("%w %q", ErrDupCol, c)
		}
		t.index[c] = i
	}
	for i, r := range rows {
		if len(r) != len(cols) {
			return nil, fmt.Errorf("table: row %d has %d fields, header has %d", i+1, len(r), len(cols))
		}
	}
	t.kinds = make([]Kind, len(cols))
	for j := range t.cols {
		t.kinds[j] = t.inferKind(j)
	}
	return t, nil
}

// inferKind decides on a column type. A column with nothing but
// missing values is a float column, full of NaN's.
func (t *Table) inferKind(j int) Kind {
	isInt, isFloat := true, true
	for _, r := range t.rows {
		s := strings.TrimSpace(r[j])
		if missing[s] {
			isInt = false // an integer column with holes becomes float
			continue
		}
		if isInt {
			if _, err := strconv.Atoi(s); err != nil {
				isInt = false
			}
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			isFloat = false
			break
		}
	}
	switch {
	case len(t.rows) > 0 && isInt:
		return Int
	case isFloat:
		return Float
	}
	return String
}

// Read parses comma separated text with a header line.
func Read(rdr io.Reader) (*Table, error) {
	r := csv.NewReader(rdr)
	r.LazyQuotes = true // free text descriptions have stray quotes
	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff") // spreadsheet BOM
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return New(header, rows)
}

// Write puts the table out as csv, header first.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return err
	}
	if err := cw.WriteAll(t.rows); err != nil {
		return err
	}
	return cw.Error()
}

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns a copy of the header.
func (t *Table) Columns() []string { return append([]string(nil), t.cols...) }

// HasColumn tells us if a column is present.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColIndex returns the position of a column, or -1.
func (t *Table) ColIndex(name string) int {
	if j, ok := t.index[name]; ok {
		return j
	}
	return -1
}

// Kind returns the inferred type of a column. Unknown columns are strings.
func (t *Table) Kind(name string) Kind {
	if j, ok := t.index[name]; ok {
		return t.kinds[j]
	}
	return String
}

// Cell returns the raw text in row i, column name. It is empty if the
// column does not exist.
func (t *Table) Cell(i int, name string) string {
	j, ok := t.index[name]
	if !ok {
		return ""
	}
	return t.rows[i][j]
}

// Float returns a cell as a number. Missing columns, missing values and
// rubbish all come back as NaN.
func (t *Table) Float(i int, name string) float64 {
	s := strings.TrimSpace(t.Cell(i, name))
	if missing[s] {
		return math.NaN()
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return x
}

// Int returns a cell as an integer.
func (t *Table) Int(i int, name string) (int, error) {
	if !t.HasColumn(name) {
		return 0, fmt.Errorf("%w %q", ErrNoCol, name)
	}
	s := strings.TrimSpace(t.Cell(i, name))
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	// 12.0 is what one gets after a round trip through a spreadsheet
	if x, ferr := strconv.ParseFloat(s, 64); ferr == nil && x == math.Trunc(x) {
		return int(x), nil
	}
	return 0, fmt.Errorf("table: row %d column %s: %w", i+1, name, err)
}

// Row returns row i as column name -> text.
func (t *Table) Row(i int) map[string]string {
	m := make(map[string]string, len(t.cols))
	for j, c := range t.cols {
		m[c] = t.rows[i][j]
	}
	return m
}
