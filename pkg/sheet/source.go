// Package sheet reads pin rows out of the pinmux template spreadsheet.
package sheet

import (
	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
)

// Row is one spreadsheet row with its cells keyed by template field.
type Row struct {
	Number int // Spreadsheet row, 1-based
	Cells  map[pinmux.Field]string
}

// Get returns the raw cell value of a field ("" when absent).
func (r Row) Get(f pinmux.Field) string {
	return r.Cells[f]
}

// Source provides the data rows of a template, in row order.
type Source interface {
	Rows() ([]Row, error)
}

// MemorySource is a Source over preloaded rows, useful during tests.
type MemorySource struct {
	rows []Row
}

// NewMemorySource creates a source over the given rows.
func NewMemorySource(rows ...Row) *MemorySource {
	return &MemorySource{rows: rows}
}

// Add appends a row. Cells are given in field order; missing trailing
// cells are blank.
func (s *MemorySource) Add(number int, cells ...string) {
	row := Row{Number: number, Cells: make(map[pinmux.Field]string)}
	for i, c := range cells {
		if i < len(pinmux.Fields) {
			row.Cells[pinmux.Fields[i]] = c
		}
	}
	s.rows = append(s.rows, row)
}

// Rows implements Source.
func (s *MemorySource) Rows() ([]Row, error) {
	return s.rows, nil
}
