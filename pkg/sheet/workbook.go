package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
)

// Workbook reads template rows from an .xlsm/.xlsx file.
type Workbook struct {
	path   string
	file   *excelize.File
	layout *Layout
}

// OpenWorkbook opens the workbook and checks that the layout's sheet exists.
// The file is only read, never saved.
func OpenWorkbook(path string, layout *Layout) (*Workbook, error) {
	if layout == nil {
		layout = DefaultLayout()
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening workbook %s", path)
	}
	sheets := f.GetSheetList()
	found := false
	for _, s := range sheets {
		if s == layout.Sheet {
			found = true
			break
		}
	}
	if !found {
		f.Close()
		return nil, &pinmux.SourceFormatError{
			Source: path,
			Msg:    fmt.Sprintf("sheet %q not found (available: %s)", layout.Sheet, strings.Join(sheets, ", ")),
		}
	}
	return &Workbook{path: path, file: f, layout: layout}, nil
}

// Path returns the workbook file name.
func (w *Workbook) Path() string {
	return w.path
}

// Rows implements Source. Every row of the layout's range is returned,
// blank or not; deciding which rows carry a pin is up to the caller.
func (w *Workbook) Rows() ([]Row, error) {
	l := w.layout
	rows := make([]Row, 0, l.LastRow-l.FirstRow+1)
	for r := l.FirstRow; r <= l.LastRow; r++ {
		row := Row{Number: r, Cells: make(map[pinmux.Field]string, len(pinmux.Fields))}
		for _, f := range pinmux.Fields {
			cell := l.Columns[f] + strconv.Itoa(r)
			v, err := w.file.GetCellValue(l.Sheet, cell)
			if err != nil {
				return nil, &pinmux.SourceFormatError{
					Source: w.path,
					Msg:    fmt.Sprintf("cell %s: %v", cell, err),
				}
			}
			row.Cells[f] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}
