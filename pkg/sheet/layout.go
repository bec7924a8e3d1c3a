package sheet

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
)

// Layout describes where the template keeps its pin rows. The defaults match
// the Jetson Thor module pinmux template; a YAML file may override any part.
type Layout struct {
	Sheet    string                  `yaml:"sheet"`
	FirstRow int                     `yaml:"firstRow"` // First data row, 1-based
	LastRow  int                     `yaml:"lastRow"`  // Last data row, inclusive
	Columns  map[pinmux.Field]string `yaml:"columns"`  // Field -> column letters
	Node     string                  `yaml:"node"`     // Pin-controller node name
}

// DefaultLayout returns the layout of the stock template.
func DefaultLayout() *Layout {
	return &Layout{
		Sheet:    "Jetson Thor_DevKit",
		FirstRow: 13,
		LastRow:  479,
		Columns: map[pinmux.Field]string{
			pinmux.FieldPinNumber:    "A",
			pinmux.FieldSignal:       "B",
			pinmux.FieldMPIO:         "C",
			pinmux.FieldFunction:     "AS",
			pinmux.FieldDirection:    "AT",
			pinmux.FieldPull:         "AU",
			pinmux.FieldEnableInput:  "AV",
			pinmux.FieldOutputEnable: "AX",
		},
		Node: pinmux.DefaultNode,
	}
}

// LoadLayout reads a YAML layout file and merges it over the defaults.
// Unknown keys are rejected so that a typo cannot silently fall back to a
// default column.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading layout")
	}
	l := DefaultLayout()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(l); err != nil {
		return nil, &pinmux.SourceFormatError{Source: path, Msg: fmt.Sprintf("invalid layout: %v", err)}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the layout for usable rows and column references.
func (l *Layout) Validate() error {
	bad := func(format string, args ...interface{}) error {
		return &pinmux.SourceFormatError{Source: "layout", Msg: fmt.Sprintf(format, args...)}
	}
	if l.Sheet == "" {
		return bad("sheet name is empty")
	}
	if l.FirstRow < 1 || l.LastRow < l.FirstRow {
		return bad("invalid row range %d..%d", l.FirstRow, l.LastRow)
	}
	known := make(map[pinmux.Field]bool, len(pinmux.Fields))
	for _, f := range pinmux.Fields {
		known[f] = true
		col, ok := l.Columns[f]
		if !ok || col == "" {
			return bad("no column for field %s", f)
		}
		if _, err := excelize.ColumnNameToNumber(col); err != nil {
			return bad("field %s: invalid column %q", f, col)
		}
	}
	for f := range l.Columns {
		if !known[f] {
			return bad("unknown field %s", f)
		}
	}
	return nil
}
