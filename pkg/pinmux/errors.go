package pinmux

import (
	"fmt"
	"strings"
)

// SourceFormatError reports a tabular source that does not follow the
// template layout, e.g. a missing sheet or a bad column reference.
type SourceFormatError struct {
	Source string
	Msg    string
}

func (e *SourceFormatError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("source format: %s", e.Msg)
	}
	return fmt.Sprintf("%s: source format: %s", e.Source, e.Msg)
}

// CellValueError reports a cell whose raw value has no normalized token.
type CellValueError struct {
	Row     int    // Spreadsheet row, 1-based
	Pin     string // MPIO name of the row, if known
	Field   Field
	Value   string
	Allowed []string
}

func (e *CellValueError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "row %d", e.Row)
	if e.Pin != "" {
		fmt.Fprintf(&b, " (pin %s)", e.Pin)
	}
	fmt.Fprintf(&b, ": %s: unrecognized value %q", e.Field, e.Value)
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, " (want one of %s)", strings.Join(e.Allowed, ", "))
	}
	return b.String()
}

// SyntaxError reports dtsi input that does not match the block grammar.
type SyntaxError struct {
	File   string
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// DuplicateKeyError reports a pin name that appears more than once within
// one input. First and Second locate the two occurrences in Unit terms
// ("row", "line" or "record").
type DuplicateKeyError struct {
	Pin    string
	Source string
	Unit   string
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	unit := e.Unit
	if unit == "" {
		unit = "record"
	}
	msg := fmt.Sprintf("duplicate pin %s (%s %d and %s %d)", e.Pin, unit, e.First, unit, e.Second)
	if e.Source != "" {
		return e.Source + ": " + msg
	}
	return msg
}
