package pinmux

import (
	"regexp"
	"strings"
)

// Field names a template column that feeds a pin record.
type Field string

// Template fields.
const (
	FieldPinNumber    Field = "pin_number"
	FieldSignal       Field = "signal"
	FieldMPIO         Field = "mpio"
	FieldFunction     Field = "function"
	FieldDirection    Field = "direction"
	FieldPull         Field = "pull"
	FieldEnableInput  Field = "enable_input"
	FieldOutputEnable Field = "output_enable"
)

// Fields lists every template field in column order.
var Fields = []Field{
	FieldPinNumber,
	FieldSignal,
	FieldMPIO,
	FieldFunction,
	FieldDirection,
	FieldPull,
	FieldEnableInput,
	FieldOutputEnable,
}

// Direction is the normalized direction column. DirDefault is a blank cell:
// it sets no bits like DirUnassigned, but does not mark the pin unused.
type Direction int

const (
	DirDefault Direction = iota
	DirUnassigned
	DirInput
	DirOutput
)

// Pull is the normalized pull/drive column.
type Pull int

const (
	PullZ Pull = iota
	PullIntUp
	PullIntDown
	PullDrive0
	PullDrive1
)

// Switch is a normalized yes/no style column; SwitchDefault means blank.
type Switch int

const (
	SwitchDefault Switch = iota
	SwitchOn
	SwitchOff
)

var (
	directionLabels = map[string]Direction{
		"":             DirDefault,
		"not assigned": DirUnassigned,
		"n/a":          DirUnassigned,
		"input":        DirInput,
		"output":       DirOutput,
	}
	pullLabels = map[string]Pull{
		"":        PullZ,
		"z":       PullZ,
		"n/a":     PullZ,
		"int pu":  PullIntUp,
		"int pd":  PullIntDown,
		"drive 0": PullDrive0,
		"drive 1": PullDrive1,
	}
	enableInputLabels = map[string]Switch{
		"":    SwitchDefault,
		"yes": SwitchOn,
		"no":  SwitchOff,
	}
	outputEnableLabels = map[string]Switch{
		"":        SwitchDefault,
		"enable":  SwitchOn,
		"disable": SwitchOff,
	}

	allowedDirection    = []string{"Input", "Output", "Not Assigned", "N/A"}
	allowedPull         = []string{"Z", "Int PU", "Int PD", "Drive 0", "Drive 1", "N/A"}
	allowedEnableInput  = []string{"Yes", "No"}
	allowedOutputEnable = []string{"Enable", "Disable"}

	functionRe = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)
	mpioRe     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// placeholders mark rows that carry no usable pin.
var placeholders = map[string]bool{
	"":    true,
	"-":   true,
	"n/a": true,
	"na":  true,
	"nc":  true,
	"tbd": true,
}

// label folds a raw cell into its lookup key: trimmed, lower case and with
// inner runs of whitespace collapsed.
func label(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// Clean trims a raw cell value.
func Clean(raw string) string {
	return strings.TrimSpace(raw)
}

// IsPlaceholder reports whether an MPIO cell denotes "no pin".
func IsPlaceholder(raw string) bool {
	return placeholders[label(raw)]
}

// NormalizeDirection maps the direction column.
func NormalizeDirection(raw string) (Direction, error) {
	if d, ok := directionLabels[label(raw)]; ok {
		return d, nil
	}
	return 0, &CellValueError{Field: FieldDirection, Value: Clean(raw), Allowed: allowedDirection}
}

// NormalizePull maps the pull/drive column.
func NormalizePull(raw string) (Pull, error) {
	if p, ok := pullLabels[label(raw)]; ok {
		return p, nil
	}
	return 0, &CellValueError{Field: FieldPull, Value: Clean(raw), Allowed: allowedPull}
}

// NormalizeEnableInput maps the input enable column.
func NormalizeEnableInput(raw string) (Switch, error) {
	if s, ok := enableInputLabels[label(raw)]; ok {
		return s, nil
	}
	return 0, &CellValueError{Field: FieldEnableInput, Value: Clean(raw), Allowed: allowedEnableInput}
}

// NormalizeOutputEnable maps the output enable column.
func NormalizeOutputEnable(raw string) (Switch, error) {
	if s, ok := outputEnableLabels[label(raw)]; ok {
		return s, nil
	}
	return 0, &CellValueError{Field: FieldOutputEnable, Value: Clean(raw), Allowed: allowedOutputEnable}
}

// NormalizeFunction validates the function column. Blank is allowed and
// returned as "".
func NormalizeFunction(raw string) (string, error) {
	fn := Clean(raw)
	if fn == "" || functionRe.MatchString(fn) {
		return fn, nil
	}
	return "", &CellValueError{Field: FieldFunction, Value: fn}
}

// NormalizeMPIO validates a pin name for use as a node name.
func NormalizeMPIO(raw string) (string, error) {
	name := Clean(raw)
	if mpioRe.MatchString(name) {
		return name, nil
	}
	return "", &CellValueError{Field: FieldMPIO, Value: name}
}

// Encode builds the BallConfig bits of a row from its normalized columns.
func Encode(dir Direction, pull Pull, einput, oe Switch) ConfigBits {
	var bits ConfigBits

	switch pull {
	case PullIntUp:
		bits |= PullUp
	case PullIntDown:
		bits |= PullDown
	case PullDrive0:
		bits |= Drv1X
	case PullDrive1:
		bits |= Drv1X | Def1X
	}

	switch dir {
	case DirInput:
		bits |= Tristate | EInput
	case DirOutput:
		if einput == SwitchOn {
			bits |= EInput
		}
	}

	if oe == SwitchOff {
		bits |= Tristate
	}
	return bits
}
