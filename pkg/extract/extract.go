// Package extract turns template rows into a pinmux Description.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
	"github.com/OpenTraceLab/OpenTracePinmux/pkg/sheet"
)

// Result is the outcome of an extraction.
type Result struct {
	Description *pinmux.Description
	Used        int // Pins emitted into the common section
	Unused      int // Pins emitted into unused_lowpower
	Skipped     int // Rows without a pin name
}

// pinRow is a row that passed normalization.
type pinRow struct {
	record  pinmux.PinRecord
	section pinmux.Section
}

// Extract reads every row of the source and builds the description for the
// given controller node. Used pins come first, unused pins after, each in row
// order. Every offending row is reported; if any row fails no description is
// returned.
func Extract(src sheet.Source, node string) (*Result, error) {
	rows, err := src.Rows()
	if err != nil {
		return nil, err
	}

	var (
		used, unused []pinRow
		errs         []error
		skipped      int
		seen         = make(map[string]int)
	)
	for _, r := range rows {
		if pinmux.IsPlaceholder(r.Get(pinmux.FieldMPIO)) {
			skipped++
			continue
		}
		pr, err := convertRow(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if first, ok := seen[pr.record.Name]; ok {
			errs = append(errs, &pinmux.DuplicateKeyError{
				Pin:    pr.record.Name,
				Unit:   "row",
				First:  first,
				Second: r.Number,
			})
			continue
		}
		seen[pr.record.Name] = r.Number
		if pr.section == pinmux.Common {
			used = append(used, pr)
		} else {
			unused = append(unused, pr)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	d := pinmux.NewDescription(node)
	for _, pr := range used {
		d.Add(pr.record)
	}
	for _, pr := range unused {
		d.Add(pr.record)
	}
	return &Result{
		Description: d,
		Used:        len(used),
		Unused:      len(unused),
		Skipped:     skipped,
	}, nil
}

// convertRow normalizes one row. A CellValueError is annotated with the row
// number and pin name.
func convertRow(r sheet.Row) (pinRow, error) {
	name, err := pinmux.NormalizeMPIO(r.Get(pinmux.FieldMPIO))
	if err != nil {
		return pinRow{}, annotate(err, r.Number, pinmux.Clean(r.Get(pinmux.FieldMPIO)))
	}
	fail := func(err error) (pinRow, error) {
		return pinRow{}, annotate(err, r.Number, name)
	}

	function, err := pinmux.NormalizeFunction(r.Get(pinmux.FieldFunction))
	if err != nil {
		return fail(err)
	}
	dir, err := pinmux.NormalizeDirection(r.Get(pinmux.FieldDirection))
	if err != nil {
		return fail(err)
	}
	pull, err := pinmux.NormalizePull(r.Get(pinmux.FieldPull))
	if err != nil {
		return fail(err)
	}
	einput, err := pinmux.NormalizeEnableInput(r.Get(pinmux.FieldEnableInput))
	if err != nil {
		return fail(err)
	}
	oe, err := pinmux.NormalizeOutputEnable(r.Get(pinmux.FieldOutputEnable))
	if err != nil {
		return fail(err)
	}

	section := classify(function, dir)
	if section == pinmux.UnusedLowPower && function == "" {
		function = "unused"
	}

	attrs, err := pinmux.Encode(dir, pull, einput, oe).Attributes(name, function)
	if err != nil {
		return fail(err)
	}
	return pinRow{
		section: section,
		record: pinmux.PinRecord{
			Name:       name,
			Section:    section,
			Comment:    comment(r),
			Attributes: attrs,
		},
	}, nil
}

// classify decides whether a pin is parked in unused_lowpower: no function,
// an "unused*" function, or a direction of "Not Assigned"/"N/A". A blank
// direction keeps the pin in common.
func classify(function string, dir pinmux.Direction) pinmux.Section {
	if function == "" ||
		strings.HasPrefix(strings.ToLower(function), "unused") ||
		dir == pinmux.DirUnassigned {
		return pinmux.UnusedLowPower
	}
	return pinmux.Common
}

// comment builds the "Pin <number> - <signal>" annotation. The text must
// survive inside a single-line C comment.
func comment(r sheet.Row) string {
	var parts []string
	for _, f := range []pinmux.Field{pinmux.FieldPinNumber, pinmux.FieldSignal} {
		v := strings.Join(strings.Fields(r.Get(f)), " ")
		v = strings.ReplaceAll(v, "*/", "* /")
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "Pin " + strings.Join(parts, " - ")
}

func annotate(err error, row int, pin string) error {
	var cve *pinmux.CellValueError
	if errors.As(err, &cve) {
		cve.Row = row
		cve.Pin = pin
		return cve
	}
	return fmt.Errorf("row %d: %w", row, err)
}
