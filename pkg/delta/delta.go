// Package delta computes the minimal set of pin records that changed
// between two pinmux descriptions.
//
// The delta contains the "after" records whose configuration differs from the
// "before" record of the same name, plus records that are new in "after".
// Unchanged pins are dropped, and so are pins that only exist in "before":
// the device-tree format has no way to express a removal, so those are left
// to the consumer and only reported through Summary.
package delta

import (
	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
)

// Summary counts how the pins of two descriptions relate.
type Summary struct {
	Changed   int
	Added     int
	Unchanged int
	Removed   []string // Pins present only in "before", in "before" order
}

// Diff returns the records of after that differ from before, in after order,
// followed by the records that are new in after, also in after order.
// A repeated pin name in either input is a DuplicateKeyError.
func Diff(before, after *pinmux.Description) (*pinmux.Description, error) {
	d, _, err := Compute(before, after)
	return d, err
}

// Compute is Diff that also returns the Summary.
func Compute(before, after *pinmux.Description) (*pinmux.Description, *Summary, error) {
	bidx, err := before.Index("before")
	if err != nil {
		return nil, nil, err
	}
	aidx, err := after.Index("after")
	if err != nil {
		return nil, nil, err
	}

	out := pinmux.NewDescription(after.Node)
	sum := &Summary{}
	var added []pinmux.PinRecord
	for _, a := range after.Pins {
		i, ok := bidx[a.Name]
		switch {
		case !ok:
			added = append(added, a)
		case !before.Pins[i].SameConfig(a):
			sum.Changed++
			out.Add(a)
		default:
			sum.Unchanged++
		}
	}
	for _, a := range added {
		out.Add(a)
	}
	sum.Added = len(added)
	for _, b := range before.Pins {
		if _, ok := aidx[b.Name]; !ok {
			sum.Removed = append(sum.Removed, b.Name)
		}
	}
	return out, sum, nil
}
