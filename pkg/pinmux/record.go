package pinmux

import "fmt"

// Section identifies the pin-controller state a record is emitted into.
type Section int

const (
	// Common holds pins with an assigned function.
	Common Section = iota
	// UnusedLowPower holds pins parked in their low-power state.
	UnusedLowPower
)

// Node returns the device-tree node name of the section.
func (s Section) Node() string {
	switch s {
	case Common:
		return "common"
	case UnusedLowPower:
		return "unused_lowpower"
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// Label returns the phandle label the section node is declared with.
func (s Section) Label() string {
	switch s {
	case Common:
		return "pinmux_default"
	case UnusedLowPower:
		return "pinmux_unused_lowpower"
	}
	return ""
}

func (s Section) String() string {
	return s.Node()
}

// SectionForNode maps a node name back to its section.
func SectionForNode(name string) (Section, bool) {
	switch name {
	case "common":
		return Common, true
	case "unused_lowpower":
		return UnusedLowPower, true
	}
	return 0, false
}

// Sections lists the sections in emission order.
var Sections = []Section{Common, UnusedLowPower}

// Attribute is a single device-tree property of a pin.
type Attribute struct {
	Name  string // Property name, e.g. "nvidia,pull"
	Value string // Normalized token text, e.g. "<TEGRA_PIN_PULL_UP>"
}

// PinRecord is the configuration of one physical pin.
type PinRecord struct {
	Name       string // MPIO name, also the dtsi node name
	Section    Section
	Comment    string // Operator annotation, never compared
	Attributes []Attribute
}

// Attr returns the value of the named attribute.
func (p PinRecord) Attr(name string) (string, bool) {
	for _, a := range p.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SameConfig reports whether two records configure the pin identically.
// Attribute order and comments are ignored; values are compared as text.
func (p PinRecord) SameConfig(o PinRecord) bool {
	if p.Section != o.Section || len(p.Attributes) != len(o.Attributes) {
		return false
	}
	for _, a := range p.Attributes {
		v, ok := o.Attr(a.Name)
		if !ok || v != a.Value {
			return false
		}
	}
	return true
}

// DefaultNode is the pin-controller node the descriptions are written under.
const DefaultNode = "pinmux@2430000"

// Description is an ordered set of pin records forming one pinmux snapshot.
type Description struct {
	Node string
	Pins []PinRecord
}

// NewDescription returns an empty description for the given controller node.
func NewDescription(node string) *Description {
	if node == "" {
		node = DefaultNode
	}
	return &Description{Node: node}
}

// Add appends a record.
func (d *Description) Add(p PinRecord) {
	d.Pins = append(d.Pins, p)
}

// Len returns the number of records.
func (d *Description) Len() int {
	return len(d.Pins)
}

// Lookup returns the record with the given name.
func (d *Description) Lookup(name string) (PinRecord, bool) {
	for _, p := range d.Pins {
		if p.Name == name {
			return p, true
		}
	}
	return PinRecord{}, false
}

// Section returns the records of one section, in description order.
func (d *Description) Section(s Section) []PinRecord {
	var pins []PinRecord
	for _, p := range d.Pins {
		if p.Section == s {
			pins = append(pins, p)
		}
	}
	return pins
}

// Index maps pin names to their position. A repeated name is reported as a
// DuplicateKeyError carrying both positions (1-based).
func (d *Description) Index(source string) (map[string]int, error) {
	idx := make(map[string]int, len(d.Pins))
	for i, p := range d.Pins {
		if first, ok := idx[p.Name]; ok {
			return nil, &DuplicateKeyError{
				Pin:    p.Name,
				Source: source,
				Unit:   "record",
				First:  first + 1,
				Second: i + 1,
			}
		}
		idx[p.Name] = i
	}
	return idx, nil
}

// Validate checks that every pin name is unique.
func (d *Description) Validate(source string) error {
	_, err := d.Index(source)
	return err
}

// Canonical reports whether all Common records precede UnusedLowPower ones.
func (d *Description) Canonical() bool {
	seenUnused := false
	for _, p := range d.Pins {
		switch p.Section {
		case UnusedLowPower:
			seenUnused = true
		case Common:
			if seenUnused {
				return false
			}
		}
	}
	return true
}
