package dtsi

import (
	"bytes"
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
)

// BindingsInclude is the header that defines the TEGRA_PIN_* tokens.
const BindingsInclude = "#include <dt-bindings/pinctrl/pinctrl-tegra.h>"

// WriteOptions control the comments written around the pin blocks.
type WriteOptions struct {
	Title  string // First line of the file header comment
	Banner string // Comment at the top of the common section
}

const header = `/*
 * %s
 *
 * This file is auto-generated - do not edit!
 */

%s

/ {
	%s {
		pinctrl-names = "default", "drive", "unused";
		pinctrl-0 = <&pinmux_default>;
		pinctrl-1 = <&drive_default>;
		pinctrl-2 = <&pinmux_unused_lowpower>;
`

const footer = `
		drive_default: drive {
		};
	};
};
`

// Write serializes the description. Sections are written in canonical order
// (common, then unused_lowpower), each keeping the description's order.
// Nothing is written to w unless the whole text was rendered.
func Write(w io.Writer, d *pinmux.Description, opts WriteOptions) error {
	if opts.Title == "" {
		opts.Title = "Pinmux configuration"
	}
	node := d.Node
	if node == "" {
		node = pinmux.DefaultNode
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, header, opts.Title, BindingsInclude, node)
	for _, s := range pinmux.Sections {
		fmt.Fprintf(&buf, "\n\t\t%s: %s {\n", s.Label(), s.Node())
		first := true
		if s == pinmux.Common && opts.Banner != "" {
			fmt.Fprintf(&buf, "\t\t\t/* %s */\n", opts.Banner)
			first = false
		}
		for _, p := range d.Section(s) {
			if !first {
				buf.WriteString("\n")
			}
			first = false
			writePin(&buf, p)
		}
		buf.WriteString("\t\t};\n")
	}
	buf.WriteString(footer)

	_, err := buf.WriteTo(w)
	return err
}

// writePin writes one pin block, preceded by its comment if any.
func writePin(buf *bytes.Buffer, p pinmux.PinRecord) {
	if p.Comment != "" {
		fmt.Fprintf(buf, "\t\t\t/* %s */\n", p.Comment)
	}
	fmt.Fprintf(buf, "\t\t\t%s {\n", p.Name)
	for _, a := range p.Attributes {
		if a.Value == "" {
			fmt.Fprintf(buf, "\t\t\t\t%s;\n", a.Name)
			continue
		}
		fmt.Fprintf(buf, "\t\t\t\t%s = %s;\n", a.Name, a.Value)
	}
	buf.WriteString("\t\t\t};\n")
}
