package dtsi

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
)

// section is a located pin section node and the controller it belongs to.
type section struct {
	node       *Node
	controller string
	kind       pinmux.Section
}

// Decode walks a parsed file and rebuilds the Description: the pin records
// are the children of the "common" and "unused_lowpower" nodes, in file
// order. Other nodes (e.g. "drive") are ignored.
func Decode(filename string, f *File) (*pinmux.Description, error) {
	synErr := func(n *Node, format string, args ...interface{}) error {
		e := &pinmux.SyntaxError{File: filename, Msg: fmt.Sprintf(format, args...)}
		if n != nil {
			e.Line, e.Column = n.Pos.Line, n.Pos.Column
		}
		return e
	}

	var sections []section
	var walk func(parent string, body []*Entry)
	walk = func(parent string, body []*Entry) {
		for _, e := range body {
			if e.Node == nil {
				continue
			}
			if kind, ok := pinmux.SectionForNode(e.Node.Name); ok {
				sections = append(sections, section{node: e.Node, controller: parent, kind: kind})
				continue
			}
			walk(e.Node.Name, e.Node.Body)
		}
	}
	walk("", f.Root.Body)

	var common *section
	byKind := make(map[pinmux.Section]*section)
	for i := range sections {
		s := &sections[i]
		if prev, ok := byKind[s.kind]; ok {
			return nil, synErr(s.node, "second %s section (first at line %d)", s.kind, prev.node.Pos.Line)
		}
		byKind[s.kind] = s
		if s.kind == pinmux.Common {
			common = s
		}
	}
	if common == nil {
		return nil, synErr(nil, "no common { ... } section found")
	}
	if u, ok := byKind[pinmux.UnusedLowPower]; ok && u.controller != common.controller {
		return nil, synErr(u.node, "%s is not under controller %s", u.kind, common.controller)
	}

	d := pinmux.NewDescription(common.controller)
	lines := make(map[string]int)
	for _, kind := range pinmux.Sections {
		s, ok := byKind[kind]
		if !ok {
			continue
		}
		var pending *Comment
		for _, e := range s.node.Body {
			switch {
			case e.Comment != nil:
				pending = e.Comment
				continue
			case e.Property != nil:
				p := e.Property
				return nil, &pinmux.SyntaxError{
					File:   filename,
					Line:   p.Pos.Line,
					Column: p.Pos.Column,
					Msg:    fmt.Sprintf("unexpected property %s in %s section", p.Name, kind),
				}
			}
			n := e.Node
			if first, ok := lines[n.Name]; ok {
				return nil, &pinmux.DuplicateKeyError{
					Pin:    n.Name,
					Source: filename,
					Unit:   "line",
					First:  first,
					Second: n.Pos.Line,
				}
			}
			lines[n.Name] = n.Pos.Line

			rec, err := decodePin(filename, n, kind)
			if err != nil {
				return nil, err
			}
			if pending != nil && pending.EndLine() == n.Pos.Line-1 {
				rec.Comment = pending.Body()
			}
			pending = nil
			d.Add(rec)
		}
	}
	return d, nil
}

// decodePin converts one pin node. Pin blocks are flat: nested nodes and
// repeated properties are syntax errors.
func decodePin(filename string, n *Node, kind pinmux.Section) (pinmux.PinRecord, error) {
	rec := pinmux.PinRecord{Name: n.Name, Section: kind}
	seen := make(map[string]bool)
	for _, e := range n.Body {
		switch {
		case e.Node != nil:
			return rec, &pinmux.SyntaxError{
				File:   filename,
				Line:   e.Node.Pos.Line,
				Column: e.Node.Pos.Column,
				Msg:    fmt.Sprintf("nested node %s inside pin %s", e.Node.Name, n.Name),
			}
		case e.Property != nil:
			p := e.Property
			if seen[p.Name] {
				return rec, &pinmux.SyntaxError{
					File:   filename,
					Line:   p.Pos.Line,
					Column: p.Pos.Column,
					Msg:    fmt.Sprintf("property %s repeated in pin %s", p.Name, n.Name),
				}
			}
			seen[p.Name] = true
			rec.Attributes = append(rec.Attributes, pinmux.Attribute{Name: p.Name, Value: p.Text()})
		}
	}
	return rec, nil
}
