package dtsi

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// File represents a complete dtsi file: leading comments and includes, the
// root node, and any trailing comments.
type File struct {
	Head []*Directive `@@*`
	Root *Root        `@@`
	Tail []*Comment   `@@*`
}

// Directive is a top-level comment or include before the root node.
type Directive struct {
	Comment *Comment `  @@`
	Include *Include `| @@`
}

// Include represents a preprocessor include line.
type Include struct {
	Pos  lexer.Position
	Text string `@Include`
}

// Comment represents a block comment.
type Comment struct {
	Pos  lexer.Position
	Text string `@Comment`
}

// Body returns the comment text without delimiters and surrounding space.
func (c *Comment) Body() string {
	s := strings.TrimPrefix(c.Text, "/*")
	s = strings.TrimSuffix(s, "*/")
	return strings.TrimSpace(s)
}

// EndLine returns the line the comment closes on.
func (c *Comment) EndLine() int {
	return c.Pos.Line + strings.Count(c.Text, "\n")
}

// Root represents the root node
// Example: / { ... };
type Root struct {
	Pos  lexer.Position
	Body []*Entry `"/" "{" @@* "}" ";"`
}

// Entry is one item inside a node body.
type Entry struct {
	Comment  *Comment  `  @@`
	Node     *Node     `| @@`
	Property *Property `| @@`
}

// Node represents a (optionally labelled) child node
// Example: pinmux_default: common { ... };
type Node struct {
	Pos   lexer.Position
	Label string   `@Label?`
	Name  string   `@Name "{"`
	Body  []*Entry `@@* "}" ";"`
}

// labelName returns the label without its trailing colon.
func (n *Node) labelName() string {
	return strings.TrimSuffix(n.Label, ":")
}

// Property represents a property assignment
// Example: nvidia,pull = <TEGRA_PIN_PULL_UP>;
type Property struct {
	Pos    lexer.Position
	Name   string   `@Name`
	Values []*Value `( "=" @@ ( "," @@ )* )? ";"`
}

// Text returns the normalized value text: strings keep their quotes, cell
// lists are rendered with single spaces, values are joined with ", ".
// A property without a value yields "".
func (p *Property) Text() string {
	parts := make([]string, 0, len(p.Values))
	for _, v := range p.Values {
		parts = append(parts, v.Text())
	}
	return strings.Join(parts, ", ")
}

// Value is a string or a cell list.
type Value struct {
	String *string `  @String`
	Cells  *Cells  `| @@`
}

// Text returns the normalized token text of the value.
func (v *Value) Text() string {
	if v.String != nil {
		return *v.String
	}
	if v.Cells != nil {
		return "<" + strings.Join(v.Cells.Items, " ") + ">"
	}
	return ""
}

// Cells represents a cell list
// Example: <&gpio 3 TEGRA_PIN_ENABLE>
type Cells struct {
	Items []string `"<" @( Name | Ref )* ">"`
}
