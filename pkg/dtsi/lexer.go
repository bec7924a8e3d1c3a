package dtsi

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DTSLexer defines the lexical structure of the device-tree source subset
// the pinmux files are written in. Rules are tried in order, so the more
// specific patterns come first.
var DTSLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Block comments are kept: a comment above a pin node annotates it.
	{Name: "Comment", Pattern: `/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "LineComment", Pattern: `//[^\n]*`},

	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	// Preprocessor include, e.g. #include <dt-bindings/pinctrl/pinctrl-tegra.h>
	{Name: "Include", Pattern: `#include[ \t]*[<"][^>"\n]*[>"]`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Node label including its colon, e.g. "pinmux_default:"
	{Name: "Label", Pattern: `[A-Za-z_][A-Za-z0-9_]*:`},

	// Phandle reference, e.g. &pinmux_default
	{Name: "Ref", Pattern: `&[A-Za-z_][A-Za-z0-9_]*`},

	// Node names, property names and cell words share one token:
	// pinmux@2430000, nvidia,pins, pinctrl-0, TEGRA_PIN_ENABLE, 0x10
	{Name: "Name", Pattern: `[A-Za-z0-9_#][A-Za-z0-9_,.+\-@#]*`},

	{Name: "Punct", Pattern: `[{}<>;=,/]`},
})
