package dtsi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
)

// Parser represents a dtsi file parser
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new dtsi parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(DTSLexer),
		participle.Elide("LineComment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a dtsi file from a reader. Grammar failures are returned as
// *pinmux.SyntaxError carrying the position of the offending token.
func (p *Parser) Parse(filename string, r io.Reader) (*File, error) {
	file, err := p.parser.Parse(filename, r)
	if err != nil {
		return nil, syntaxError(filename, err)
	}
	return file, nil
}

// ParseString parses a dtsi file from a string
func (p *Parser) ParseString(filename, input string) (*File, error) {
	file, err := p.parser.ParseString(filename, input)
	if err != nil {
		return nil, syntaxError(filename, err)
	}
	return file, nil
}

// ParseFile parses a dtsi file from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read file")
	}
	return p.Parse(filename, bytes.NewReader(data))
}

func syntaxError(filename string, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return &pinmux.SyntaxError{
			File:   filename,
			Line:   pos.Line,
			Column: pos.Column,
			Msg:    perr.Message(),
		}
	}
	return &pinmux.SyntaxError{File: filename, Msg: err.Error()}
}

// ReadFile parses and decodes a dtsi file into a Description.
func ReadFile(filename string) (*pinmux.Description, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := p.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return Decode(filename, file)
}

// Read parses and decodes dtsi text from a reader.
func Read(filename string, r io.Reader) (*pinmux.Description, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := p.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return Decode(filename, file)
}
