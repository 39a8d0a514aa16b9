// Package descript parses descript.txt, the shell descriptor file of
// Ukagaka ghosts, into a Document of directive lines.
package descript

import (
	"fmt"
	"io"
)

// Parser provides configurable decoding and parsing.
// A Parser is safe for concurrent use once configured.
type Parser struct {
	fallback Charset
	codec    Codec
}

// NewParser creates a new Parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		fallback: CharsetDefault,
		codec:    NewCodec(),
	}
}

// WithDefaultCharset configures the charset used when a file declares none.
func (p *Parser) WithDefaultCharset(c Charset) *Parser {
	p.fallback = c
	return p
}

// WithCodec configures the byte-to-text codec.
func (p *Parser) WithCodec(c Codec) *Parser {
	p.codec = c
	return p
}

// DecodeBytes finds the declared charset of b and decodes b with it.
// It returns the decoded text and the charset used.
func (p *Parser) DecodeBytes(b []byte) (string, Charset, error) {
	charset, found, err := DetectCharset(lossyView(b))
	if err != nil {
		return "", CharsetDefault, err
	}
	if !found {
		charset = p.fallback
	}
	text, err := p.codec.Decode(b, charset)
	if err != nil {
		return "", charset, &DecodeError{Charset: charset, Err: err}
	}
	return text, charset, nil
}

// EncodeText encodes s in charset c with the configured codec. It is the
// inverse of DecodeBytes for text that DecodeBytes produced.
func (p *Parser) EncodeText(s string, c Charset) ([]byte, error) {
	b, err := p.codec.Encode(s, c)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c, err)
	}
	return b, nil
}

// ParseBytes decodes and parses the raw contents of a descript.txt file.
func (p *Parser) ParseBytes(b []byte) (*Document, error) {
	text, _, err := p.DecodeBytes(b)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// ParseDocument decodes and parses a descript.txt file from an io.Reader.
func (p *Parser) ParseDocument(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read descript: %w", err)
	}
	return p.ParseBytes(b)
}

// DecodeBytes decodes b with the default Parser.
func DecodeBytes(b []byte) (string, error) {
	text, _, err := NewParser().DecodeBytes(b)
	return text, err
}

// Parse parses decoded descript.txt text. The whole input must be
// consumed; the first unrecognised line fails the parse with a
// *SyntaxError and no partial Document is returned.
func Parse(text string) (*Document, error) {
	var lines []Line
	rest := text
	for rest != "" {
		line, next, ok := parseLine(rest)
		if !ok {
			break
		}
		lines = append(lines, line)
		rest = next
	}
	if rest != "" {
		offending, _ := cutLine(rest)
		return nil, &SyntaxError{
			Line:   len(lines) + 1,
			Offset: len(text) - len(rest),
			Text:   offending,
		}
	}
	return &Document{lines: lines}, nil
}

// parseLine matches one directive line or one blank line.
// A directive must be followed by a line terminator or the end of input.
func parseLine(in string) (Line, string, bool) {
	if d, rest, ok := parseDirective(in); ok {
		if rest, ok := lineEnd(rest); ok {
			return DirectiveLine(d), rest, true
		}
		return Line{}, in, false
	}
	if rest, ok := newline(in); ok {
		return BlankLine(), rest, true
	}
	return Line{}, in, false
}
