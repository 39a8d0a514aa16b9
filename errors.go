package descript

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCharset is wrapped by CharsetError.
	ErrUnknownCharset = errors.New("unknown charset")
	// ErrDecode is wrapped by DecodeError.
	ErrDecode = errors.New("decode failed")
	// ErrSyntax is wrapped by SyntaxError.
	ErrSyntax = errors.New("syntax error")
)

// CharsetError reports a charset directive naming an unsupported charset.
type CharsetError struct {
	Name string
}

func (e *CharsetError) Error() string {
	return fmt.Sprintf("descript: unknown charset %q", e.Name)
}

func (e *CharsetError) Unwrap() error { return ErrUnknownCharset }

// DecodeError reports bytes that are not valid in the chosen charset.
type DecodeError struct {
	Charset Charset
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("descript: decode failed: to %s: %v", e.Charset, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

// SyntaxError reports the first line no grammar rule accepts.
type SyntaxError struct {
	Line   int    // 1-based line number
	Offset int    // byte offset of the line start in the decoded text
	Text   string // the offending line without its terminator
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("descript: syntax error at line %d: unrecognized line %q", e.Line, e.Text)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
