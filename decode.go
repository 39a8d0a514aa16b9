package descript

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

const bom = "\uFEFF"

var errInvalidSequence = errors.New("invalid byte sequence")

// Codec converts between raw bytes and text in a declared charset.
type Codec interface {
	// Decode converts b to text. It fails when b is not valid in c.
	Decode(b []byte, c Charset) (string, error)
	// Encode converts s to bytes. It fails when s is not representable in c.
	Encode(s string, c Charset) ([]byte, error)
}

// NewCodec returns the Codec backed by golang.org/x/text. CharsetDefault
// is treated as Shift_JIS, the historical encoding of descript.txt.
func NewCodec() Codec {
	return textCodec{}
}

type textCodec struct{}

func (textCodec) japanese(c Charset) encoding.Encoding {
	switch c {
	case CharsetDefault, CharsetShiftJIS:
		return japanese.ShiftJIS
	case CharsetEUCJP:
		return japanese.EUCJP
	case CharsetISO2022JP:
		return japanese.ISO2022JP
	}
	return nil
}

func (k textCodec) Decode(b []byte, c Charset) (string, error) {
	switch c {
	case CharsetASCII:
		for i, x := range b {
			if x >= utf8.RuneSelf {
				return "", fmt.Errorf("%w at offset %d", errInvalidSequence, i)
			}
		}
		return string(b), nil
	case CharsetUTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w at offset %d", errInvalidSequence, invalidUTF8Offset(b))
		}
		return strings.TrimPrefix(string(b), bom), nil
	}
	enc := k.japanese(c)
	if enc == nil {
		return "", fmt.Errorf("no decoder for %s", c)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	// The japanese decoders substitute U+FFFD for invalid input, and none
	// of these charsets can encode U+FFFD itself.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errInvalidSequence
	}
	return string(out), nil
}

func (k textCodec) Encode(s string, c Charset) ([]byte, error) {
	switch c {
	case CharsetASCII:
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return nil, fmt.Errorf("non-ASCII character at offset %d", i)
			}
		}
		return []byte(s), nil
	case CharsetUTF8:
		return []byte(s), nil
	}
	enc := k.japanese(c)
	if enc == nil {
		return nil, fmt.Errorf("no encoder for %s", c)
	}
	return enc.NewEncoder().Bytes([]byte(s))
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// lossyView renders b as UTF-8, replacing invalid sequences.
func lossyView(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
