package descript

import (
	"strconv"
	"strings"
)

// matcher consumes a prefix of in and returns the parsed value with the
// remaining text. On mismatch it returns ok == false and in unchanged.
type matcher[T any] func(in string) (v T, rest string, ok bool)

// digits matches one or more ASCII digits.
func digits(in string) (string, string, bool) {
	i := 0
	for i < len(in) && in[i] >= '0' && in[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", in, false
	}
	return in[:i], in[i:], true
}

// unsigned matches a decimal number that fits in bits bits.
func unsigned[T ~uint8 | ~uint32](bits int) matcher[T] {
	return func(in string) (T, string, bool) {
		d, rest, ok := digits(in)
		if !ok {
			return 0, in, false
		}
		n, err := strconv.ParseUint(d, 10, bits)
		if err != nil {
			return 0, in, false
		}
		return T(n), rest, true
	}
}

var (
	uint8Value  = unsigned[uint8](8)
	uint32Value = unsigned[uint32](32)
)

// signed matches an optionally negative decimal number.
func signed(in string) (int64, string, bool) {
	body, neg := strings.CutPrefix(in, "-")
	d, rest, ok := digits(body)
	if !ok {
		return 0, in, false
	}
	if neg {
		d = "-" + d
	}
	n, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0, in, false
	}
	return n, rest, true
}

// until matches one or more characters not in stop.
func until(stop string) matcher[string] {
	return func(in string) (string, string, bool) {
		i := strings.IndexAny(in, stop)
		if i < 0 {
			i = len(in)
		}
		if i == 0 {
			return "", in, false
		}
		return in[:i], in[i:], true
	}
}

var (
	// text matches the rest of the line.
	text = until("\r\n")
	// field matches one comma-separated field.
	field = until(",\r\n")
)

// newline matches CRLF, CR or LF.
func newline(in string) (string, bool) {
	for _, nl := range [...]string{"\r\n", "\r", "\n"} {
		if rest, ok := strings.CutPrefix(in, nl); ok {
			return rest, true
		}
	}
	return in, false
}

// lineEnd matches a line terminator or the end of input.
func lineEnd(in string) (string, bool) {
	if in == "" {
		return in, true
	}
	return newline(in)
}

// charID matches the charN prefix of a scoped key.
func charID(in string) (CharacterID, string, bool) {
	rest, ok := strings.CutPrefix(in, "char")
	if !ok {
		return 0, in, false
	}
	id, rest, ok := uint32Value(rest)
	if !ok {
		return 0, in, false
	}
	return id, rest, true
}

// keyword matches one of tags, tried in order, and yields its index.
// When a tag is a prefix of another, the longer one must come first.
func keyword[T ~uint8](tags []string) matcher[T] {
	return func(in string) (T, string, bool) {
		for i, tag := range tags {
			if rest, ok := strings.CutPrefix(in, tag); ok {
				return T(i), rest, true
			}
		}
		return 0, in, false
	}
}

// list matches one or more elements separated by sep.
func list[T any](elem matcher[T], sep string) matcher[[]T] {
	return func(in string) ([]T, string, bool) {
		v, rest, ok := elem(in)
		if !ok {
			return nil, in, false
		}
		out := []T{v}
		for {
			next, ok := strings.CutPrefix(rest, sep)
			if !ok {
				break
			}
			v, next, ok = elem(next)
			if !ok {
				break
			}
			out = append(out, v)
			rest = next
		}
		return out, rest, true
	}
}

var idList = list(uint32Value, ",")

// flag matches a boolean-as-integer value.
var flag = uint8Value

// flagOrTrue matches a boolean-as-integer value or the keyword true.
func flagOrTrue(in string) (Flag, string, bool) {
	if v, rest, ok := flag(in); ok {
		return v, rest, true
	}
	if rest, ok := strings.CutPrefix(in, "true"); ok {
		return 1, rest, true
	}
	return 0, in, false
}

// cursor threads the remaining text through a fixed sequence of matches.
// After the first mismatch every further step is a no-op and ok stays false.
type cursor struct {
	rest string
	ok   bool
}

func newCursor(in string) *cursor {
	return &cursor{rest: in, ok: true}
}

// lit consumes the literal s.
func (c *cursor) lit(s string) {
	if c.ok {
		c.rest, c.ok = strings.CutPrefix(c.rest, s)
	}
}

// try consumes the literal s if present and reports whether it did.
func (c *cursor) try(s string) bool {
	if !c.ok {
		return false
	}
	rest, ok := strings.CutPrefix(c.rest, s)
	if ok {
		c.rest = rest
	}
	return ok
}

// take applies m at the cursor.
func take[T any](c *cursor, m matcher[T]) T {
	var zero T
	if !c.ok {
		return zero
	}
	v, rest, ok := m(c.rest)
	if !ok {
		c.ok = false
		return zero
	}
	c.rest = rest
	return v
}

// optional applies m at the cursor; absence is not a failure.
func optional[T any](c *cursor, m matcher[T]) *T {
	if !c.ok {
		return nil
	}
	v, rest, ok := m(c.rest)
	if !ok {
		return nil
	}
	c.rest = rest
	return &v
}

// after returns a matcher for s followed by m.
func after[T any](s string, m matcher[T]) matcher[T] {
	return func(in string) (T, string, bool) {
		var zero T
		rest, ok := strings.CutPrefix(in, s)
		if !ok {
			return zero, in, false
		}
		v, rest, ok := m(rest)
		if !ok {
			return zero, in, false
		}
		return v, rest, true
	}
}
