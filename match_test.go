package descript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsigned(t *testing.T) {
	tests := []struct {
		in   string
		want uint8
		rest string
		ok   bool
	}{
		{"0", 0, "", true},
		{"255,", 255, ",", true},
		{"256", 0, "256", false},
		{"007x", 7, "x", true},
		{"-1", 0, "-1", false},
		{"", 0, "", false},
	}
	for _, tt := range tests {
		v, rest, ok := uint8Value(tt.in)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.in)
		assert.Equal(t, tt.want, v, "value for %q", tt.in)
		assert.Equal(t, tt.rest, rest, "rest for %q", tt.in)
	}

	v, _, ok := uint32Value("4294967295")
	require.True(t, ok)
	assert.Equal(t, uint32(4294967295), v)

	_, _, ok = uint32Value("4294967296")
	assert.False(t, ok, "uint32 overflow must not match")
}

func TestSigned(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"-20", -20, true},
		{"80", 80, true},
		{"-0", 0, true},
		{"-", 0, false},
		{"+5", 0, false},
		{"9223372036854775808", 0, false},
	}
	for _, tt := range tests {
		v, _, ok := signed(tt.in)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.in)
		assert.Equal(t, tt.want, v, "value for %q", tt.in)
	}
}

func TestTextAndField(t *testing.T) {
	v, rest, ok := text("a,b c\r\nnext")
	require.True(t, ok)
	assert.Equal(t, "a,b c", v)
	assert.Equal(t, "\r\nnext", rest)

	v, rest, ok = field("Cat,Part")
	require.True(t, ok)
	assert.Equal(t, "Cat", v)
	assert.Equal(t, ",Part", rest)

	_, _, ok = text("\r\n")
	assert.False(t, ok, "text needs at least one character")
	_, _, ok = field(",x")
	assert.False(t, ok, "field needs at least one character")
}

func TestNewline(t *testing.T) {
	for in, want := range map[string]string{
		"\r\nx": "x",
		"\rx":   "x",
		"\nx":   "x",
		"\n\rx": "\rx",
	} {
		rest, ok := newline(in)
		assert.True(t, ok, "newline(%q)", in)
		assert.Equal(t, want, rest, "newline(%q)", in)
	}
	_, ok := newline("x")
	assert.False(t, ok)

	rest, ok := lineEnd("")
	assert.True(t, ok)
	assert.Empty(t, rest)
}

func TestCharID(t *testing.T) {
	id, rest, ok := charID("char12.name,x")
	require.True(t, ok)
	assert.Equal(t, CharacterID(12), id)
	assert.Equal(t, ".name,x", rest)

	_, rest, ok = charID("char.name")
	assert.False(t, ok)
	assert.Equal(t, "char.name", rest)

	_, _, ok = charID("charset,UTF-8")
	assert.False(t, ok)
}

func TestIDList(t *testing.T) {
	ids, rest, ok := idList("1,2,3\r\n")
	require.True(t, ok)
	assert.Equal(t, []uint32{1, 2, 3}, ids)
	assert.Equal(t, "\r\n", rest)

	// A dangling separator is left for the caller.
	ids, rest, ok = idList("4,")
	require.True(t, ok)
	assert.Equal(t, []uint32{4}, ids)
	assert.Equal(t, ",", rest)

	_, _, ok = idList(",1")
	assert.False(t, ok, "empty list must not match")
}

func TestFlagOrTrue(t *testing.T) {
	for in, want := range map[string]Flag{"0": 0, "1": 1, "2": 2, "true": 1} {
		v, rest, ok := flagOrTrue(in)
		require.True(t, ok, in)
		assert.Equal(t, want, v, in)
		assert.Empty(t, rest, in)
	}
	_, _, ok := flagOrTrue("false")
	assert.False(t, ok)
}

func TestKeywordOrder(t *testing.T) {
	v, rest, ok := optionTags("multiple+mustselect")
	require.True(t, ok)
	assert.Equal(t, []uint8{1, 0}, v)
	assert.Empty(t, rest)

	_, _, ok = menuBase("LeftTop")
	assert.False(t, ok, "keywords are case-sensitive")
}
