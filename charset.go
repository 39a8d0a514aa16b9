package descript

import "strings"

// Charset is a text encoding a descript.txt file can declare.
type Charset uint8

// Charsets a charset line can declare.
const (
	// CharsetDefault is used when the file declares no charset.
	CharsetDefault Charset = iota
	CharsetASCII
	CharsetShiftJIS
	CharsetISO2022JP
	CharsetEUCJP
	CharsetUTF8
)

// charsetNames lists the declarable names in matching order.
var charsetNames = []string{
	CharsetDefault:   "default",
	CharsetASCII:     "ASCII",
	CharsetShiftJIS:  "Shift_JIS",
	CharsetISO2022JP: "ISO-2022-JP",
	CharsetEUCJP:     "EUC-JP",
	CharsetUTF8:      "UTF-8",
}

func (c Charset) String() string { return enumName(charsetNames, c) }

// ParseCharset returns the Charset named name. Names are case-sensitive.
// "default" is not a declarable name.
func ParseCharset(name string) (Charset, error) {
	for c := CharsetASCII; int(c) < len(charsetNames); c++ {
		if charsetNames[c] == name {
			return c, nil
		}
	}
	return CharsetDefault, &CharsetError{Name: name}
}

// charsetValue matches a declarable charset name.
func charsetValue(in string) (Charset, string, bool) {
	for c := CharsetASCII; int(c) < len(charsetNames); c++ {
		if rest, ok := strings.CutPrefix(in, charsetNames[c]); ok {
			return c, rest, true
		}
	}
	return CharsetDefault, in, false
}

const charsetPrefix = "charset,"

// DetectCharset scans text for the first line starting with "charset," and
// returns the charset it declares. Other lines are skipped unparsed, so
// text may be a lossy view of undecoded bytes. found is false when no line
// declares a charset. A declaration naming an unknown charset fails with a
// *CharsetError.
func DetectCharset(text string) (c Charset, found bool, err error) {
	rest := strings.TrimPrefix(text, bom)
	for rest != "" {
		var line string
		line, rest = cutLine(rest)
		name, ok := strings.CutPrefix(line, charsetPrefix)
		if !ok {
			continue
		}
		c, err = ParseCharset(name)
		if err != nil {
			return CharsetDefault, false, err
		}
		return c, true, nil
	}
	return CharsetDefault, false, nil
}

// cutLine splits text after its first line terminator.
func cutLine(text string) (line, rest string) {
	i := strings.IndexAny(text, "\r\n")
	if i < 0 {
		return text, ""
	}
	rest, _ = newline(text[i:])
	return text[:i], rest
}
