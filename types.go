package descript

import (
	"iter"
	"slices"
)

// LineType tells which kind of line a Line holds.
type LineType uint8

const (
	// LineBlank is a bare line terminator.
	LineBlank LineType = iota
	// LineComment is reserved for comment lines. No grammar rule produces it.
	LineComment
	// LineDirective is a line holding one parsed directive.
	LineDirective
)

func (t LineType) String() string {
	switch t {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineDirective:
		return "directive"
	}
	return "unknown"
}

// Line represents one line of a descript.txt file.
type Line struct {
	Type      LineType
	Directive Directive // set when Type is LineDirective
	Comment   string    // set when Type is LineComment
}

// BlankLine returns a blank Line.
func BlankLine() Line {
	return Line{Type: LineBlank}
}

// DirectiveLine wraps d in a Line.
func DirectiveLine(d Directive) Line {
	return Line{Type: LineDirective, Directive: d}
}

// Document represents a parsed descript.txt file.
// A Document is never modified after it is returned by the parser.
type Document struct {
	lines []Line
}

// NewDocument creates a Document holding a copy of lines.
func NewDocument(lines []Line) *Document {
	return &Document{lines: slices.Clone(lines)}
}

// Lines returns the lines of the document in file order.
// The returned slice is a copy.
func (d *Document) Lines() []Line {
	return slices.Clone(d.lines)
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the i-th line.
func (d *Document) Line(i int) Line {
	return d.lines[i]
}

// Directives iterates over the directive lines, yielding the line index
// and the directive.
func (d *Document) Directives() iter.Seq2[int, Directive] {
	return func(yield func(int, Directive) bool) {
		for i, l := range d.lines {
			if l.Type != LineDirective {
				continue
			}
			if !yield(i, l.Directive) {
				return
			}
		}
	}
}

// Find returns the directives of the given kind in file order.
func (d *Document) Find(k Kind) []Directive {
	var found []Directive
	for _, dir := range d.Directives() {
		if dir.Kind() == k {
			found = append(found, dir)
		}
	}
	return found
}
