package descript

import (
	"io"
	"strconv"
	"strings"
)

// LineTerminator ends every line written by Format and WriteTo.
const LineTerminator = "\r\n"

func u32(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
func u8(v uint8) string   { return strconv.FormatUint(uint64(v), 10) }
func i64(v int64) string  { return strconv.FormatInt(v, 10) }

func joinIDs(ids []uint32) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = u32(id)
	}
	return strings.Join(parts, ",")
}

func (e MenuEntry) String() string {
	if e.Separator {
		return "-"
	}
	return u32(e.ID)
}

func (d CharsetDecl) String() string { return d.Key.String() + "," + d.Charset.String() }
func (d Text) String() string        { return d.Key.String() + "," + d.Value }
func (d EntityName) String() string  { return d.Scope.key(".name,") + d.Value }
func (d IDList) String() string      { return d.Key.String() + "," + joinIDs(d.IDs) }
func (d MenuColor) String() string   { return d.Key.String() + "," + u8(d.Value) }
func (d AlphaFlag) String() string   { return d.Key.String() + "," + u8(d.Value) }

func (d Marker) String() string {
	switch d.Key {
	case KindType:
		return "type,shell"
	case KindMenuHidden:
		return "menu,hidden"
	}
	return d.Key.String()
}

func (d DesktopAlignment) String() string {
	return d.Scope.key(".seriko.alignmenttodesktop,") + d.Position.String()
}

func (d DefaultPosition) String() string {
	return d.Scope.key(".default"+d.Axis.String()+",") + i64(d.Value)
}

func (d BalloonOffset) String() string {
	return d.Scope.key(".balloon.offset"+d.Axis.String()+",") + i64(d.Value)
}

func (d BalloonAlignment) String() string {
	return d.Scope.key(".balloon.alignment,") + d.Position.String()
}

func (d BalloonDontMove) String() string {
	return d.Scope.key(".balloon.dontmove,") + u8(d.Value)
}

func (d MenuFontHeight) String() string {
	return "menu.font.height," + u32(d.Value)
}

func (d MenuAlignment) String() string {
	var b strings.Builder
	b.WriteString(d.Key.String())
	b.WriteByte(',')
	b.WriteString(d.Base.String())
	for _, r := range [...]*MenuRepeat{d.Repeat, d.Repeat2} {
		if r != nil {
			b.WriteByte('+')
			b.WriteString(r.String())
		}
	}
	return b.String()
}

func (d SidebarAlignment) String() string {
	s := "menu.sidebar.alignment," + d.Base.String()
	if d.Repeat != nil {
		s += "+" + d.Repeat.String()
	}
	return s
}

func (d BindGroupName) String() string {
	s := d.Scope.key(".bindgroup"+u32(d.Group)+".name,") + d.Category + "," + d.Part
	if d.Thumbnail != nil {
		s += "," + *d.Thumbnail
	}
	return s
}

func (d BindGroupDefault) String() string {
	return d.Scope.key(".bindgroup"+u32(d.Group)+".default,") + u8(d.Value)
}

func (d BindGroupAddID) String() string {
	return d.Scope.key(".bindgroup"+u32(d.Group)+".addid,") + joinIDs(d.IDs)
}

func (d BindOptionGroup) String() string {
	var tags []string
	if d.MustSelect {
		tags = append(tags, tagMustSelect)
	}
	if d.Multiple {
		tags = append(tags, tagMultiple)
	}
	return d.Scope.key(".bindoption"+u32(d.Group)+".group,") + d.Category + "," + strings.Join(tags, "+")
}

func (d MenuItem) String() string {
	return d.Scope.key(".menuitem"+u32(d.Index)+",") + d.Entry.String()
}

func (d MenuItemEx) String() string {
	return d.Scope.key(".menuitemex"+u32(d.Index)+",") + d.Label + "," + d.Entry.String()
}

func (d MenuVisibility) String() string {
	return d.Scope.key(".menu,") + d.Visibility.String()
}

// String returns the line without its terminator.
func (l Line) String() string {
	switch l.Type {
	case LineDirective:
		return l.Directive.String()
	case LineComment:
		return l.Comment
	}
	return ""
}

// WriteTo writes the document as descript.txt text, one line per Line,
// each ended by LineTerminator.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range d.lines {
		n, err := io.WriteString(w, l.String()+LineTerminator)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Format returns the document as descript.txt text.
func Format(d *Document) string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}
