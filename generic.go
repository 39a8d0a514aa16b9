package descript

// Generic returns the document as plain Go values: one map[string]any per
// line, holding "type" and, for directives, "kind", "namespace", "line" and
// the directive fields. Numbers are int64, lists are []any. The result is
// suitable for JSON encoding and JSONPath queries.
func (d *Document) Generic() []any {
	out := make([]any, 0, len(d.lines))
	for _, l := range d.lines {
		out = append(out, l.Generic())
	}
	return out
}

// Generic returns the line as a map of plain Go values.
func (l Line) Generic() map[string]any {
	m := map[string]any{"type": l.Type.String()}
	switch l.Type {
	case LineDirective:
		for k, v := range l.Directive.generic() {
			m[k] = v
		}
		m["kind"] = l.Directive.Kind().String()
		m["namespace"] = l.Directive.Kind().Namespace().String()
		m["line"] = l.Directive.String()
	case LineComment:
		m["comment"] = l.Comment
	}
	return m
}

func ids(v []uint32) []any {
	out := make([]any, len(v))
	for i, id := range v {
		out[i] = int64(id)
	}
	return out
}

func withScope(s Scope, m map[string]any) map[string]any {
	m["scope"] = s.Role.String()
	if s.Role == RoleChar {
		m["char"] = int64(s.ID)
	}
	return m
}

func (e MenuEntry) generic() any {
	if e.Separator {
		return "-"
	}
	return int64(e.ID)
}

func (d CharsetDecl) generic() map[string]any { return map[string]any{"charset": d.Charset.String()} }
func (d Text) generic() map[string]any        { return map[string]any{"value": d.Value} }
func (d Marker) generic() map[string]any      { return map[string]any{} }
func (d IDList) generic() map[string]any      { return map[string]any{"ids": ids(d.IDs)} }
func (d MenuColor) generic() map[string]any   { return map[string]any{"value": int64(d.Value)} }
func (d AlphaFlag) generic() map[string]any   { return map[string]any{"value": int64(d.Value)} }

func (d MenuFontHeight) generic() map[string]any {
	return map[string]any{"value": int64(d.Value)}
}

func (d EntityName) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"value": d.Value})
}

func (d DesktopAlignment) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"position": d.Position.String()})
}

func (d DefaultPosition) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"axis": d.Axis.String(), "value": int64(d.Value)})
}

func (d BalloonOffset) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"axis": d.Axis.String(), "value": int64(d.Value)})
}

func (d BalloonAlignment) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"position": d.Position.String()})
}

func (d BalloonDontMove) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"value": int64(d.Value)})
}

func (d MenuAlignment) generic() map[string]any {
	repeat := []any{}
	for _, r := range [...]*MenuRepeat{d.Repeat, d.Repeat2} {
		if r != nil {
			repeat = append(repeat, r.String())
		}
	}
	return map[string]any{"base": d.Base.String(), "repeat": repeat}
}

func (d SidebarAlignment) generic() map[string]any {
	m := map[string]any{"base": d.Base.String()}
	if d.Repeat != nil {
		m["repeat"] = d.Repeat.String()
	}
	return m
}

func (d BindGroupName) generic() map[string]any {
	m := map[string]any{"group": int64(d.Group), "category": d.Category, "part": d.Part}
	if d.Thumbnail != nil {
		m["thumbnail"] = *d.Thumbnail
	}
	return withScope(d.Scope, m)
}

func (d BindGroupDefault) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"group": int64(d.Group), "value": int64(d.Value)})
}

func (d BindGroupAddID) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"group": int64(d.Group), "ids": ids(d.IDs)})
}

func (d BindOptionGroup) generic() map[string]any {
	return withScope(d.Scope, map[string]any{
		"group":      int64(d.Group),
		"category":   d.Category,
		"mustselect": d.MustSelect,
		"multiple":   d.Multiple,
	})
}

func (d MenuItem) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"index": int64(d.Index), "entry": d.Entry.generic()})
}

func (d MenuItemEx) generic() map[string]any {
	return withScope(d.Scope, map[string]any{
		"index": int64(d.Index),
		"label": d.Label,
		"entry": d.Entry.generic(),
	})
}

func (d MenuVisibility) generic() map[string]any {
	return withScope(d.Scope, map[string]any{"visibility": d.Visibility.String()})
}
