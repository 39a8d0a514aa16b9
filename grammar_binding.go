package descript

const (
	tagMustSelect = "mustselect"
	tagMultiple   = "multiple"
)

var (
	visibility = keyword[Visibility](visibilityNames)
	optionTags = list(keyword[uint8]([]string{tagMustSelect, tagMultiple}), "+")
)

// menuEntry matches a bind group id or "-" for a separator.
func menuEntry(in string) (MenuEntry, string, bool) {
	if id, rest, ok := uint32Value(in); ok {
		return GroupEntry(id), rest, true
	}
	if len(in) > 0 && in[0] == '-' {
		return SeparatorEntry(), in[1:], true
	}
	return MenuEntry{}, in, false
}

// optionFlags reduces a +-separated list of option tags to
// (mustselect, multiple). Order and repetition do not matter.
func optionFlags(in string) ([2]bool, string, bool) {
	tags, rest, ok := optionTags(in)
	if !ok {
		return [2]bool{}, in, false
	}
	var flags [2]bool
	for _, t := range tags {
		flags[t] = true
	}
	return flags, rest, true
}

// The payload matchers below start right after the scope prefix and the
// fixed family key (".bindgroup", ".menuitem", ...).

func bindGroupName(in string) (BindGroupName, string, bool) {
	c := newCursor(in)
	d := BindGroupName{Group: take(c, uint32Value)}
	c.lit(".name,")
	d.Category = take(c, field)
	c.lit(",")
	d.Part = take(c, field)
	d.Thumbnail = optional(c, after(",", field))
	if !c.ok {
		return BindGroupName{}, in, false
	}
	return d, c.rest, true
}

func bindGroupDefault(in string) (BindGroupDefault, string, bool) {
	c := newCursor(in)
	d := BindGroupDefault{Group: take(c, uint32Value)}
	c.lit(".default,")
	d.Value = take(c, flag)
	if !c.ok {
		return BindGroupDefault{}, in, false
	}
	return d, c.rest, true
}

func bindGroupAddID(in string) (BindGroupAddID, string, bool) {
	c := newCursor(in)
	d := BindGroupAddID{Group: take(c, uint32Value)}
	c.lit(".addid,")
	d.IDs = take(c, idList)
	if !c.ok {
		return BindGroupAddID{}, in, false
	}
	return d, c.rest, true
}

func bindOptionGroup(in string) (BindOptionGroup, string, bool) {
	c := newCursor(in)
	d := BindOptionGroup{Group: take(c, uint32Value)}
	c.lit(".group,")
	d.Category = take(c, field)
	c.lit(",")
	flags := take(c, optionFlags)
	if !c.ok {
		return BindOptionGroup{}, in, false
	}
	d.MustSelect, d.Multiple = flags[0], flags[1]
	return d, c.rest, true
}

func menuItem(in string) (MenuItem, string, bool) {
	c := newCursor(in)
	d := MenuItem{Index: take(c, uint32Value)}
	c.lit(",")
	d.Entry = take(c, menuEntry)
	if !c.ok {
		return MenuItem{}, in, false
	}
	return d, c.rest, true
}

func menuItemEx(in string) (MenuItemEx, string, bool) {
	c := newCursor(in)
	d := MenuItemEx{Index: take(c, uint32Value)}
	c.lit(",")
	d.Label = take(c, field)
	c.lit(",")
	d.Entry = take(c, menuEntry)
	if !c.ok {
		return MenuItemEx{}, in, false
	}
	return d, c.rest, true
}

var bindingRules = rules(
	scoped(".bindgroup", bindGroupName, func(s Scope, d BindGroupName) Directive {
		d.Scope = s
		return d
	}),
	scoped(".bindgroup", bindGroupDefault, func(s Scope, d BindGroupDefault) Directive {
		d.Scope = s
		return d
	}),
	scoped(".bindgroup", bindGroupAddID, func(s Scope, d BindGroupAddID) Directive {
		d.Scope = s
		return d
	}),
	scoped(".bindoption", bindOptionGroup, func(s Scope, d BindOptionGroup) Directive {
		d.Scope = s
		return d
	}),
	scoped(".menuitem", menuItem, func(s Scope, d MenuItem) Directive {
		d.Scope = s
		return d
	}),
	scoped(".menuitemex", menuItemEx, func(s Scope, d MenuItemEx) Directive {
		d.Scope = s
		return d
	}),
	scoped(".menu,", visibility, func(s Scope, v Visibility) Directive {
		return MenuVisibility{Scope: s, Visibility: v}
	}),
)
