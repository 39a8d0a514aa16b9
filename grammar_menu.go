package descript

var (
	menuBase      = keyword[MenuBase](menuBaseNames)
	menuRepeat    = after("+", keyword[MenuRepeat](menuRepeatNames))
	sidebarBase   = keyword[SidebarBase](sidebarBaseNames)
	sidebarRepeat = after("+", keyword[SidebarRepeat](sidebarRepeatNames))
)

func colorRule(prefix string, k Kind) rule {
	return prefixed(prefix, uint8Value, func(v ColorChannel) Directive { return MenuColor{Key: k, Value: v} })
}

// colorRules expands one RGB colour key into its three channel rules.
func colorRules(key string, r, g, b Kind) []rule {
	return []rule{
		colorRule(key+".r,", r),
		colorRule(key+".g,", g),
		colorRule(key+".b,", b),
	}
}

// menuAlignment matches <base>[+repeat][+repeat].
func menuAlignment(in string) (MenuAlignment, string, bool) {
	c := newCursor(in)
	a := MenuAlignment{Base: take(c, menuBase)}
	a.Repeat = optional(c, menuRepeat)
	a.Repeat2 = optional(c, menuRepeat)
	if !c.ok {
		return MenuAlignment{}, in, false
	}
	return a, c.rest, true
}

// sidebarAlignment matches <base>[+repeat-y].
func sidebarAlignment(in string) (SidebarAlignment, string, bool) {
	c := newCursor(in)
	a := SidebarAlignment{Base: take(c, sidebarBase)}
	a.Repeat = optional(c, sidebarRepeat)
	if !c.ok {
		return SidebarAlignment{}, in, false
	}
	return a, c.rest, true
}

func menuAlignmentRule(prefix string, k Kind) rule {
	return prefixed(prefix, menuAlignment, func(a MenuAlignment) Directive {
		a.Key = k
		return a
	})
}

var menuRules = rules(
	one(textRule("menu.font.name,", KindMenuFontName)),
	one(prefixed("menu.font.height,", uint32Value, func(v FontSize) Directive { return MenuFontHeight{Value: v} })),
	one(textRule("menu.background.bitmap.filename,", KindMenuBackgroundBitmapFilename)),
	one(textRule("menu.foreground.bitmap.filename,", KindMenuForegroundBitmapFilename)),
	one(textRule("menu.sidebar.bitmap.filename,", KindMenuSidebarBitmapFilename)),
	colorRules("menu.background.font.color", KindMenuBackgroundFontColorR, KindMenuBackgroundFontColorG, KindMenuBackgroundFontColorB),
	colorRules("menu.foreground.font.color", KindMenuForegroundFontColorR, KindMenuForegroundFontColorG, KindMenuForegroundFontColorB),
	colorRules("menu.separator.color", KindMenuSeparatorColorR, KindMenuSeparatorColorG, KindMenuSeparatorColorB),
	colorRules("menu.frame.color", KindMenuFrameColorR, KindMenuFrameColorG, KindMenuFrameColorB),
	colorRules("menu.disable.font.color", KindMenuDisableFontColorR, KindMenuDisableFontColorG, KindMenuDisableFontColorB),
	one(menuAlignmentRule("menu.background.alignment,", KindMenuBackgroundAlignment)),
	one(menuAlignmentRule("menu.foreground.alignment,", KindMenuForegroundAlignment)),
	one(prefixed("menu.sidebar.alignment,", sidebarAlignment, func(a SidebarAlignment) Directive { return a })),
)
