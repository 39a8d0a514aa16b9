package descript

var surfacePosition = keyword[SurfacePosition](surfacePositionNames)

func idListRule(prefix string, k Kind) rule {
	return prefixed(prefix, idList, func(ids []CharacterID) Directive { return IDList{Key: k, IDs: ids} })
}

func desktopAlignment(s Scope, p SurfacePosition) Directive {
	return DesktopAlignment{Scope: s, Position: p}
}

func defaultPosition(axis Axis) func(Scope, Position) Directive {
	return func(s Scope, v Position) Directive {
		return DefaultPosition{Scope: s, Axis: axis, Value: v}
	}
}

var representationRules = rules(
	one(idListRule("seriko.zorder,", KindSerikoZOrder)),
	one(idListRule("seriko.sticky-window,", KindSerikoStickyWindow)),
	one(prefixed("seriko.alignmenttodesktop,", surfacePosition, func(p SurfacePosition) Directive {
		return desktopAlignment(Global, p)
	})),
	scoped(".seriko.alignmenttodesktop,", surfacePosition, desktopAlignment),
	scoped(".defaultx,", signed, defaultPosition(AxisX)),
	scoped(".defaulty,", signed, defaultPosition(AxisY)),
	scoped(".defaultleft,", signed, defaultPosition(AxisLeft)),
	scoped(".defaulttop,", signed, defaultPosition(AxisTop)),
)
