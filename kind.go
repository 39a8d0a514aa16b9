package descript

// Namespace groups directives by functional area.
type Namespace uint8

// Namespaces in dispatch order.
const (
	NamespaceIdentity Namespace = iota
	NamespaceRepresentation
	NamespaceBalloon
	NamespaceMenu
	NamespaceBinding
	NamespaceAlpha

	namespaceUnknown
)

var namespaceNames = [...]string{
	NamespaceIdentity:       "identity",
	NamespaceRepresentation: "representation",
	NamespaceBalloon:        "balloon",
	NamespaceMenu:           "menu",
	NamespaceBinding:        "binding",
	NamespaceAlpha:          "alpha",
}

func (n Namespace) String() string {
	if int(n) < len(namespaceNames) {
		return namespaceNames[n]
	}
	return "unknown"
}

// Kind identifies a directive variant. Scoped directive families have one
// Kind per scope (sakura, kero, charN).
type Kind uint8

// Kinds, grouped by namespace. String returns the key pattern of each.
const (
	KindInvalid Kind = iota

	// identity
	KindCharset
	KindName
	KindID
	KindType
	KindCraftman
	KindCraftmanW
	KindCraftmanURL
	KindHomeURL
	KindReadme
	KindReadmeCharset
	KindMenuHidden
	KindSakuraName
	KindSakuraName2
	KindKeroName
	KindCharName

	// representation
	KindSerikoZOrder
	KindSerikoStickyWindow
	KindSerikoAlignmentToDesktop
	KindSakuraSerikoAlignmentToDesktop
	KindKeroSerikoAlignmentToDesktop
	KindCharSerikoAlignmentToDesktop
	KindSakuraDefaultX
	KindKeroDefaultX
	KindCharDefaultX
	KindSakuraDefaultY
	KindKeroDefaultY
	KindCharDefaultY
	KindSakuraDefaultLeft
	KindKeroDefaultLeft
	KindCharDefaultLeft
	KindSakuraDefaultTop
	KindKeroDefaultTop
	KindCharDefaultTop

	// balloon
	KindSakuraBalloonOffsetX
	KindSakuraBalloonOffsetY
	KindKeroBalloonOffsetX
	KindKeroBalloonOffsetY
	KindSakuraBalloonAlignment
	KindKeroBalloonAlignment
	KindSakuraBalloonDontMove
	KindKeroBalloonDontMove
	KindCharBalloonDontMove

	// menu
	KindMenuFontName
	KindMenuFontHeight
	KindMenuBackgroundBitmapFilename
	KindMenuForegroundBitmapFilename
	KindMenuSidebarBitmapFilename
	KindMenuBackgroundFontColorR
	KindMenuBackgroundFontColorG
	KindMenuBackgroundFontColorB
	KindMenuForegroundFontColorR
	KindMenuForegroundFontColorG
	KindMenuForegroundFontColorB
	KindMenuSeparatorColorR
	KindMenuSeparatorColorG
	KindMenuSeparatorColorB
	KindMenuFrameColorR
	KindMenuFrameColorG
	KindMenuFrameColorB
	KindMenuDisableFontColorR
	KindMenuDisableFontColorG
	KindMenuDisableFontColorB
	KindMenuBackgroundAlignment
	KindMenuForegroundAlignment
	KindMenuSidebarAlignment

	// binding
	KindSakuraBindGroupName
	KindSakuraBindGroupDefault
	KindSakuraBindGroupAddID
	KindSakuraBindOptionGroup
	KindSakuraMenuItem
	KindSakuraMenuItemEx
	KindSakuraMenu
	KindKeroBindGroupName
	KindKeroBindGroupDefault
	KindKeroBindGroupAddID
	KindKeroBindOptionGroup
	KindKeroMenuItem
	KindKeroMenuItemEx
	KindKeroMenu
	KindCharBindGroupName
	KindCharBindGroupDefault
	KindCharBindGroupAddID
	KindCharBindOptionGroup
	KindCharMenuItem
	KindCharMenuItemEx
	KindCharMenu

	// alpha
	KindSerikoPaintTransparentRegionBlack
	KindSerikoUseSelfAlpha

	kindCount
)

// kindKeys holds the key pattern of every Kind; N stands for a number
// embedded in the key.
var kindKeys = [kindCount]string{
	KindInvalid: "invalid",

	KindCharset:       "charset",
	KindName:          "name",
	KindID:            "id",
	KindType:          "type",
	KindCraftman:      "craftman",
	KindCraftmanW:     "craftmanw",
	KindCraftmanURL:   "craftmanurl",
	KindHomeURL:       "homeurl",
	KindReadme:        "readme",
	KindReadmeCharset: "readme.charset",
	KindMenuHidden:    "menu",
	KindSakuraName:    "sakura.name",
	KindSakuraName2:   "sakura.name2",
	KindKeroName:      "kero.name",
	KindCharName:      "charN.name",

	KindSerikoZOrder:                   "seriko.zorder",
	KindSerikoStickyWindow:             "seriko.sticky-window",
	KindSerikoAlignmentToDesktop:       "seriko.alignmenttodesktop",
	KindSakuraSerikoAlignmentToDesktop: "sakura.seriko.alignmenttodesktop",
	KindKeroSerikoAlignmentToDesktop:   "kero.seriko.alignmenttodesktop",
	KindCharSerikoAlignmentToDesktop:   "charN.seriko.alignmenttodesktop",
	KindSakuraDefaultX:                 "sakura.defaultx",
	KindKeroDefaultX:                   "kero.defaultx",
	KindCharDefaultX:                   "charN.defaultx",
	KindSakuraDefaultY:                 "sakura.defaulty",
	KindKeroDefaultY:                   "kero.defaulty",
	KindCharDefaultY:                   "charN.defaulty",
	KindSakuraDefaultLeft:              "sakura.defaultleft",
	KindKeroDefaultLeft:                "kero.defaultleft",
	KindCharDefaultLeft:                "charN.defaultleft",
	KindSakuraDefaultTop:               "sakura.defaulttop",
	KindKeroDefaultTop:                 "kero.defaulttop",
	KindCharDefaultTop:                 "charN.defaulttop",

	KindSakuraBalloonOffsetX:   "sakura.balloon.offsetx",
	KindSakuraBalloonOffsetY:   "sakura.balloon.offsety",
	KindKeroBalloonOffsetX:     "kero.balloon.offsetx",
	KindKeroBalloonOffsetY:     "kero.balloon.offsety",
	KindSakuraBalloonAlignment: "sakura.balloon.alignment",
	KindKeroBalloonAlignment:   "kero.balloon.alignment",
	KindSakuraBalloonDontMove:  "sakura.balloon.dontmove",
	KindKeroBalloonDontMove:    "kero.balloon.dontmove",
	KindCharBalloonDontMove:    "charN.balloon.dontmove",

	KindMenuFontName:                 "menu.font.name",
	KindMenuFontHeight:               "menu.font.height",
	KindMenuBackgroundBitmapFilename: "menu.background.bitmap.filename",
	KindMenuForegroundBitmapFilename: "menu.foreground.bitmap.filename",
	KindMenuSidebarBitmapFilename:    "menu.sidebar.bitmap.filename",
	KindMenuBackgroundFontColorR:     "menu.background.font.color.r",
	KindMenuBackgroundFontColorG:     "menu.background.font.color.g",
	KindMenuBackgroundFontColorB:     "menu.background.font.color.b",
	KindMenuForegroundFontColorR:     "menu.foreground.font.color.r",
	KindMenuForegroundFontColorG:     "menu.foreground.font.color.g",
	KindMenuForegroundFontColorB:     "menu.foreground.font.color.b",
	KindMenuSeparatorColorR:          "menu.separator.color.r",
	KindMenuSeparatorColorG:          "menu.separator.color.g",
	KindMenuSeparatorColorB:          "menu.separator.color.b",
	KindMenuFrameColorR:              "menu.frame.color.r",
	KindMenuFrameColorG:              "menu.frame.color.g",
	KindMenuFrameColorB:              "menu.frame.color.b",
	KindMenuDisableFontColorR:        "menu.disable.font.color.r",
	KindMenuDisableFontColorG:        "menu.disable.font.color.g",
	KindMenuDisableFontColorB:        "menu.disable.font.color.b",
	KindMenuBackgroundAlignment:      "menu.background.alignment",
	KindMenuForegroundAlignment:      "menu.foreground.alignment",
	KindMenuSidebarAlignment:         "menu.sidebar.alignment",

	KindSakuraBindGroupName:    "sakura.bindgroupN.name",
	KindSakuraBindGroupDefault: "sakura.bindgroupN.default",
	KindSakuraBindGroupAddID:   "sakura.bindgroupN.addid",
	KindSakuraBindOptionGroup:  "sakura.bindoptionN.group",
	KindSakuraMenuItem:         "sakura.menuitemN",
	KindSakuraMenuItemEx:       "sakura.menuitemexN",
	KindSakuraMenu:             "sakura.menu",
	KindKeroBindGroupName:      "kero.bindgroupN.name",
	KindKeroBindGroupDefault:   "kero.bindgroupN.default",
	KindKeroBindGroupAddID:     "kero.bindgroupN.addid",
	KindKeroBindOptionGroup:    "kero.bindoptionN.group",
	KindKeroMenuItem:           "kero.menuitemN",
	KindKeroMenuItemEx:         "kero.menuitemexN",
	KindKeroMenu:               "kero.menu",
	KindCharBindGroupName:      "charN.bindgroupN.name",
	KindCharBindGroupDefault:   "charN.bindgroupN.default",
	KindCharBindGroupAddID:     "charN.bindgroupN.addid",
	KindCharBindOptionGroup:    "charN.bindoptionN.group",
	KindCharMenuItem:           "charN.menuitemN",
	KindCharMenuItemEx:         "charN.menuitemexN",
	KindCharMenu:               "charN.menu",

	KindSerikoPaintTransparentRegionBlack: "seriko.paint_transparent_region_black",
	KindSerikoUseSelfAlpha:                "seriko.use_self_alpha",
}

// String returns the key pattern of k, e.g. "charN.balloon.dontmove".
func (k Kind) String() string {
	if k < kindCount {
		return kindKeys[k]
	}
	return "invalid"
}

// Namespace returns the namespace k belongs to.
func (k Kind) Namespace() Namespace {
	switch {
	case k >= KindCharset && k <= KindCharName:
		return NamespaceIdentity
	case k >= KindSerikoZOrder && k <= KindCharDefaultTop:
		return NamespaceRepresentation
	case k >= KindSakuraBalloonOffsetX && k <= KindCharBalloonDontMove:
		return NamespaceBalloon
	case k >= KindMenuFontName && k <= KindMenuSidebarAlignment:
		return NamespaceMenu
	case k >= KindSakuraBindGroupName && k <= KindCharMenu:
		return NamespaceBinding
	case k == KindSerikoPaintTransparentRegionBlack || k == KindSerikoUseSelfAlpha:
		return NamespaceAlpha
	}
	return namespaceUnknown
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, kindCount-1)
	for k := KindCharset; k < kindCount; k++ {
		ks = append(ks, k)
	}
	return ks
}
