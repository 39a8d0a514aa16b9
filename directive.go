package descript

import "strconv"

type (
	// CharacterID identifies a character slot (the N of charN).
	CharacterID = uint32
	// AnimationID identifies a surface animation or bind group.
	AnimationID = uint32
	// Position is a desktop coordinate or offset in pixels.
	Position = int64
	// Flag is a boolean stored as a small integer; 0 is false.
	Flag = uint8
	// FontSize is a menu font height.
	FontSize = uint32
	// ColorChannel is one 0-255 component of an RGB colour.
	ColorChannel = uint8
)

// Directive is one parsed descript.txt line.
//
// The concrete types are the directive families declared in this file.
// String returns the directive in canonical descript.txt form, without
// a line terminator.
type Directive interface {
	Kind() Kind
	String() string
	generic() map[string]any
}

// Role is the kind of entity a Scope names.
type Role uint8

const (
	// RoleGlobal is used by directives that apply to the whole shell.
	RoleGlobal Role = iota
	RoleSakura // sakura.
	RoleKero   // kero.
	RoleChar   // charN.
)

func (r Role) String() string {
	switch r {
	case RoleSakura:
		return "sakura"
	case RoleKero:
		return "kero"
	case RoleChar:
		return "char"
	}
	return "global"
}

// Scope is the entity a scoped directive applies to.
type Scope struct {
	Role Role
	ID   CharacterID // set when Role is RoleChar
}

var (
	// Global is the scope of unprefixed directives.
	Global = Scope{Role: RoleGlobal}
	// Sakura is the main character.
	Sakura = Scope{Role: RoleSakura}
	// Kero is the partner character.
	Kero = Scope{Role: RoleKero}
)

// Char returns the scope of the character numbered id.
func Char(id CharacterID) Scope {
	return Scope{Role: RoleChar, ID: id}
}

// String returns the key prefix of s without the trailing dot.
func (s Scope) String() string {
	switch s.Role {
	case RoleSakura:
		return "sakura"
	case RoleKero:
		return "kero"
	case RoleChar:
		return "char" + strconv.FormatUint(uint64(s.ID), 10)
	}
	return ""
}

// key joins the scope prefix and a dotted suffix.
func (s Scope) key(suffix string) string {
	if s.Role == RoleGlobal {
		return suffix[1:]
	}
	return s.String() + suffix
}

// kind picks the Kind matching the role of s.
func (s Scope) kind(global, sakura, kero, char Kind) Kind {
	switch s.Role {
	case RoleSakura:
		return sakura
	case RoleKero:
		return kero
	case RoleChar:
		return char
	}
	return global
}

// Axis selects a coordinate of a default position or balloon offset.
type Axis uint8

// Axes named by the key suffixes x, y, left and top.
const (
	AxisX Axis = iota
	AxisY
	AxisLeft
	AxisTop
)

var axisNames = []string{"x", "y", "left", "top"}

func (a Axis) String() string { return enumName(axisNames, a) }

// SurfacePosition is the value of seriko.alignmenttodesktop.
type SurfacePosition uint8

// Surface positions accepted by alignmenttodesktop.
const (
	SurfaceTop SurfacePosition = iota
	SurfaceBottom
	SurfaceFree
)

var surfacePositionNames = []string{"top", "bottom", "free"}

func (p SurfacePosition) String() string { return enumName(surfacePositionNames, p) }

// BalloonPosition is the value of balloon.alignment.
type BalloonPosition uint8

// Balloon positions accepted by balloon.alignment.
const (
	BalloonNone BalloonPosition = iota
	BalloonLeft
	BalloonRight
)

var balloonPositionNames = []string{"none", "left", "right"}

func (p BalloonPosition) String() string { return enumName(balloonPositionNames, p) }

// MenuBase is the anchor of a menu background or foreground bitmap.
type MenuBase uint8

// Menu bitmap anchors, named after their keyword.
const (
	MenuLeftTop MenuBase = iota
	MenuCenterTop
	MenuRightTop
	MenuLeftBottom
	MenuCenterBottom
	MenuRightBottom
)

var menuBaseNames = []string{"lefttop", "centertop", "righttop", "leftbottom", "centerbottom", "rightbottom"}

func (b MenuBase) String() string { return enumName(menuBaseNames, b) }

// MenuRepeat is a tiling modifier of a menu bitmap.
type MenuRepeat uint8

// Menu bitmap tiling directions.
const (
	RepeatX MenuRepeat = iota
	RepeatY
)

var menuRepeatNames = []string{"repeat-x", "repeat-y"}

func (r MenuRepeat) String() string { return enumName(menuRepeatNames, r) }

// SidebarBase is the anchor of the menu sidebar bitmap.
type SidebarBase uint8

// Sidebar bitmap anchors.
const (
	SidebarTop SidebarBase = iota
	SidebarBottom
)

var sidebarBaseNames = []string{"top", "bottom"}

func (b SidebarBase) String() string { return enumName(sidebarBaseNames, b) }

// SidebarRepeat is a tiling modifier of the sidebar bitmap.
type SidebarRepeat uint8

// SidebarRepeatY tiles the sidebar bitmap vertically; it is the only
// modifier the sidebar accepts.
const (
	SidebarRepeatY SidebarRepeat = iota
)

var sidebarRepeatNames = []string{"repeat-y"}

func (r SidebarRepeat) String() string { return enumName(sidebarRepeatNames, r) }

// Visibility is the value of the per-character menu directive.
type Visibility uint8

// Per-character menu visibilities.
const (
	VisibilityAuto Visibility = iota
	VisibilityHidden
)

var visibilityNames = []string{"auto", "hidden"}

func (v Visibility) String() string { return enumName(visibilityNames, v) }

func enumName[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "invalid"
}

// MenuEntry is the target of a menu item: a separator line or a bind group.
type MenuEntry struct {
	Separator bool
	ID        AnimationID // set when Separator is false
}

// SeparatorEntry returns a menu separator.
func SeparatorEntry() MenuEntry { return MenuEntry{Separator: true} }

// GroupEntry returns a menu entry pointing at bind group id.
func GroupEntry(id AnimationID) MenuEntry { return MenuEntry{ID: id} }

// CharsetDecl is charset or readme.charset.
type CharsetDecl struct {
	Key     Kind
	Charset Charset
}

// Text is a directive whose value is free text up to the end of the line:
// name, id, craftman, craftmanw, craftmanurl, homeurl, readme,
// sakura.name2, menu.font.name and the menu bitmap filenames.
type Text struct {
	Key   Kind
	Value string
}

// Marker is a directive without a value: type,shell and menu,hidden.
type Marker struct {
	Key Kind
}

// EntityName is sakura.name, kero.name or charN.name.
type EntityName struct {
	Scope Scope
	Value string
}

// IDList is seriko.zorder or seriko.sticky-window.
type IDList struct {
	Key Kind
	IDs []CharacterID
}

// DesktopAlignment is [scope.]seriko.alignmenttodesktop.
type DesktopAlignment struct {
	Scope    Scope
	Position SurfacePosition
}

// DefaultPosition is scope.defaultx, defaulty, defaultleft or defaulttop.
type DefaultPosition struct {
	Scope Scope
	Axis  Axis
	Value Position
}

// BalloonOffset is scope.balloon.offsetx or offsety.
type BalloonOffset struct {
	Scope Scope
	Axis  Axis
	Value Position
}

// BalloonAlignment is scope.balloon.alignment.
type BalloonAlignment struct {
	Scope    Scope
	Position BalloonPosition
}

// BalloonDontMove is scope.balloon.dontmove. The keyword true reads as 1.
type BalloonDontMove struct {
	Scope Scope
	Value Flag
}

// MenuFontHeight is menu.font.height.
type MenuFontHeight struct {
	Value FontSize
}

// MenuColor is one colour channel of the owner-drawn menu.
type MenuColor struct {
	Key   Kind
	Value ColorChannel
}

// MenuAlignment is menu.background.alignment or menu.foreground.alignment.
type MenuAlignment struct {
	Key     Kind
	Base    MenuBase
	Repeat  *MenuRepeat
	Repeat2 *MenuRepeat
}

// SidebarAlignment is menu.sidebar.alignment.
type SidebarAlignment struct {
	Base   SidebarBase
	Repeat *SidebarRepeat
}

// BindGroupName is scope.bindgroupN.name.
type BindGroupName struct {
	Scope     Scope
	Group     AnimationID
	Category  string
	Part      string
	Thumbnail *string
}

// BindGroupDefault is scope.bindgroupN.default.
type BindGroupDefault struct {
	Scope Scope
	Group AnimationID
	Value Flag
}

// BindGroupAddID is scope.bindgroupN.addid.
type BindGroupAddID struct {
	Scope Scope
	Group AnimationID
	IDs   []AnimationID
}

// BindOptionGroup is scope.bindoptionN.group.
type BindOptionGroup struct {
	Scope      Scope
	Group      uint32
	Category   string
	MustSelect bool
	Multiple   bool
}

// MenuItem is scope.menuitemN.
type MenuItem struct {
	Scope Scope
	Index uint32
	Entry MenuEntry
}

// MenuItemEx is scope.menuitemexN.
type MenuItemEx struct {
	Scope Scope
	Index uint32
	Label string
	Entry MenuEntry
}

// MenuVisibility is scope.menu.
type MenuVisibility struct {
	Scope      Scope
	Visibility Visibility
}

// AlphaFlag is seriko.paint_transparent_region_black or
// seriko.use_self_alpha.
type AlphaFlag struct {
	Key   Kind
	Value Flag
}

func (d CharsetDecl) Kind() Kind   { return d.Key }
func (d Text) Kind() Kind          { return d.Key }
func (d Marker) Kind() Kind        { return d.Key }
func (d IDList) Kind() Kind        { return d.Key }
func (d MenuColor) Kind() Kind     { return d.Key }
func (d MenuAlignment) Kind() Kind { return d.Key }
func (d AlphaFlag) Kind() Kind     { return d.Key }
func (MenuFontHeight) Kind() Kind  { return KindMenuFontHeight }
func (SidebarAlignment) Kind() Kind {
	return KindMenuSidebarAlignment
}

func (d EntityName) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraName, KindKeroName, KindCharName)
}

func (d BalloonDontMove) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraBalloonDontMove, KindKeroBalloonDontMove, KindCharBalloonDontMove)
}

func (d BalloonAlignment) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraBalloonAlignment, KindKeroBalloonAlignment, KindInvalid)
}

func (d DesktopAlignment) Kind() Kind {
	return d.Scope.kind(KindSerikoAlignmentToDesktop, KindSakuraSerikoAlignmentToDesktop,
		KindKeroSerikoAlignmentToDesktop, KindCharSerikoAlignmentToDesktop)
}

func (d DefaultPosition) Kind() Kind {
	switch d.Axis {
	case AxisX:
		return d.Scope.kind(KindInvalid, KindSakuraDefaultX, KindKeroDefaultX, KindCharDefaultX)
	case AxisY:
		return d.Scope.kind(KindInvalid, KindSakuraDefaultY, KindKeroDefaultY, KindCharDefaultY)
	case AxisLeft:
		return d.Scope.kind(KindInvalid, KindSakuraDefaultLeft, KindKeroDefaultLeft, KindCharDefaultLeft)
	case AxisTop:
		return d.Scope.kind(KindInvalid, KindSakuraDefaultTop, KindKeroDefaultTop, KindCharDefaultTop)
	}
	return KindInvalid
}

func (d BalloonOffset) Kind() Kind {
	switch d.Axis {
	case AxisX:
		return d.Scope.kind(KindInvalid, KindSakuraBalloonOffsetX, KindKeroBalloonOffsetX, KindInvalid)
	case AxisY:
		return d.Scope.kind(KindInvalid, KindSakuraBalloonOffsetY, KindKeroBalloonOffsetY, KindInvalid)
	}
	return KindInvalid
}

func (d BindGroupName) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraBindGroupName, KindKeroBindGroupName, KindCharBindGroupName)
}

func (d BindGroupDefault) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraBindGroupDefault, KindKeroBindGroupDefault, KindCharBindGroupDefault)
}

func (d BindGroupAddID) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraBindGroupAddID, KindKeroBindGroupAddID, KindCharBindGroupAddID)
}

func (d BindOptionGroup) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraBindOptionGroup, KindKeroBindOptionGroup, KindCharBindOptionGroup)
}

func (d MenuItem) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraMenuItem, KindKeroMenuItem, KindCharMenuItem)
}

func (d MenuItemEx) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraMenuItemEx, KindKeroMenuItemEx, KindCharMenuItemEx)
}

func (d MenuVisibility) Kind() Kind {
	return d.Scope.kind(KindInvalid, KindSakuraMenu, KindKeroMenu, KindCharMenu)
}
