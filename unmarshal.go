package descript

import (
	"fmt"
	"maps"
	"slices"

	"github.com/RoaringBitmap/roaring"
)

// Shell is a typed view of a descript.txt document. Directives are applied
// in file order, so when a key repeats the last occurrence wins; addid and
// menu items accumulate. No cross-directive validation is performed.
type Shell struct {
	Charset       Charset
	Name          string
	ID            string
	IsShell       bool // type,shell
	Craftman      string
	CraftmanW     string
	CraftmanURL   string
	HomeURL       string
	Readme        string
	ReadmeCharset *Charset
	MenuHidden    bool
	SakuraName2   string

	ZOrder       []CharacterID
	StickyWindow []CharacterID
	// Alignment is the unscoped seriko.alignmenttodesktop.
	Alignment *SurfacePosition

	Characters map[Scope]*Character
	Menu       MenuStyle

	PaintTransparentRegionBlack *Flag
	UseSelfAlpha                *Flag
}

// Character collects the directives scoped to sakura, kero or charN.
type Character struct {
	Scope       Scope
	Name        string
	Alignment   *SurfacePosition
	DefaultX    *Position
	DefaultY    *Position
	DefaultLeft *Position
	DefaultTop  *Position

	BalloonOffsetX   *Position
	BalloonOffsetY   *Position
	BalloonAlignment *BalloonPosition
	BalloonDontMove  *Flag

	BindGroups  map[AnimationID]*BindGroup
	BindOptions map[uint32]*BindOption
	MenuItems   map[uint32]MenuSlot
	Menu        *Visibility
}

// BindGroup is one dressup part of a character.
type BindGroup struct {
	ID        AnimationID
	Category  string
	Part      string
	Thumbnail *string
	Default   bool
	AddIDs    []AnimationID
}

// BindOption configures the selection rule of a bind group category.
type BindOption struct {
	Group      uint32
	Category   string
	MustSelect bool
	Multiple   bool
}

// MenuSlot is one entry of a character's dressup menu.
type MenuSlot struct {
	Label string // set by menuitemex
	Entry MenuEntry
}

// RGB is a menu colour.
type RGB struct {
	R, G, B ColorChannel
}

// MenuStyle is the owner-drawn menu appearance.
type MenuStyle struct {
	FontName         string
	FontHeight       *FontSize
	BackgroundBitmap string
	ForegroundBitmap string
	SidebarBitmap    string

	BackgroundFontColor *RGB
	ForegroundFontColor *RGB
	SeparatorColor      *RGB
	FrameColor          *RGB
	DisableFontColor    *RGB

	BackgroundAlignment *MenuAlignment
	ForegroundAlignment *MenuAlignment
	SidebarAlignment    *SidebarAlignment
}

// Unmarshal decodes and parses a descript.txt file into s.
func Unmarshal(data []byte, s *Shell) error {
	doc, err := NewParser().ParseBytes(data)
	if err != nil {
		return err
	}
	return UnmarshalDocument(doc, s)
}

// UnmarshalDocument applies the directives of doc to s.
func UnmarshalDocument(doc *Document, s *Shell) error {
	if s == nil {
		return fmt.Errorf("unmarshal target must be a non-nil *Shell")
	}
	if s.Characters == nil {
		s.Characters = make(map[Scope]*Character)
	}
	for _, d := range doc.Directives() {
		s.apply(d)
	}
	return nil
}

// Character returns the character for sc, creating it if needed. A
// character already present in s gets any missing maps allocated.
func (s *Shell) Character(sc Scope) *Character {
	if s.Characters == nil {
		s.Characters = make(map[Scope]*Character)
	}
	c := s.Characters[sc]
	if c == nil {
		c = &Character{Scope: sc}
		s.Characters[sc] = c
	}
	if c.BindGroups == nil {
		c.BindGroups = make(map[AnimationID]*BindGroup)
	}
	if c.BindOptions == nil {
		c.BindOptions = make(map[uint32]*BindOption)
	}
	if c.MenuItems == nil {
		c.MenuItems = make(map[uint32]MenuSlot)
	}
	return c
}

// Scopes returns the scopes of all characters: sakura, kero, then charN
// by ascending N.
func (s *Shell) Scopes() []Scope {
	return slices.SortedFunc(maps.Keys(s.Characters), func(a, b Scope) int {
		if a.Role != b.Role {
			return int(a.Role) - int(b.Role)
		}
		return int(a.ID) - int(b.ID)
	})
}

// AnimationIDs returns every animation id referenced by bind groups:
// group ids and the ids they add.
func (s *Shell) AnimationIDs() *roaring.Bitmap {
	bm := roaring.New()
	for _, c := range s.Characters {
		for id, g := range c.BindGroups {
			bm.Add(id)
			bm.AddMany(g.AddIDs)
		}
	}
	return bm
}

func ptr[T any](v T) *T { return &v }

func (s *Shell) apply(d Directive) {
	switch d := d.(type) {
	case CharsetDecl:
		if d.Key == KindReadmeCharset {
			s.ReadmeCharset = ptr(d.Charset)
		} else {
			s.Charset = d.Charset
		}
	case Text:
		s.applyText(d)
	case Marker:
		switch d.Key {
		case KindType:
			s.IsShell = true
		case KindMenuHidden:
			s.MenuHidden = true
		}
	case EntityName:
		s.Character(d.Scope).Name = d.Value
	case IDList:
		if d.Key == KindSerikoZOrder {
			s.ZOrder = slices.Clone(d.IDs)
		} else {
			s.StickyWindow = slices.Clone(d.IDs)
		}
	case DesktopAlignment:
		if d.Scope.Role == RoleGlobal {
			s.Alignment = ptr(d.Position)
		} else {
			s.Character(d.Scope).Alignment = ptr(d.Position)
		}
	case DefaultPosition:
		c := s.Character(d.Scope)
		switch d.Axis {
		case AxisX:
			c.DefaultX = ptr(d.Value)
		case AxisY:
			c.DefaultY = ptr(d.Value)
		case AxisLeft:
			c.DefaultLeft = ptr(d.Value)
		case AxisTop:
			c.DefaultTop = ptr(d.Value)
		}
	case BalloonOffset:
		c := s.Character(d.Scope)
		if d.Axis == AxisX {
			c.BalloonOffsetX = ptr(d.Value)
		} else {
			c.BalloonOffsetY = ptr(d.Value)
		}
	case BalloonAlignment:
		s.Character(d.Scope).BalloonAlignment = ptr(d.Position)
	case BalloonDontMove:
		s.Character(d.Scope).BalloonDontMove = ptr(d.Value)
	case MenuFontHeight:
		s.Menu.FontHeight = ptr(d.Value)
	case MenuColor:
		s.applyColor(d)
	case MenuAlignment:
		if d.Key == KindMenuBackgroundAlignment {
			s.Menu.BackgroundAlignment = ptr(d)
		} else {
			s.Menu.ForegroundAlignment = ptr(d)
		}
	case SidebarAlignment:
		s.Menu.SidebarAlignment = ptr(d)
	case BindGroupName:
		g := s.Character(d.Scope).bindGroup(d.Group)
		g.Category, g.Part, g.Thumbnail = d.Category, d.Part, d.Thumbnail
	case BindGroupDefault:
		s.Character(d.Scope).bindGroup(d.Group).Default = d.Value != 0
	case BindGroupAddID:
		g := s.Character(d.Scope).bindGroup(d.Group)
		g.AddIDs = append(g.AddIDs, d.IDs...)
	case BindOptionGroup:
		s.Character(d.Scope).BindOptions[d.Group] = &BindOption{
			Group:      d.Group,
			Category:   d.Category,
			MustSelect: d.MustSelect,
			Multiple:   d.Multiple,
		}
	case MenuItem:
		s.Character(d.Scope).MenuItems[d.Index] = MenuSlot{Entry: d.Entry}
	case MenuItemEx:
		s.Character(d.Scope).MenuItems[d.Index] = MenuSlot{Label: d.Label, Entry: d.Entry}
	case MenuVisibility:
		s.Character(d.Scope).Menu = ptr(d.Visibility)
	case AlphaFlag:
		if d.Key == KindSerikoUseSelfAlpha {
			s.UseSelfAlpha = ptr(d.Value)
		} else {
			s.PaintTransparentRegionBlack = ptr(d.Value)
		}
	}
}

func (s *Shell) applyText(d Text) {
	switch d.Key {
	case KindName:
		s.Name = d.Value
	case KindID:
		s.ID = d.Value
	case KindCraftman:
		s.Craftman = d.Value
	case KindCraftmanW:
		s.CraftmanW = d.Value
	case KindCraftmanURL:
		s.CraftmanURL = d.Value
	case KindHomeURL:
		s.HomeURL = d.Value
	case KindReadme:
		s.Readme = d.Value
	case KindSakuraName2:
		s.SakuraName2 = d.Value
	case KindMenuFontName:
		s.Menu.FontName = d.Value
	case KindMenuBackgroundBitmapFilename:
		s.Menu.BackgroundBitmap = d.Value
	case KindMenuForegroundBitmapFilename:
		s.Menu.ForegroundBitmap = d.Value
	case KindMenuSidebarBitmapFilename:
		s.Menu.SidebarBitmap = d.Value
	}
}

func (s *Shell) applyColor(d MenuColor) {
	var target **RGB
	var channel int
	switch k := d.Key; {
	case k >= KindMenuBackgroundFontColorR && k <= KindMenuBackgroundFontColorB:
		target, channel = &s.Menu.BackgroundFontColor, int(k-KindMenuBackgroundFontColorR)
	case k >= KindMenuForegroundFontColorR && k <= KindMenuForegroundFontColorB:
		target, channel = &s.Menu.ForegroundFontColor, int(k-KindMenuForegroundFontColorR)
	case k >= KindMenuSeparatorColorR && k <= KindMenuSeparatorColorB:
		target, channel = &s.Menu.SeparatorColor, int(k-KindMenuSeparatorColorR)
	case k >= KindMenuFrameColorR && k <= KindMenuFrameColorB:
		target, channel = &s.Menu.FrameColor, int(k-KindMenuFrameColorR)
	case k >= KindMenuDisableFontColorR && k <= KindMenuDisableFontColorB:
		target, channel = &s.Menu.DisableFontColor, int(k-KindMenuDisableFontColorR)
	default:
		return
	}
	if *target == nil {
		*target = &RGB{}
	}
	switch channel {
	case 0:
		(*target).R = d.Value
	case 1:
		(*target).G = d.Value
	case 2:
		(*target).B = d.Value
	}
}

func (c *Character) bindGroup(id AnimationID) *BindGroup {
	g, ok := c.BindGroups[id]
	if !ok {
		g = &BindGroup{ID: id}
		c.BindGroups[id] = g
	}
	return g
}
