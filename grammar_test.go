package descript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func repeat(r MenuRepeat) *MenuRepeat { return &r }

func sidebarRepeatY() *SidebarRepeat {
	r := SidebarRepeatY
	return &r
}

var directiveTests = []struct {
	line string
	want Directive
	kind Kind
}{
	// identity
	{"charset,Shift_JIS", CharsetDecl{Key: KindCharset, Charset: CharsetShiftJIS}, KindCharset},
	{"charset,ISO-2022-JP", CharsetDecl{Key: KindCharset, Charset: CharsetISO2022JP}, KindCharset},
	{"name,master", Text{Key: KindName, Value: "master"}, KindName},
	{"id,master_shell", Text{Key: KindID, Value: "master_shell"}, KindID},
	{"type,shell", Marker{Key: KindType}, KindType},
	{"craftman,ukadog", Text{Key: KindCraftman, Value: "ukadog"}, KindCraftman},
	{"craftmanw,うか犬", Text{Key: KindCraftmanW, Value: "うか犬"}, KindCraftmanW},
	{"craftmanurl,http://example.com/a,b", Text{Key: KindCraftmanURL, Value: "http://example.com/a,b"}, KindCraftmanURL},
	{"homeurl,http://example.com/", Text{Key: KindHomeURL, Value: "http://example.com/"}, KindHomeURL},
	{"readme,readme.txt", Text{Key: KindReadme, Value: "readme.txt"}, KindReadme},
	{"readme.charset,UTF-8", CharsetDecl{Key: KindReadmeCharset, Charset: CharsetUTF8}, KindReadmeCharset},
	{"menu,hidden", Marker{Key: KindMenuHidden}, KindMenuHidden},
	{"sakura.name,Sakura", EntityName{Scope: Sakura, Value: "Sakura"}, KindSakuraName},
	{"sakura.name2,Sakura2", Text{Key: KindSakuraName2, Value: "Sakura2"}, KindSakuraName2},
	{"kero.name,Unyuu", EntityName{Scope: Kero, Value: "Unyuu"}, KindKeroName},
	{"char2.name,Third", EntityName{Scope: Char(2), Value: "Third"}, KindCharName},

	// representation
	{"seriko.zorder,1,0", IDList{Key: KindSerikoZOrder, IDs: []uint32{1, 0}}, KindSerikoZOrder},
	{"seriko.sticky-window,0,1,2", IDList{Key: KindSerikoStickyWindow, IDs: []uint32{0, 1, 2}}, KindSerikoStickyWindow},
	{"seriko.alignmenttodesktop,free", DesktopAlignment{Scope: Global, Position: SurfaceFree}, KindSerikoAlignmentToDesktop},
	{"sakura.seriko.alignmenttodesktop,top", DesktopAlignment{Scope: Sakura, Position: SurfaceTop}, KindSakuraSerikoAlignmentToDesktop},
	{"kero.seriko.alignmenttodesktop,bottom", DesktopAlignment{Scope: Kero, Position: SurfaceBottom}, KindKeroSerikoAlignmentToDesktop},
	{"char3.seriko.alignmenttodesktop,free", DesktopAlignment{Scope: Char(3), Position: SurfaceFree}, KindCharSerikoAlignmentToDesktop},
	{"sakura.defaultx,-100", DefaultPosition{Scope: Sakura, Axis: AxisX, Value: -100}, KindSakuraDefaultX},
	{"kero.defaulty,20", DefaultPosition{Scope: Kero, Axis: AxisY, Value: 20}, KindKeroDefaultY},
	{"char4.defaultleft,300", DefaultPosition{Scope: Char(4), Axis: AxisLeft, Value: 300}, KindCharDefaultLeft},
	{"sakura.defaulttop,0", DefaultPosition{Scope: Sakura, Axis: AxisTop, Value: 0}, KindSakuraDefaultTop},
	{"kero.defaultx,5", DefaultPosition{Scope: Kero, Axis: AxisX, Value: 5}, KindKeroDefaultX},
	{"char2.defaultx,640", DefaultPosition{Scope: Char(2), Axis: AxisX, Value: 640}, KindCharDefaultX},
	{"sakura.defaulty,-8", DefaultPosition{Scope: Sakura, Axis: AxisY, Value: -8}, KindSakuraDefaultY},
	{"char2.defaulty,480", DefaultPosition{Scope: Char(2), Axis: AxisY, Value: 480}, KindCharDefaultY},
	{"sakura.defaultleft,12", DefaultPosition{Scope: Sakura, Axis: AxisLeft, Value: 12}, KindSakuraDefaultLeft},
	{"kero.defaultleft,-12", DefaultPosition{Scope: Kero, Axis: AxisLeft, Value: -12}, KindKeroDefaultLeft},
	{"kero.defaulttop,33", DefaultPosition{Scope: Kero, Axis: AxisTop, Value: 33}, KindKeroDefaultTop},
	{"char6.defaulttop,-1", DefaultPosition{Scope: Char(6), Axis: AxisTop, Value: -1}, KindCharDefaultTop},

	// balloon
	{"sakura.balloon.offsetx,-20", BalloonOffset{Scope: Sakura, Axis: AxisX, Value: -20}, KindSakuraBalloonOffsetX},
	{"kero.balloon.offsety,10", BalloonOffset{Scope: Kero, Axis: AxisY, Value: 10}, KindKeroBalloonOffsetY},
	{"sakura.balloon.offsety,4", BalloonOffset{Scope: Sakura, Axis: AxisY, Value: 4}, KindSakuraBalloonOffsetY},
	{"kero.balloon.offsetx,-6", BalloonOffset{Scope: Kero, Axis: AxisX, Value: -6}, KindKeroBalloonOffsetX},
	{"sakura.balloon.alignment,none", BalloonAlignment{Scope: Sakura, Position: BalloonNone}, KindSakuraBalloonAlignment},
	{"kero.balloon.alignment,right", BalloonAlignment{Scope: Kero, Position: BalloonRight}, KindKeroBalloonAlignment},
	{"sakura.balloon.dontmove,0", BalloonDontMove{Scope: Sakura, Value: 0}, KindSakuraBalloonDontMove},
	{"kero.balloon.dontmove,1", BalloonDontMove{Scope: Kero, Value: 1}, KindKeroBalloonDontMove},
	{"char7.balloon.dontmove,1", BalloonDontMove{Scope: Char(7), Value: 1}, KindCharBalloonDontMove},

	// menu
	{"menu.font.name,MS UI Gothic", Text{Key: KindMenuFontName, Value: "MS UI Gothic"}, KindMenuFontName},
	{"menu.font.height,12", MenuFontHeight{Value: 12}, KindMenuFontHeight},
	{"menu.background.bitmap.filename,bg.png", Text{Key: KindMenuBackgroundBitmapFilename, Value: "bg.png"}, KindMenuBackgroundBitmapFilename},
	{"menu.foreground.bitmap.filename,fg.png", Text{Key: KindMenuForegroundBitmapFilename, Value: "fg.png"}, KindMenuForegroundBitmapFilename},
	{"menu.sidebar.bitmap.filename,side.png", Text{Key: KindMenuSidebarBitmapFilename, Value: "side.png"}, KindMenuSidebarBitmapFilename},
	{"menu.background.font.color.r,255", MenuColor{Key: KindMenuBackgroundFontColorR, Value: 255}, KindMenuBackgroundFontColorR},
	{"menu.foreground.font.color.g,128", MenuColor{Key: KindMenuForegroundFontColorG, Value: 128}, KindMenuForegroundFontColorG},
	{"menu.separator.color.b,0", MenuColor{Key: KindMenuSeparatorColorB, Value: 0}, KindMenuSeparatorColorB},
	{"menu.frame.color.r,1", MenuColor{Key: KindMenuFrameColorR, Value: 1}, KindMenuFrameColorR},
	{"menu.disable.font.color.g,2", MenuColor{Key: KindMenuDisableFontColorG, Value: 2}, KindMenuDisableFontColorG},
	{"menu.background.font.color.g,10", MenuColor{Key: KindMenuBackgroundFontColorG, Value: 10}, KindMenuBackgroundFontColorG},
	{"menu.background.font.color.b,20", MenuColor{Key: KindMenuBackgroundFontColorB, Value: 20}, KindMenuBackgroundFontColorB},
	{"menu.foreground.font.color.r,30", MenuColor{Key: KindMenuForegroundFontColorR, Value: 30}, KindMenuForegroundFontColorR},
	{"menu.foreground.font.color.b,40", MenuColor{Key: KindMenuForegroundFontColorB, Value: 40}, KindMenuForegroundFontColorB},
	{"menu.separator.color.r,50", MenuColor{Key: KindMenuSeparatorColorR, Value: 50}, KindMenuSeparatorColorR},
	{"menu.separator.color.g,60", MenuColor{Key: KindMenuSeparatorColorG, Value: 60}, KindMenuSeparatorColorG},
	{"menu.frame.color.g,70", MenuColor{Key: KindMenuFrameColorG, Value: 70}, KindMenuFrameColorG},
	{"menu.frame.color.b,80", MenuColor{Key: KindMenuFrameColorB, Value: 80}, KindMenuFrameColorB},
	{"menu.disable.font.color.r,90", MenuColor{Key: KindMenuDisableFontColorR, Value: 90}, KindMenuDisableFontColorR},
	{"menu.disable.font.color.b,255", MenuColor{Key: KindMenuDisableFontColorB, Value: 255}, KindMenuDisableFontColorB},
	{"menu.background.alignment,lefttop", MenuAlignment{Key: KindMenuBackgroundAlignment, Base: MenuLeftTop}, KindMenuBackgroundAlignment},
	{
		"menu.foreground.alignment,centerbottom+repeat-x+repeat-y",
		MenuAlignment{Key: KindMenuForegroundAlignment, Base: MenuCenterBottom, Repeat: repeat(RepeatX), Repeat2: repeat(RepeatY)},
		KindMenuForegroundAlignment,
	},
	{"menu.sidebar.alignment,bottom+repeat-y", SidebarAlignment{Base: SidebarBottom, Repeat: sidebarRepeatY()}, KindMenuSidebarAlignment},
	{"menu.sidebar.alignment,top", SidebarAlignment{Base: SidebarTop}, KindMenuSidebarAlignment},

	// binding
	{
		"char5.bindgroup3.name,Cat,Part,Thumb",
		BindGroupName{Scope: Char(5), Group: 3, Category: "Cat", Part: "Part", Thumbnail: strPtr("Thumb")},
		KindCharBindGroupName,
	},
	{"sakura.bindgroup0.name,Hat,Red", BindGroupName{Scope: Sakura, Group: 0, Category: "Hat", Part: "Red"}, KindSakuraBindGroupName},
	{"kero.bindgroup12.default,1", BindGroupDefault{Scope: Kero, Group: 12, Value: 1}, KindKeroBindGroupDefault},
	{"sakura.bindgroup1.addid,2,3", BindGroupAddID{Scope: Sakura, Group: 1, IDs: []uint32{2, 3}}, KindSakuraBindGroupAddID},
	{
		"sakura.bindoption0.group,Hat,mustselect+multiple",
		BindOptionGroup{Scope: Sakura, Group: 0, Category: "Hat", MustSelect: true, Multiple: true},
		KindSakuraBindOptionGroup,
	},
	{"char1.bindoption2.group,Arm,multiple", BindOptionGroup{Scope: Char(1), Group: 2, Category: "Arm", Multiple: true}, KindCharBindOptionGroup},
	{"sakura.menuitem0,3", MenuItem{Scope: Sakura, Index: 0, Entry: GroupEntry(3)}, KindSakuraMenuItem},
	{"kero.menuitem1,-", MenuItem{Scope: Kero, Index: 1, Entry: SeparatorEntry()}, KindKeroMenuItem},
	{"sakura.menuitemex2,Hats,4", MenuItemEx{Scope: Sakura, Index: 2, Label: "Hats", Entry: GroupEntry(4)}, KindSakuraMenuItemEx},
	{"char9.menuitemex0,Sep,-", MenuItemEx{Scope: Char(9), Index: 0, Label: "Sep", Entry: SeparatorEntry()}, KindCharMenuItemEx},
	{"sakura.menu,hidden", MenuVisibility{Scope: Sakura, Visibility: VisibilityHidden}, KindSakuraMenu},
	{"char0.menu,auto", MenuVisibility{Scope: Char(0), Visibility: VisibilityAuto}, KindCharMenu},
	{"sakura.bindgroup8.default,0", BindGroupDefault{Scope: Sakura, Group: 8, Value: 0}, KindSakuraBindGroupDefault},
	{"kero.bindgroup2.name,Neck,Ribbon", BindGroupName{Scope: Kero, Group: 2, Category: "Neck", Part: "Ribbon"}, KindKeroBindGroupName},
	{"kero.bindgroup2.addid,5", BindGroupAddID{Scope: Kero, Group: 2, IDs: []uint32{5}}, KindKeroBindGroupAddID},
	{"kero.bindoption1.group,Neck,mustselect", BindOptionGroup{Scope: Kero, Group: 1, Category: "Neck", MustSelect: true}, KindKeroBindOptionGroup},
	{"kero.menuitemex3,Neck,2", MenuItemEx{Scope: Kero, Index: 3, Label: "Neck", Entry: GroupEntry(2)}, KindKeroMenuItemEx},
	{"kero.menu,hidden", MenuVisibility{Scope: Kero, Visibility: VisibilityHidden}, KindKeroMenu},
	{"char3.bindgroup6.default,1", BindGroupDefault{Scope: Char(3), Group: 6, Value: 1}, KindCharBindGroupDefault},
	{"char3.bindgroup6.addid,7,8,9", BindGroupAddID{Scope: Char(3), Group: 6, IDs: []uint32{7, 8, 9}}, KindCharBindGroupAddID},
	{"char3.menuitem4,-", MenuItem{Scope: Char(3), Index: 4, Entry: SeparatorEntry()}, KindCharMenuItem},

	// alpha
	{"seriko.paint_transparent_region_black,0", AlphaFlag{Key: KindSerikoPaintTransparentRegionBlack, Value: 0}, KindSerikoPaintTransparentRegionBlack},
	{"seriko.use_self_alpha,1", AlphaFlag{Key: KindSerikoUseSelfAlpha, Value: 1}, KindSerikoUseSelfAlpha},
}

func TestParseDirective(t *testing.T) {
	for _, tt := range directiveTests {
		t.Run(tt.line, func(t *testing.T) {
			d, rest, ok := parseDirective(tt.line + "\r\n")
			require.True(t, ok, "no rule matched")
			assert.Equal(t, "\r\n", rest)
			if diff := cmp.Diff(tt.want, d); diff != "" {
				t.Errorf("directive mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.kind, d.Kind())
			assert.Equal(t, tt.line, d.String(), "canonical form")
		})
	}
}

func TestParseDirective_Normalizes(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"sakura.balloon.dontmove,true", "sakura.balloon.dontmove,1"},
		{"sakura.defaultx,007", "sakura.defaultx,7"},
		{"sakura.bindoption0.group,Hat,multiple+mustselect", "sakura.bindoption0.group,Hat,mustselect+multiple"},
		{"kero.bindoption0.group,Hat,multiple+multiple", "kero.bindoption0.group,Hat,multiple"},
		{"menu.background.alignment,righttop+repeat-y+repeat-y", "menu.background.alignment,righttop+repeat-y+repeat-y"},
	}
	for _, tt := range tests {
		d, _, ok := parseDirective(tt.line)
		require.True(t, ok, tt.line)
		assert.Equal(t, tt.want, d.String())
	}
}

func TestParseDirective_Rejects(t *testing.T) {
	for _, line := range []string{
		"seriko.use_self_alpha,",
		"sakura.balloon.offsetx,",
		"charset,",
		"type,ghost",
		"char.name,x",
		"char1.balloon.offsetx,5",
		"char1.balloon.alignment,left",
		"sakura.balloon.alignment,center",
		"sakura.bindgroup1.name,Cat",
		"sakura.bindoption1.group,Cat,always",
		"sakura.menu,visible",
		"menu.font.height,-1",
		"menu.background.font.color.r,256",
		"menu.sidebar.alignment,left",
		"seriko.zorder,",
		"",
	} {
		_, rest, ok := parseDirective(line)
		assert.False(t, ok, "%q should not match", line)
		assert.Equal(t, line, rest, "mismatch must not consume input")
	}
}

func TestBindGroupName_Thumbnail(t *testing.T) {
	d, _, ok := parseDirective("char5.bindgroup3.name,Cat,Part")
	require.True(t, ok)
	g := d.(BindGroupName)
	assert.Equal(t, Char(5), g.Scope)
	assert.EqualValues(t, 3, g.Group)
	assert.Nil(t, g.Thumbnail)
}

func TestMenuItem_ExIsNotShadowed(t *testing.T) {
	d, _, ok := parseDirective("sakura.menuitemex0,Label,1")
	require.True(t, ok)
	assert.IsType(t, MenuItemEx{}, d)
}

func TestGrammar_NamespacesCoverKinds(t *testing.T) {
	seen := map[Kind]bool{}
	for _, tt := range directiveTests {
		seen[tt.kind] = true
		assert.Equal(t, tt.kind.Namespace(), tt.want.Kind().Namespace())
	}
	for _, k := range Kinds() {
		assert.NotEqual(t, namespaceUnknown, k.Namespace(), k.String())
	}
	assert.Equal(t, namespaceUnknown, KindInvalid.Namespace())
	for _, k := range Kinds() {
		assert.True(t, seen[k], "no parse case for %s", k)
	}
}

func TestGrammar_TablesFollowNamespaceOrder(t *testing.T) {
	require.Len(t, grammar, int(namespaceUnknown))
	for _, tt := range directiveTests {
		for i, table := range grammar {
			for _, r := range table {
				if d, _, ok := r(tt.line); ok {
					assert.Equal(t, Namespace(i), d.Kind().Namespace(), tt.line)
				}
			}
		}
	}
}
