package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/spellbook/internal/ability"
	"github.com/samdwyer/spellbook/internal/describe"
	"github.com/samdwyer/spellbook/internal/gamedata"
)

// gridCanvas records drawn cells in memory.
type gridCanvas struct {
	w, h   int
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
}

func newGrid(w, h int) *gridCanvas {
	return &gridCanvas{w: w, h: h, cells: map[[2]int]rune{}, styles: map[[2]int]tcell.Style{}}
}

func (g *gridCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	g.cells[[2]int{x, y}] = r
	g.styles[[2]int{x, y}] = style
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func (g *gridCanvas) row(y, x0, x1 int) string {
	var b strings.Builder
	for x := x0; x < x1; x++ {
		if r, ok := g.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func testLoadout(t *testing.T) *ability.Loadout {
	t.Helper()
	store := gamedata.NewStore([]gamedata.AbilityDefinition{
		{Identity: "SolarBurnSpell", Name: "Solar Burn", DescriptionTemplate: []string{"x"}},
		{Identity: "FlameDashSpell", Name: "Flame Dash", MaxStacks: 3, DescriptionTemplate: []string{"x"}},
	})
	l, err := ability.NewLoadout(store,
		ability.Variant{Identity: "SolarBurnSpell", Cooldown: 8 * time.Second, GlobalCooldown: 1500 * time.Millisecond},
		ability.Variant{Identity: "FlameDashSpell", StackRecharge: 10 * time.Second},
	)
	require.NoError(t, err)
	return l
}

func TestCountdownLabel(t *testing.T) {
	l := testLoadout(t)
	solar := l.Slot(0)

	_, ok := CountdownLabel(solar)
	assert.False(t, ok)

	require.NoError(t, solar.Activate())
	label, ok := CountdownLabel(solar)
	require.True(t, ok)
	assert.Equal(t, "2", label, "global cooldown of 1.5s is binding")

	solar.Advance(1500 * time.Millisecond)
	label, _ = CountdownLabel(solar)
	assert.Equal(t, "7", label)

	solar.Advance(6300 * time.Millisecond)
	label, _ = CountdownLabel(solar)
	assert.Equal(t, "1", label)
}

func TestRenderBar(t *testing.T) {
	l := testLoadout(t)
	require.NoError(t, l.Activate(0))
	require.NoError(t, l.Activate(1))
	l.Tick(1500 * time.Millisecond)

	grid := newGrid(80, 10)
	NewRenderer(grid).RenderBar(l, 2, 0)

	assert.Equal(t, "1 Solar Burn", strings.TrimSpace(grid.row(2, 0, SlotWidth)))
	assert.Equal(t, "2 Flame Dash", strings.TrimSpace(grid.row(2, SlotWidth, 2*SlotWidth)))

	gauge := grid.row(3, 0, SlotWidth-1)
	assert.Contains(t, gauge, "7")
	assert.Contains(t, gauge, "▓")
	assert.Contains(t, gauge, "░")

	// Only the stacked slot has a stack row.
	assert.Equal(t, "", strings.TrimSpace(grid.row(4, 0, SlotWidth)))
	assert.True(t, strings.HasPrefix(grid.row(4, SlotWidth, 2*SlotWidth), "x2 "))

	fg, _, _ := grid.styles[[2]int{0, 2}].Decompose()
	assert.Equal(t, tcell.ColorDarkGray, fg, "unavailable slot is dimmed")
}

func TestRenderDescriptionWraps(t *testing.T) {
	def := &gamedata.AbilityDefinition{
		Identity:            "SolarBurnSpell",
		Name:                "Solar Burn",
		Damages:             []int{120},
		DamageKinds:         []string{"fire"},
		DescriptionTemplate: []string{"Deals {damage:0} {kind:0} damage to every enemy nearby."},
	}
	lines, err := describe.Render(def)
	require.NoError(t, err)

	grid := newGrid(40, 10)
	rows := NewRenderer(grid).RenderDescription(def.Name, lines, 0, 0, 20)

	assert.Equal(t, 4, rows)
	assert.Equal(t, "Solar Burn", strings.TrimSpace(grid.row(0, 0, 20)))
	assert.Equal(t, "Deals 120 fire", strings.TrimSpace(grid.row(1, 0, 20)))
	assert.Equal(t, "damage to every", strings.TrimSpace(grid.row(2, 0, 20)))
	assert.Equal(t, "enemy nearby.", strings.TrimSpace(grid.row(3, 0, 20)))

	fg, _, _ := grid.styles[[2]int{6, 1}].Decompose()
	assert.Equal(t, MustParseHexColor("#FF6A00"), fg)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}

	c, err := ParseHexColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0x10, 0x20, 0x30), c)
}

func TestPaletteKindColor(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, MustParseHexColor("#6AC8FF"), p.KindColor("Frost"))
	assert.Equal(t, tcell.ColorYellow, p.KindColor("unheard-of"))
}

func TestSplitKeepSpaces(t *testing.T) {
	assert.Equal(t, []string{"Deals", " ", "120", "  ", "x"}, splitKeepSpaces("Deals 120  x"))
	assert.Equal(t, []string{" ", "a"}, splitKeepSpaces(" a"))
	assert.Nil(t, splitKeepSpaces(""))
}
