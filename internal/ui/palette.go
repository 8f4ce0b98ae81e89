package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// damageKindHex maps damage kinds to their tooltip colour.
var damageKindHex = map[string]string{
	"fire":     "#FF6A00",
	"frost":    "#6AC8FF",
	"arcane":   "#B070FF",
	"nature":   "#5FD35F",
	"holy":     "#FFE27A",
	"shadow":   "#8A5CA8",
	"physical": "#C8C8C8",
}

// Palette resolves highlight colours for description fragments.
type Palette struct {
	kinds     map[string]tcell.Color
	highlight tcell.Color
}

// DefaultPalette builds the palette from the built-in damage kind colours.
func DefaultPalette() Palette {
	p := Palette{
		kinds:     make(map[string]tcell.Color, len(damageKindHex)),
		highlight: tcell.ColorYellow,
	}
	for kind, hex := range damageKindHex {
		p.kinds[kind] = MustParseHexColor(hex)
	}
	return p
}

// KindColor returns the colour for a damage kind, falling back to the
// generic highlight colour for unknown kinds.
func (p Palette) KindColor(kind string) tcell.Color {
	if c, ok := p.kinds[strings.ToLower(kind)]; ok {
		return c
	}
	return p.highlight
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
