package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/spellbook/internal/ability"
	"github.com/samdwyer/spellbook/internal/describe"
)

// SlotWidth is the number of columns one ability slot occupies on the bar.
const SlotWidth = 14

// BarHeight is the number of rows the ability bar occupies.
const BarHeight = 3

// Renderer handles drawing the ability bar and tooltips.
type Renderer struct {
	canvas  Canvas
	palette Palette
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas, palette: DefaultPalette()}
}

// RenderBar draws every slot of the loadout starting at row y. The slot at
// selected gets a marker.
func (r *Renderer) RenderBar(l *ability.Loadout, y, selected int) {
	for i, inst := range l.Slots() {
		r.renderSlot(inst, i, i*SlotWidth, y, i == selected)
	}
}

// renderSlot draws a single slot: name, cooldown gauge and stack row.
func (r *Renderer) renderSlot(inst *ability.Instance, index, x, y int, selected bool) {
	w := SlotWidth - 1

	nameStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if !inst.IsAvailable() {
		nameStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	if selected {
		nameStyle = nameStyle.Underline(true)
	}
	r.drawText(x, y, w, strconv.Itoa(index+1)+" "+inst.Name(), nameStyle)

	// Cooldown gauge, filled by the remaining fraction of the binding gate.
	gaugeStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	if inst.IsUnderGlobalCooldown() {
		gaugeStyle = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	}
	r.drawGauge(x, y+1, w, inst.Progress(), '▓', '░', gaugeStyle)
	if label, ok := CountdownLabel(inst); ok {
		lx := x + (w-len(label))/2
		r.drawText(lx, y+1, len(label), label, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}

	if !inst.HasStacks() {
		return
	}
	stackStyle := tcell.StyleDefault.Foreground(tcell.ColorOrange)
	if inst.CurrentStacks() == 0 {
		stackStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	count := "x" + strconv.Itoa(inst.CurrentStacks())
	r.drawText(x, y+2, len(count), count, stackStyle)
	r.drawGauge(x+len(count)+1, y+2, w-len(count)-1, inst.RechargeProgress(), '=', '-', stackStyle)
}

// CountdownLabel returns the whole seconds shown over a cooling slot,
// counting down to 1. It reports false when no gate is running.
func CountdownLabel(inst *ability.Instance) (string, bool) {
	if inst.Progress() == 0 {
		return "", false
	}
	return strconv.Itoa(int(inst.Remaining().Seconds()) + 1), true
}

// RenderDescription draws a tooltip with the title and the rendered lines
// at (x, y), wrapping at width. Highlighted fragments are coloured by their
// damage kind. It returns the number of rows used.
func (r *Renderer) RenderDescription(title string, lines []describe.Line, x, y, width int) int {
	r.drawText(x, y, width, title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	row := 1
	for _, line := range lines {
		row += r.drawWrapped(line, x, y+row, width)
	}
	return row
}

// drawWrapped lays out one description line word by word.
func (r *Renderer) drawWrapped(line describe.Line, x, y, width int) int {
	col, rows := 0, 1
	for _, frag := range line {
		style := r.fragmentStyle(frag)
		for _, word := range splitKeepSpaces(frag.Text) {
			n := len([]rune(word))
			if col > 0 && col+n > width && strings.TrimSpace(word) != "" {
				col = 0
				rows++
			}
			if col == 0 && strings.TrimSpace(word) == "" {
				continue
			}
			for _, ch := range word {
				if col >= width {
					col = 0
					rows++
				}
				r.canvas.SetContent(x+col, y+rows-1, ch, style)
				col++
			}
		}
	}
	return rows
}

func (r *Renderer) fragmentStyle(frag describe.Fragment) tcell.Style {
	if !frag.Highlight {
		return tcell.StyleDefault.Foreground(tcell.ColorSilver)
	}
	style := tcell.StyleDefault.Bold(true)
	if frag.DamageKind != "" {
		return style.Foreground(r.palette.KindColor(frag.DamageKind))
	}
	return style.Foreground(tcell.ColorYellow)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	width, _ := r.canvas.Size()
	r.drawText(0, y, width, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawText(x, y, limit int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= limit {
			return
		}
		r.canvas.SetContent(x+i, y, ch, style)
		i++
	}
}

func (r *Renderer) drawGauge(x, y, w int, fraction float64, full, empty rune, style tcell.Style) {
	if w <= 0 {
		return
	}
	filled := int(fraction*float64(w) + 0.5)
	for i := 0; i < w; i++ {
		ch := empty
		if i < filled {
			ch = full
		}
		r.canvas.SetContent(x+i, y, ch, style)
	}
}

// splitKeepSpaces splits s into words, keeping each run of spaces as its
// own element so layout can drop them at line starts.
func splitKeepSpaces(s string) []string {
	var parts []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || (s[i] == ' ') != (s[start] == ' ') {
			parts = append(parts, s[start:i])
			start = i
		}
	}
	return parts
}
