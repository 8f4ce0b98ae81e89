package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/spellbook/internal/ability"
	"github.com/samdwyer/spellbook/internal/ui"
)

// display is the terminal surface the game draws on and reads input from.
// *ui.Screen implements it.
type display interface {
	ui.Canvas
	Clear()
	Show()
	Sync()
	PollEvent() tcell.Event
	Close()
}

// Game holds the entire game state.
type Game struct {
	screen   display
	renderer *ui.Renderer
	loadout  *ability.Loadout
	tick     time.Duration
	state    State
	selected int
	message  string
	running  bool
}

// New creates a new game instance on a fresh terminal screen.
func New(loadout *ability.Loadout, cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, loadout, cfg), nil
}

func newGame(screen display, loadout *ability.Loadout, cfg Config) *Game {
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		loadout:  loadout,
		tick:     tick,
		state:    StateBar,
		message:  "1-9 cast, tab select, d describe, q quit",
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	events := make(chan tcell.Event)
	go g.pumpEvents(ctx, events)

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	last := time.Now()
	g.render()

	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			g.step(now.Sub(last))
			last = now
		}
		g.render()
	}
	return nil
}

// pumpEvents forwards terminal events until the screen is closed.
func (g *Game) pumpEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// step advances every ability by the elapsed time.
func (g *Game) step(dt time.Duration) {
	g.loadout.Tick(dt)
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKey processes keyboard input.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyTab:
		g.selectNext()
	case tcell.KeyRune:
		g.handleRune(ctx, r)
	}
}

func (g *Game) handleRune(ctx context.Context, r rune) {
	switch {
	case r >= '1' && r <= '9':
		slot := int(r - '1')
		g.selected = slot
		g.activate(ctx, slot)
	case r == 'd' || r == 'D':
		g.toggleTooltip()
	case r == 'q' || r == 'Q':
		g.running = false
	}
}

func (g *Game) selectNext() {
	if g.loadout.Len() == 0 {
		return
	}
	g.selected = (g.selected + 1) % g.loadout.Len()
}

func (g *Game) toggleTooltip() {
	if g.state == StateTooltip {
		g.state = StateBar
	} else {
		g.state = StateTooltip
	}
}

// render draws the current frame.
func (g *Game) render() {
	g.screen.Clear()

	g.renderer.RenderMessage(g.message, 0)
	g.renderer.RenderBar(g.loadout, 2, g.selected)

	if g.state == StateTooltip {
		if inst := g.loadout.Slot(g.selected); inst != nil {
			lines, err := inst.RenderDescription()
			if err != nil {
				g.renderer.RenderMessage("description unavailable: "+err.Error(), 3+ui.BarHeight)
			} else {
				g.renderer.RenderDescription(inst.Name(), lines, 0, 3+ui.BarHeight, 48)
			}
		}
	}

	g.screen.Show()
}
