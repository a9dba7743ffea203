// Package safari is the animal-matching follow-up screen reached after
// winning a timed pairs session. It is a placeholder: it renders a
// teaser and waits, with no game logic of its own.
package safari

import (
	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

// Game is the animal safari stub.
type Game struct {
	screenW int
	screenH int
	tick    uint64
}

// New creates the safari stub.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("safari", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "safari"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Animal Safari"
}

// Reset initializes the stub.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
}

// Step advances the stub by one tick. There is nothing to simulate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	return core.StepResult{State: g.State()}
}

// Render draws the teaser screen.
func (g *Game) Render(dst *core.Screen) {
	mid := dst.Height() / 2

	dst.DrawTextCentered(mid-2, "A N I M A L   S A F A R I")
	dst.DrawTextCentered(mid, "[lion]  [zebra]  [panda]  [koala]")
	dst.DrawTextCentered(mid+2, "The animal matching round is coming soon.")
	dst.DrawTextCentered(mid+4, "B/Esc: Menu  |  Q: Quit")
}

// State returns the stub's state. It never ends on its own.
func (g *Game) State() core.GameState {
	return core.GameState{TimeLeft: -1}
}
