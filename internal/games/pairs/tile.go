// Package pairs implements the tile-matching memory game in classic
// (untimed) and timed modes. The board hides color pairs behind
// face-down tiles; flipping a matching pair scores and stays revealed,
// a mismatch flips back after a short delay.
package pairs

import "github.com/vovakirdan/tui-pairs/internal/core"

// Tile is one cell of the board. The ID is a stable position index for
// the presentation layer; game logic addresses tiles by board index.
type Tile struct {
	ID       int
	Color    core.Color
	Revealed bool
	Matched  bool
	Blocked  bool
}

// Palette is the fixed set of pair colors. Boards that need more pairs
// than the palette holds reuse colors cyclically; only color equality
// within a single board matters, so reuse is intentional.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorBrightWhite,
}

// BlockedColor is the sentinel color of the blocked filler tile.
// It never appears in Palette, so color equality alone can never
// pair a blocked tile with a real one.
const BlockedColor = core.ColorGray
