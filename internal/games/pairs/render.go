package pairs

import (
	"fmt"

	"github.com/vovakirdan/tui-pairs/internal/core"
)

// Tile cell dimensions on screen, including the selection brackets.
const (
	tileCellW = 6
	tileCellH = 3
)

// Render draws the board, HUD, and overlays into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small for this board")
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize and the game will restart")
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "  PAUSED  ")
		dst.DrawTextCentered(dst.Height()/2+1, "Press P to resume")
		return
	}

	if g.signaled {
		g.renderGameOver(dst)
	}
}

// renderHUD draws the score line at the top of the screen.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  |  Level: %s  |  Score: %d  |  Moves: %d",
		g.Title(), g.level.Name, g.engine.Score(), g.engine.Moves())
	if t := g.engine.TimeLeft(); t >= 0 {
		hud += fmt.Sprintf("  |  Time: %d:%02d", t/60, t%60)
	}
	dst.DrawText(0, 0, hud)
}

// renderBoard draws the tile grid centered on screen.
func (g *Game) renderBoard(dst *core.Screen) {
	n := g.level.GridSize
	tiles := g.engine.Tiles()

	boardW := n * tileCellW
	boardH := n * tileCellH
	originX := (dst.Width() - boardW) / 2
	originY := 2 + (dst.Height()-2-boardH)/2

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			g.renderTile(dst, tiles[row*n+col],
				originX+col*tileCellW, originY+row*tileCellH,
				col == g.cursorX && row == g.cursorY)
		}
	}
}

// renderTile draws a single tile as a colored block with optional
// cursor brackets.
func (g *Game) renderTile(dst *core.Screen, t Tile, x, y int, underCursor bool) {
	var body string
	color := core.ColorGray

	switch {
	case t.Blocked && t.Revealed:
		body = "≡≡≡≡"
	case t.Matched:
		body = "████"
		color = t.Color
	case t.Revealed:
		body = "████"
		color = t.Color
	default:
		body = "░░░░"
	}

	for dy := 0; dy < 2; dy++ {
		dst.DrawTextColored(x+1, y+dy, body, color)
	}

	if underCursor {
		dst.SetCell(x, y, '▶', core.ColorBrightYellow)
		dst.SetCell(x+len([]rune(body))+1, y, '◀', core.ColorBrightYellow)
	}
}

// renderGameOver draws the results overlay once the finished signal fired.
func (g *Game) renderGameOver(dst *core.Screen) {
	y := dst.Height() - 3

	var headline string
	switch {
	case g.engine.Won() && g.mode == ModeTimed:
		headline = "BOARD CLEARED! Entering the safari..."
	case g.engine.Won():
		headline = "BOARD CLEARED!"
	default:
		headline = "TIME'S UP!"
	}

	dst.DrawTextCentered(y, headline)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Final score: %d in %d moves", g.engine.Score(), g.engine.Moves()))
	dst.DrawTextCentered(y+2, "R: Restart  |  B/Esc: Menu  |  Q: Quit")
}
