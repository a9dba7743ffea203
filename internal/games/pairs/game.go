package pairs

import (
	"math/rand"

	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // No clock, mismatches cost points
	ModeTimed   Mode = "timed"   // Per-level countdown, advances to safari on a win
)

// Package-level selector state, set by the CLI/menu before game creation.
var (
	configPath    string
	selectedLevel LevelID
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevel selects the level for the next session. An empty or unknown
// ID falls back to Easy.
func SetLevel(id LevelID) {
	selectedLevel = id
}

// Game adapts the match engine to the platform's Game interface and adds
// cursor-driven board navigation on top of it.
type Game struct {
	mode   Mode
	cfg    config.PairsConfig
	rng    *rand.Rand
	engine *Engine
	level  Level

	cursorX int
	cursorY int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	// Set by the engine's completion callback; drives GameOver reporting
	// and, for a won timed session, the advance to the safari screen.
	signaled bool
}

// New creates a classic (untimed) pairs game.
func New() *Game {
	cfg, err := config.LoadPairs(configPath)
	if err != nil {
		cfg = config.DefaultPairsConfig()
	}
	return &Game{mode: ModeClassic, cfg: cfg}
}

// NewTimed creates a timed pairs game.
func NewTimed() *Game {
	cfg, err := config.LoadPairs(configPath)
	if err != nil {
		cfg = config.DefaultPairsConfig()
	}
	return &Game{mode: ModeTimed, cfg: cfg}
}

func init() {
	registry.Register("pairs", func() registry.Game {
		return New()
	})
	registry.Register("pairs_timed", func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "pairs_timed"
	}
	return "pairs"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Pairs (Timed)"
	}
	return "Pairs"
}

// LevelName returns the name of the level being played.
func (g *Game) LevelName() string {
	return string(g.level.ID)
}

// Reset starts a fresh session. Also used for restart after game over.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.signaled = false
	g.cursorX = 0
	g.cursorY = 0

	level := GetLevel(selectedLevel)
	if level == nil {
		level = GetLevel(LevelEasy)
	}
	g.level = *level
	g.level.TimeLimit = g.cfg.TimeLimitFor(string(g.level.ID), g.level.TimeLimit)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	g.engine = NewEngine(Rules{
		MatchReward:     g.cfg.Scoring.MatchReward,
		MismatchPenalty: g.cfg.Scoring.MismatchPenalty,
		ApplyPenalty:    g.mode == ModeClassic || g.cfg.Scoring.PenaltyInTimed,
		RevertDelay:     secsToTicks(g.cfg.Delays.MismatchRevertSecs, tickRate),
		FinishDelay:     secsToTicks(g.cfg.Delays.CompletionSecs, tickRate),
		TicksPerSecond:  tickRate,
		Countdown:       g.mode == ModeTimed,
	})
	g.engine.SetOnFinished(func() {
		g.signaled = true
	})
	g.engine.Setup(g.level, g.rng)

	g.checkScreenSize()
}

// secsToTicks converts a wall-clock delay to simulation ticks, rounding
// up so short delays never collapse to zero.
func secsToTicks(secs float64, tickRate int) int {
	ticks := int(secs * float64(tickRate))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.level.GridSize*tileCellW + 4
	minH := g.level.GridSize*tileCellH + 5 // HUD + margins
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.Finished() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleCursor(in)

	if in.Has(core.ActionFlip) && !g.engine.Finished() {
		g.engine.Tap(g.cursorY*g.level.GridSize + g.cursorX)
	}

	g.engine.Advance()

	return core.StepResult{State: g.State()}
}

// handleCursor moves the board cursor, clamped to the grid.
func (g *Game) handleCursor(in core.InputFrame) {
	n := g.level.GridSize
	if in.Has(core.ActionUp) {
		g.cursorY = core.Clamp(g.cursorY-1, 0, n-1)
	}
	if in.Has(core.ActionDown) {
		g.cursorY = core.Clamp(g.cursorY+1, 0, n-1)
	}
	if in.Has(core.ActionLeft) {
		g.cursorX = core.Clamp(g.cursorX-1, 0, n-1)
	}
	if in.Has(core.ActionRight) {
		g.cursorX = core.Clamp(g.cursorX+1, 0, n-1)
	}
}

// State returns the current game state. GameOver is reported only after
// the finished signal fires, keeping the final board visible for the
// completion delay.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Moves:    g.engine.Moves(),
		TimeLeft: g.engine.TimeLeft(),
		GameOver: g.signaled,
		Won:      g.engine.Won(),
		Paused:   g.paused || g.tooSmall,
	}
}

// NextGameID implements registry.Advancer: a won timed session hands
// control to the safari screen. Classic wins and time-outs stay on the
// results view.
func (g *Game) NextGameID() string {
	if g.mode == ModeTimed && g.signaled && g.engine.Won() {
		return "safari"
	}
	return ""
}
