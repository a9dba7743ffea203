package pairs

import (
	"fmt"
	"math/rand"
)

// Phase is the engine's position in the turn lifecycle.
type Phase int

const (
	PhaseIdle        Phase = iota // No board yet; Setup has not run
	PhaseAwaitFirst               // Waiting for the first tile of a pair
	PhaseAwaitSecond              // One tile revealed, waiting for its partner
	PhaseResolving                // Two tiles up, mismatch revert pending
	PhaseFinished                 // Board resolved or time expired
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitFirst:
		return "await_first"
	case PhaseAwaitSecond:
		return "await_second"
	case PhaseResolving:
		return "resolving"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Rules parametrizes one engine session. Delays are expressed in ticks
// so the engine stays a pure function of Advance calls; the platform
// converts wall-clock seconds using its tick rate.
type Rules struct {
	MatchReward     int  // Score gained per matched pair
	MismatchPenalty int  // Score lost per mismatch (if ApplyPenalty)
	ApplyPenalty    bool // Whether mismatches cost points
	RevertDelay     int  // Ticks a mismatched pair stays visible
	FinishDelay     int  // Ticks between game end and the finished signal
	TicksPerSecond  int  // Countdown granularity
	Countdown       bool // Whether the level clock runs (timed mode)
}

// Engine owns the live board and the turn state machine. All mutation
// goes through Tap and Advance on a single control thread; delayed work
// (mismatch revert, countdown seconds, the finished signal) is kept as
// absolute tick deadlines that Setup implicitly cancels, so a stale
// deadline can never leak into a later session.
type Engine struct {
	rules Rules
	level Level
	tiles []Tile

	selection [2]int
	selected  int

	score     int
	moves     int
	resolving bool
	finished  bool
	won       bool

	tick int

	// Tick deadlines; -1 means not scheduled.
	revertAt         int
	revertA, revertB int
	finishAt         int

	timeLeft     int // Remaining seconds; -1 when no clock runs
	nextSecondAt int

	onFinished func()
	notified   bool
}

// NewEngine creates an engine with the given rules. Call Setup before use.
func NewEngine(rules Rules) *Engine {
	return &Engine{
		rules:        rules,
		revertAt:     -1,
		finishAt:     -1,
		nextSecondAt: -1,
		timeLeft:     -1,
	}
}

// SetOnFinished registers the completion callback. It fires at most once
// per session, after the finish delay has elapsed.
func (e *Engine) SetOnFinished(fn func()) {
	e.onFinished = fn
}

// Setup starts a fresh session on the given level: a new shuffled board,
// zeroed score and moves, and a restarted clock in timed mode. It is
// re-entrant and doubles as restart; any pending deadlines from the
// previous session are discarded.
func (e *Engine) Setup(level Level, rng *rand.Rand) {
	e.level = level
	e.tiles = NewBoard(level, rng)

	e.selected = 0
	e.score = 0
	e.moves = 0
	e.resolving = false
	e.finished = false
	e.won = false
	e.notified = false

	e.tick = 0
	e.revertAt = -1
	e.finishAt = -1

	e.timeLeft = -1
	e.nextSecondAt = -1
	if e.rules.Countdown && level.TimeLimit > 0 {
		e.timeLeft = level.TimeLimit
		e.nextSecondAt = e.rules.TicksPerSecond
	}
}

// Tap handles a tap on the tile at index i.
//
// In-range taps that arrive at the wrong moment (while resolving, after
// the game finished, or on an already matched/revealed tile) are silent
// no-ops: they are expected races between input and engine state. An
// out-of-range index is a caller bug and panics.
func (e *Engine) Tap(i int) {
	if i < 0 || i >= len(e.tiles) {
		panic(fmt.Sprintf("pairs: tile index %d out of range [0,%d)", i, len(e.tiles)))
	}
	if e.resolving || e.finished {
		return
	}

	t := &e.tiles[i]
	if t.Matched || t.Revealed {
		return
	}

	if t.Blocked {
		// Permanently revealed, but consumes no selection slot and no move.
		t.Revealed = true
		return
	}

	t.Revealed = true
	e.selection[e.selected] = i
	e.selected++

	if e.selected == 2 {
		e.resolving = true
		e.moves++
		e.resolve()
	}
}

// resolve evaluates the two selected tiles.
func (e *Engine) resolve() {
	a, b := e.selection[0], e.selection[1]

	if e.tiles[a].Color == e.tiles[b].Color {
		e.tiles[a].Matched = true
		e.tiles[b].Matched = true
		e.score += e.rules.MatchReward
		e.endTurn()
		return
	}

	if e.rules.ApplyPenalty {
		e.score -= e.rules.MismatchPenalty
	}

	// The pair stays visible until the revert deadline: this is the
	// player's window to memorize it before it flips back.
	e.revertA, e.revertB = a, b
	e.revertAt = e.tick + e.rules.RevertDelay
}

// endTurn clears the selection, releases the resolving lock, and runs
// the board-complete check.
func (e *Engine) endTurn() {
	e.selected = 0
	e.resolving = false
	if AllResolved(e.tiles) {
		e.beginFinish(true)
	}
}

// beginFinish enters the terminal state exactly once. The finished
// signal itself is deferred by FinishDelay ticks so the final board
// state stays visible.
func (e *Engine) beginFinish(won bool) {
	if e.finished {
		return
	}
	e.finished = true
	e.won = won
	e.nextSecondAt = -1 // stop the clock
	e.finishAt = e.tick + e.rules.FinishDelay
}

// Advance moves the engine forward by one tick, firing any due deadline:
// the countdown second, the mismatch revert, and the finished signal.
// Deadlines that fire after the engine finished perform no board
// mutation.
func (e *Engine) Advance() {
	e.tick++

	if e.nextSecondAt >= 0 && !e.finished && e.tick >= e.nextSecondAt {
		e.timeLeft--
		if e.timeLeft <= 0 {
			e.timeLeft = 0
			e.beginFinish(false)
		} else {
			e.nextSecondAt = e.tick + e.rules.TicksPerSecond
		}
	}

	if e.revertAt >= 0 && e.tick >= e.revertAt {
		e.revertAt = -1
		if !e.finished {
			e.tiles[e.revertA].Revealed = false
			e.tiles[e.revertB].Revealed = false
		}
		e.selected = 0
		e.resolving = false
	}

	if e.finishAt >= 0 && e.tick >= e.finishAt {
		e.finishAt = -1
		if !e.notified {
			e.notified = true
			if e.onFinished != nil {
				e.onFinished()
			}
		}
	}
}

// Phase derives the current state-machine phase.
func (e *Engine) Phase() Phase {
	switch {
	case e.tiles == nil:
		return PhaseIdle
	case e.finished:
		return PhaseFinished
	case e.resolving:
		return PhaseResolving
	case e.selected == 1:
		return PhaseAwaitSecond
	default:
		return PhaseAwaitFirst
	}
}

// Tiles returns a copy of the board for read-only consumption by the
// presentation layer.
func (e *Engine) Tiles() []Tile {
	out := make([]Tile, len(e.tiles))
	copy(out, e.tiles)
	return out
}

// Level returns the level this session was set up with.
func (e *Engine) Level() Level {
	return e.level
}

// Score returns the current score. It may be negative.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of completed two-tile selections.
func (e *Engine) Moves() int {
	return e.moves
}

// TimeLeft returns the remaining seconds, or -1 when no clock runs.
func (e *Engine) TimeLeft() int {
	return e.timeLeft
}

// Finished reports whether the session has ended.
func (e *Engine) Finished() bool {
	return e.finished
}

// Won reports whether the session ended with a fully resolved board.
func (e *Engine) Won() bool {
	return e.finished && e.won
}

// Notified reports whether the finished signal has fired.
func (e *Engine) Notified() bool {
	return e.notified
}
