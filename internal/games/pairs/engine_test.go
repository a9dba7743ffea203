package pairs

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pairs/internal/core"
)

// testRules uses small tick counts so tests stay fast and readable:
// 10 ticks per second, 7-tick revert, 5-tick finish delay.
func testRules() Rules {
	return Rules{
		MatchReward:     10,
		MismatchPenalty: 2,
		ApplyPenalty:    true,
		RevertDelay:     7,
		FinishDelay:     5,
		TicksPerSecond:  10,
	}
}

func newTestEngine(t *testing.T, level Level, rules Rules, seed int64) *Engine {
	t.Helper()
	e := NewEngine(rules)
	e.Setup(level, rand.New(rand.NewSource(seed)))
	return e
}

func advance(e *Engine, ticks int) {
	for i := 0; i < ticks; i++ {
		e.Advance()
	}
}

// findPair returns two hidden, non-blocked tiles of equal color.
func findPair(t *testing.T, e *Engine) (int, int) {
	t.Helper()
	for i := range e.tiles {
		if e.tiles[i].Blocked || e.tiles[i].Matched || e.tiles[i].Revealed {
			continue
		}
		for j := i + 1; j < len(e.tiles); j++ {
			if !e.tiles[j].Blocked && !e.tiles[j].Matched && !e.tiles[j].Revealed && e.tiles[j].Color == e.tiles[i].Color {
				return i, j
			}
		}
	}
	t.Fatal("no matching pair left on board")
	return 0, 0
}

// findMismatch returns two hidden, non-blocked tiles of differing color.
func findMismatch(t *testing.T, e *Engine) (int, int) {
	t.Helper()
	for i := range e.tiles {
		if e.tiles[i].Blocked || e.tiles[i].Matched {
			continue
		}
		for j := i + 1; j < len(e.tiles); j++ {
			if !e.tiles[j].Blocked && !e.tiles[j].Matched && e.tiles[j].Color != e.tiles[i].Color {
				return i, j
			}
		}
	}
	t.Fatal("no mismatching tiles left on board")
	return 0, 0
}

// findBlocked returns the index of the blocked tile.
func findBlocked(t *testing.T, e *Engine) int {
	t.Helper()
	for i := range e.tiles {
		if e.tiles[i].Blocked {
			return i
		}
	}
	t.Fatal("board has no blocked tile")
	return 0
}

// solve taps every remaining pair to completion.
func solve(e *Engine) {
	groups := make(map[core.Color][]int)
	for i := range e.tiles {
		if !e.tiles[i].Blocked && !e.tiles[i].Matched {
			groups[e.tiles[i].Color] = append(groups[e.tiles[i].Color], i)
		}
	}
	for _, idxs := range groups {
		for j := 0; j+1 < len(idxs); j += 2 {
			e.Tap(idxs[j])
			e.Tap(idxs[j+1])
		}
	}
}

func TestSetupInitialState(t *testing.T) {
	e := newTestEngine(t, Levels[0], testRules(), 1)

	if e.Phase() != PhaseAwaitFirst {
		t.Errorf("phase = %v, expected await_first", e.Phase())
	}
	if e.Score() != 0 || e.Moves() != 0 {
		t.Errorf("fresh session has score=%d moves=%d", e.Score(), e.Moves())
	}
	if e.TimeLeft() != -1 {
		t.Errorf("untimed session reports TimeLeft=%d, expected -1", e.TimeLeft())
	}
}

func TestMatchScoresAndStaysRevealed(t *testing.T) {
	e := newTestEngine(t, Levels[1], testRules(), 2)
	a, b := findPair(t, e)

	e.Tap(a)
	if e.Phase() != PhaseAwaitSecond {
		t.Errorf("after first tap phase = %v, expected await_second", e.Phase())
	}
	if e.Moves() != 0 {
		t.Error("first tap of a pair counted as a move")
	}

	e.Tap(b)

	if !e.tiles[a].Matched || !e.tiles[b].Matched {
		t.Error("matching pair not marked matched")
	}
	if e.Score() != 10 {
		t.Errorf("score = %d, expected 10", e.Score())
	}
	if e.Moves() != 1 {
		t.Errorf("moves = %d, expected 1", e.Moves())
	}
	// A match resolves synchronously: the next turn can start at once.
	if e.Phase() != PhaseAwaitFirst {
		t.Errorf("after match phase = %v, expected await_first", e.Phase())
	}
}

func TestMismatchRevertsAfterDelay(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, Levels[1], rules, 3)
	a, b := findMismatch(t, e)

	e.Tap(a)
	e.Tap(b)

	if e.Score() != -2 {
		t.Errorf("score = %d, expected -2", e.Score())
	}
	if e.Moves() != 1 {
		t.Errorf("moves = %d, expected 1", e.Moves())
	}
	if e.Phase() != PhaseResolving {
		t.Errorf("phase = %v, expected resolving", e.Phase())
	}
	// Both stay visible through the memorization window.
	advance(e, rules.RevertDelay-1)
	if !e.tiles[a].Revealed || !e.tiles[b].Revealed {
		t.Error("mismatched pair flipped back before the revert delay elapsed")
	}

	advance(e, 1)
	if e.tiles[a].Revealed || e.tiles[b].Revealed {
		t.Error("mismatched pair still revealed after the revert delay")
	}
	if e.Phase() != PhaseAwaitFirst {
		t.Errorf("after revert phase = %v, expected await_first", e.Phase())
	}
}

func TestMismatchPenaltyCanBeDisabled(t *testing.T) {
	rules := testRules()
	rules.ApplyPenalty = false
	e := newTestEngine(t, Levels[1], rules, 3)
	a, b := findMismatch(t, e)

	e.Tap(a)
	e.Tap(b)

	if e.Score() != 0 {
		t.Errorf("score = %d, expected 0 with penalty disabled", e.Score())
	}
}

func TestScoreUnboundedBelow(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, Levels[1], rules, 4)

	for i := 0; i < 3; i++ {
		a, b := findMismatch(t, e)
		e.Tap(a)
		e.Tap(b)
		advance(e, rules.RevertDelay)
	}

	if e.Score() != -6 {
		t.Errorf("score = %d, expected -6 after three mismatches", e.Score())
	}
}

func TestGuardedTapsAreNoOps(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, Levels[1], rules, 5)

	// Tapping the same tile twice leaves the selection at one.
	a, b := findPair(t, e)
	e.Tap(a)
	e.Tap(a)
	if e.selected != 1 {
		t.Errorf("selection = %d after double tap, expected 1", e.selected)
	}
	e.Tap(b)

	// Tapping a matched tile changes nothing.
	score, moves := e.Score(), e.Moves()
	e.Tap(a)
	if e.Score() != score || e.Moves() != moves || e.selected != 0 {
		t.Error("tap on a matched tile mutated session state")
	}

	// Taps are swallowed while a mismatch is resolving.
	c, d := findMismatch(t, e)
	e.Tap(c)
	e.Tap(d)
	x, _ := findPair(t, e)
	e.Tap(x)
	if e.tiles[x].Revealed {
		t.Error("tap processed while resolving")
	}
	if e.Moves() != moves+1 {
		t.Errorf("moves = %d, expected %d", e.Moves(), moves+1)
	}
}

func TestTapAfterFinishedIgnored(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, Levels[1], rules, 6)

	solve(e)
	if !e.Finished() {
		t.Fatal("solved board did not finish")
	}

	score := e.Score()
	for i := range e.tiles {
		e.Tap(i)
	}
	if e.Score() != score {
		t.Error("tap after finish changed the score")
	}
}

func TestBlockedTileTap(t *testing.T) {
	e := newTestEngine(t, Levels[0], testRules(), 7)
	i := findBlocked(t, e)

	e.Tap(i)

	if !e.tiles[i].Revealed {
		t.Error("blocked tile not revealed by tap")
	}
	if e.Score() != 0 || e.Moves() != 0 || e.selected != 0 {
		t.Errorf("blocked tap changed session state: score=%d moves=%d selection=%d",
			e.Score(), e.Moves(), e.selected)
	}
	if e.Phase() != PhaseAwaitFirst {
		t.Errorf("phase = %v after blocked tap, expected await_first", e.Phase())
	}

	// Repeat taps stay no-ops.
	e.Tap(i)
	if e.Score() != 0 || e.Moves() != 0 || e.selected != 0 {
		t.Error("second blocked tap changed session state")
	}
}

func TestBlockedTileDoesNotGateCompletion(t *testing.T) {
	e := newTestEngine(t, Levels[0], testRules(), 8)

	// Never tap the blocked tile: matching all four pairs must finish
	// the 3x3 board anyway.
	solve(e)

	if !e.Finished() {
		t.Error("board with only the blocked tile left unrevealed did not finish")
	}
	if !e.Won() {
		t.Error("resolved board not reported as a win")
	}
	if e.Score() != 40 {
		t.Errorf("score = %d, expected 40 for four matches", e.Score())
	}
}

func TestOutOfRangeTapPanics(t *testing.T) {
	e := newTestEngine(t, Levels[0], testRules(), 9)

	defer func() {
		if recover() == nil {
			t.Error("Tap with out-of-range index did not panic")
		}
	}()
	e.Tap(len(e.tiles))
}

func TestFinishedSignalFiresOnceAfterDelay(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, Levels[1], rules, 10)

	fired := 0
	e.SetOnFinished(func() { fired++ })

	solve(e)
	if !e.Finished() {
		t.Fatal("solved board did not finish")
	}
	if fired != 0 {
		t.Error("finished signal fired before the completion delay")
	}

	advance(e, rules.FinishDelay)
	if fired != 1 {
		t.Fatalf("finished signal fired %d times, expected 1", fired)
	}

	// Later ticks never re-fire.
	advance(e, 50)
	if fired != 1 {
		t.Errorf("finished signal re-fired, total %d", fired)
	}
}

func TestCountdownDecrementsPerSecond(t *testing.T) {
	rules := testRules()
	rules.Countdown = true
	level := Levels[0]
	level.TimeLimit = 3
	e := newTestEngine(t, level, rules, 11)

	if e.TimeLeft() != 3 {
		t.Fatalf("TimeLeft = %d at start, expected 3", e.TimeLeft())
	}

	advance(e, rules.TicksPerSecond)
	if e.TimeLeft() != 2 {
		t.Errorf("TimeLeft = %d after one second, expected 2", e.TimeLeft())
	}

	advance(e, rules.TicksPerSecond)
	if e.TimeLeft() != 1 {
		t.Errorf("TimeLeft = %d after two seconds, expected 1", e.TimeLeft())
	}
}

func TestCountdownExpiryForcesGameEnd(t *testing.T) {
	rules := testRules()
	rules.Countdown = true
	level := Levels[0]
	level.TimeLimit = 2
	e := newTestEngine(t, level, rules, 12)

	fired := 0
	e.SetOnFinished(func() { fired++ })

	// Run the clock out with unmatched tiles remaining.
	advance(e, 2*rules.TicksPerSecond)

	if !e.Finished() {
		t.Fatal("engine not finished after the clock ran out")
	}
	if e.Won() {
		t.Error("time-out reported as a win")
	}
	if e.TimeLeft() != 0 {
		t.Errorf("TimeLeft = %d, expected 0", e.TimeLeft())
	}

	advance(e, rules.FinishDelay)
	if fired != 1 {
		t.Errorf("finished signal fired %d times, expected 1", fired)
	}

	// An already-elapsed clock never decrements further.
	advance(e, 5*rules.TicksPerSecond)
	if e.TimeLeft() != 0 {
		t.Errorf("TimeLeft = %d after extra ticks, expected 0", e.TimeLeft())
	}
}

func TestWinStopsCountdown(t *testing.T) {
	rules := testRules()
	rules.Countdown = true
	level := Levels[1]
	level.TimeLimit = 60
	e := newTestEngine(t, level, rules, 13)

	solve(e)
	left := e.TimeLeft()

	advance(e, 10*rules.TicksPerSecond)
	if e.TimeLeft() != left {
		t.Errorf("clock kept running after the win: %d -> %d", left, e.TimeLeft())
	}
}

func TestConvergingTriggersFireOnce(t *testing.T) {
	rules := testRules()
	rules.Countdown = true
	level := Levels[1]
	level.TimeLimit = 1
	e := newTestEngine(t, level, rules, 14)

	fired := 0
	e.SetOnFinished(func() { fired++ })

	// Resolve the board on the same tick the clock would expire.
	advance(e, rules.TicksPerSecond-1)
	solve(e)
	advance(e, 1) // clock deadline; engine already finished

	advance(e, rules.FinishDelay+rules.TicksPerSecond)
	if fired != 1 {
		t.Errorf("finished signal fired %d times, expected 1", fired)
	}
	if !e.Won() {
		t.Error("board resolved before expiry should report a win")
	}
}

func TestRevertAfterFinishDoesNotMutate(t *testing.T) {
	rules := testRules()
	rules.Countdown = true
	rules.RevertDelay = 2 * rules.TicksPerSecond // longer than the clock
	level := Levels[1]
	level.TimeLimit = 1
	e := newTestEngine(t, level, rules, 15)

	a, b := findMismatch(t, e)
	e.Tap(a)
	e.Tap(b)

	// Clock expires first; the pending revert fires later and must not
	// touch the final board.
	advance(e, rules.TicksPerSecond)
	if !e.Finished() {
		t.Fatal("clock did not expire")
	}
	advance(e, rules.RevertDelay)

	if !e.tiles[a].Revealed || !e.tiles[b].Revealed {
		t.Error("stale revert mutated a finished board")
	}
}

func TestRestartResetsSession(t *testing.T) {
	rules := testRules()
	rules.Countdown = true
	level := Levels[1]
	level.TimeLimit = 30
	e := newTestEngine(t, level, rules, 16)

	// Bank some state and leave a revert pending.
	a, b := findPair(t, e)
	e.Tap(a)
	e.Tap(b)
	c, d := findMismatch(t, e)
	e.Tap(c)
	e.Tap(d)
	advance(e, 3)

	e.Setup(level, rand.New(rand.NewSource(17)))

	if e.Score() != 0 || e.Moves() != 0 || e.selected != 0 {
		t.Errorf("restart left score=%d moves=%d selection=%d", e.Score(), e.Moves(), e.selected)
	}
	if e.TimeLeft() != 30 {
		t.Errorf("restart left TimeLeft=%d, expected 30", e.TimeLeft())
	}
	for i := range e.tiles {
		if e.tiles[i].Revealed || e.tiles[i].Matched {
			t.Fatalf("restart left tile %d revealed/matched", i)
		}
	}

	// The old session's revert deadline is gone: nothing flips on the
	// new board when it would have fired.
	x, _ := findPair(t, e)
	e.Tap(x)
	advance(e, rules.RevertDelay)
	if !e.tiles[x].Revealed {
		t.Error("stale revert from previous session flipped a tile back")
	}
}
