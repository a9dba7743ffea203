package pairs

// Snapshot captures the complete session state for determinism testing
// and inspection.
type Snapshot struct {
	Mode      string
	Level     LevelID
	Phase     Phase
	Score     int
	Moves     int
	TimeLeft  int // -1 when no clock runs
	Tiles     []Tile
	Selection []int // Indices of pending picks, in tap order
	Finished  bool
	Won       bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine

	sel := make([]int, 0, 2)
	for i := 0; i < e.selected; i++ {
		sel = append(sel, e.selection[i])
	}

	return Snapshot{
		Mode:      string(g.mode),
		Level:     g.level.ID,
		Phase:     e.Phase(),
		Score:     e.Score(),
		Moves:     e.Moves(),
		TimeLeft:  e.TimeLeft(),
		Tiles:     e.Tiles(),
		Selection: sel,
		Finished:  e.Finished(),
		Won:       e.Won(),
	}
}
