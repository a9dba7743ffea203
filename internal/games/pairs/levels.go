package pairs

// LevelID identifies one of the preset difficulty levels.
type LevelID string

const (
	LevelEasy   LevelID = "easy"
	LevelMedium LevelID = "medium"
	LevelHard   LevelID = "hard"
)

// Level defines a preset board: an N x N grid and, for the timed mode,
// a countdown in seconds. TimeLimit is ignored by the classic mode.
type Level struct {
	ID        LevelID
	Name      string
	GridSize  int // Board is GridSize x GridSize tiles
	TimeLimit int // Seconds on the clock in timed mode
}

// Levels defines the three presets. A 3x3 board has an odd tile count,
// so it carries one blocked filler tile in addition to its four pairs.
var Levels = []Level{
	{ID: LevelEasy, Name: "Easy", GridSize: 3, TimeLimit: 60},
	{ID: LevelMedium, Name: "Medium", GridSize: 4, TimeLimit: 90},
	{ID: LevelHard, Name: "Hard", GridSize: 5, TimeLimit: 120},
}

// TotalTiles returns the number of tiles on this level's board.
func (l Level) TotalTiles() int {
	return l.GridSize * l.GridSize
}

// PairCount returns the number of color pairs on this level's board.
func (l Level) PairCount() int {
	return l.TotalTiles() / 2
}

// LevelCount returns the number of preset levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level with the given ID.
// Returns nil if the ID is unknown.
func GetLevel(id LevelID) *Level {
	for i := range Levels {
		if Levels[i].ID == id {
			return &Levels[i]
		}
	}
	return nil
}

// LevelByIndex returns the level at the given index (0-based).
// Returns nil if index is out of range.
func LevelByIndex(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
