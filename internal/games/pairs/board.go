package pairs

import "math/rand"

// NewBoard builds a shuffled board for the given level.
//
// The board holds TotalTiles/2 color pairs, cycling through Palette by
// pair index. An odd tile count gets exactly one blocked filler tile.
// The shuffle is uniform (rand.Shuffle is Fisher-Yates) and deterministic
// for a given rng seed.
func NewBoard(level Level, rng *rand.Rand) []Tile {
	total := level.TotalTiles()
	pairCount := total / 2

	tiles := make([]Tile, 0, total)
	for p := 0; p < pairCount; p++ {
		c := Palette[p%len(Palette)]
		tiles = append(tiles, Tile{Color: c}, Tile{Color: c})
	}
	if total%2 == 1 {
		tiles = append(tiles, Tile{Color: BlockedColor, Blocked: true})
	}

	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	// Assign stable position IDs after the shuffle
	for i := range tiles {
		tiles[i].ID = i
	}

	return tiles
}

// AllResolved reports whether every tile is either matched or blocked,
// which is the board-complete condition. Blocked tiles count as resolved
// regardless of their reveal state.
func AllResolved(tiles []Tile) bool {
	for i := range tiles {
		if !tiles[i].Matched && !tiles[i].Blocked {
			return false
		}
	}
	return true
}
