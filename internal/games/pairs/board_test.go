package pairs

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pairs/internal/core"
)

func TestNewBoardComposition(t *testing.T) {
	tests := []struct {
		name          string
		level         Level
		expectTiles   int
		expectPairs   int
		expectBlocked int
	}{
		{
			name:          "easy 3x3 has a blocked filler",
			level:         Levels[0],
			expectTiles:   9,
			expectPairs:   4,
			expectBlocked: 1,
		},
		{
			name:          "medium 4x4 is all pairs",
			level:         Levels[1],
			expectTiles:   16,
			expectPairs:   8,
			expectBlocked: 0,
		},
		{
			name:          "hard 5x5 has a blocked filler",
			level:         Levels[2],
			expectTiles:   25,
			expectPairs:   12,
			expectBlocked: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			tiles := NewBoard(tc.level, rng)

			if len(tiles) != tc.expectTiles {
				t.Fatalf("board has %d tiles, expected %d", len(tiles), tc.expectTiles)
			}

			blocked := 0
			colorCount := make(map[core.Color]int)
			for _, tile := range tiles {
				if tile.Blocked {
					blocked++
					continue
				}
				colorCount[tile.Color]++
			}

			if blocked != tc.expectBlocked {
				t.Errorf("board has %d blocked tiles, expected %d", blocked, tc.expectBlocked)
			}

			// Every non-blocked color bucket holds an even tile count,
			// and the buckets sum to the pair total.
			total := 0
			for c, n := range colorCount {
				if n%2 != 0 {
					t.Errorf("color %v appears %d times, expected an even count", c, n)
				}
				total += n
			}
			if total != tc.expectPairs*2 {
				t.Errorf("board has %d pair tiles, expected %d", total, tc.expectPairs*2)
			}
		})
	}
}

func TestNewBoardInitialState(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tiles := NewBoard(Levels[1], rng)

	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("tile[%d].ID = %d, expected %d", i, tile.ID, i)
		}
		if tile.Revealed {
			t.Errorf("tile[%d] starts revealed", i)
		}
		if tile.Matched {
			t.Errorf("tile[%d] starts matched", i)
		}
	}
}

func TestNewBoardBlockedUsesSentinelColor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tiles := NewBoard(Levels[0], rng)

	for _, tile := range tiles {
		if tile.Blocked && tile.Color != BlockedColor {
			t.Errorf("blocked tile has palette color %v", tile.Color)
		}
		if !tile.Blocked && tile.Color == BlockedColor {
			t.Errorf("pair tile carries the blocked sentinel color")
		}
	}
}

func TestNewBoardDeterministicForSeed(t *testing.T) {
	a := NewBoard(Levels[2], rand.New(rand.NewSource(42)))
	b := NewBoard(Levels[2], rand.New(rand.NewSource(42)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("boards diverge at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNewBoardShufflesForDifferentSeeds(t *testing.T) {
	a := NewBoard(Levels[2], rand.New(rand.NewSource(1)))
	b := NewBoard(Levels[2], rand.New(rand.NewSource(2)))

	same := true
	for i := range a {
		if a[i].Color != b[i].Color || a[i].Blocked != b[i].Blocked {
			same = false
			break
		}
	}
	if same {
		t.Error("boards for different seeds came out identical")
	}
}

func TestAllResolved(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tiles := NewBoard(Levels[0], rng)

	if AllResolved(tiles) {
		t.Error("fresh board reported as resolved")
	}

	// Blocked tiles count as resolved whether or not they were revealed.
	for i := range tiles {
		if !tiles[i].Blocked {
			tiles[i].Matched = true
		}
	}
	if !AllResolved(tiles) {
		t.Error("board with all pairs matched and a hidden blocked tile not resolved")
	}
}
