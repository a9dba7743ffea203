package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save sessions for both modes
	if _, err := store.SaveScore("pairs", "easy", 40, 6); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("pairs", "medium", 62, 14); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("pairs", "medium", 80, 8); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("pairs_timed", "hard", 120, 16); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("pairs", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 80 || scores[1].Score != 62 || scores[2].Score != 40 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	// Level and moves round-trip
	if scores[0].Level != "medium" || scores[0].Moves != 8 {
		t.Errorf("Top entry = level %q moves %d, expected medium/8", scores[0].Level, scores[0].Moves)
	}

	// Timed sessions live under their own game id
	timed, err := store.TopScores("pairs_timed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(timed) != 1 {
		t.Errorf("Expected 1 timed score, got %d", len(timed))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("pairs", "easy", (i+1)*10, i+4)
	}

	scores, err := store.TopScores("pairs", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreNegativeScores(t *testing.T) {
	store := openTestStore(t)

	// Mismatch penalties can push a session below zero; it still records.
	store.SaveScore("pairs", "easy", -8, 12)
	store.SaveScore("pairs", "easy", 20, 7)

	scores, err := store.TopScores("pairs", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[1].Score != -8 {
		t.Errorf("Negative score did not round-trip: %d", scores[1].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("pairs")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("pairs", "easy", 30, 9)
	store.SaveScore("pairs", "medium", 76, 11)
	store.SaveScore("pairs", "hard", 50, 20)

	high, err = store.HighScore("pairs")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 76 {
		t.Errorf("Expected high score of 76, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pairs", "easy", 30, 9)
	store.SaveScore("pairs", "medium", 50, 12)
	store.SaveScore("pairs_timed", "easy", 40, 6)

	if err := store.ClearScores("pairs"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("pairs", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	timed, _ := store.TopScores("pairs_timed", 10)
	if len(timed) != 1 {
		t.Error("Timed scores should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("pairs", "medium", i*10, i+4)
	}

	scores, err := store.AllScores("pairs")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pairs", "easy", 10, 5)
	store.SaveScore("pairs", "easy", 30, 8)
	store.SaveScore("pairs_timed", "easy", 40, 6)

	stats, err := store.GetGameStats("pairs")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, expected 40", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 games, got %d", len(all))
	}
	if all["pairs_timed"] == nil || all["pairs_timed"].HighScore != 40 {
		t.Error("pairs_timed stats missing or wrong")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
