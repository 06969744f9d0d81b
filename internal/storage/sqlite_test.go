package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations against an existing schema.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade-arena/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade-arena", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("arena", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("inventorium", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("arena", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}
	for i, expected := range []int{200, 100, 50} {
		if scores[i].Score != expected {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, expected)
		}
		if scores[i].GameID != "arena" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	top, err := store.TopScores("arena", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 200 || top[1].Score != 100 {
		t.Errorf("TopScores(limit 2) = %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("arena")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}

	store.SaveScore("arena", 7)
	store.SaveScore("arena", 31)
	store.SaveScore("arena", 12)

	high, err = store.HighScore("arena")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 31 {
		t.Errorf("HighScore() = %d, expected 31", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("arena", 10)
	store.SaveScore("inventorium", 20)
	store.SaveRun(Run{GameID: "arena", Score: 10})

	if err := store.ClearScores("arena"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("arena", 10); len(scores) != 0 {
		t.Errorf("arena scores after clear = %v", scores)
	}
	if runs, _ := store.RecentRuns("arena", 10); len(runs) != 0 {
		t.Errorf("arena runs after clear = %v", runs)
	}
	if scores, _ := store.TopScores("inventorium", 10); len(scores) != 1 {
		t.Error("ClearScores should only touch the given game")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("arena", 10)
	store.SaveScore("arena", 30)

	stats, err = store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	given := uuid.New()
	id, err := store.SaveRun(Run{RunID: given, GameID: "arena", Score: 4, Kills: 2, Ticks: 900, ArenaW: 1100, ArenaH: 700})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != given {
		t.Errorf("SaveRun() = %v, expected the given id %v", id, given)
	}

	generated, err := store.SaveRun(Run{GameID: "arena", Score: 9})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if generated == uuid.Nil {
		t.Error("SaveRun() should generate an id")
	}

	if _, err := store.SaveRun(Run{RunID: given, GameID: "arena"}); err == nil {
		t.Error("SaveRun() with a duplicate id should fail")
	}

	runs, err := store.RecentRuns("arena", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, expected 2", len(runs))
	}
	if runs[0].RunID != generated || runs[1].RunID != given {
		t.Errorf("RecentRuns() order = %v, %v", runs[0].RunID, runs[1].RunID)
	}
	r := runs[1]
	if r.Score != 4 || r.Kills != 2 || r.Ticks != 900 || r.ArenaW != 1100 || r.ArenaH != 700 {
		t.Errorf("run = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}
