package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, sc Score) {
	t.Helper()
	if _, err := store.SaveScore(context.Background(), sc); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", sc, err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreMigrationsApplied(t *testing.T) {
	store := openTestStore(t)

	v, err := store.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if v != 2 {
		t.Errorf("schema version = %d, want 2", v)
	}
}

// createArcadeDB writes a scores.db as the arcade leaves it: the base scores
// table with its indexes, no difficulty or level columns, no goose table.
func createArcadeDB(t *testing.T, dbPath string) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX idx_scores_game_id ON scores(game_id);
		CREATE INDEX idx_scores_top ON scores(game_id, score DESC);
		INSERT INTO scores (game_id, score) VALUES ('flappy', 42);
	`)
	if err != nil {
		t.Fatalf("creating arcade schema failed: %v", err)
	}
}

func TestStoreOpensArcadeDatabase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	createArcadeDB(t, dbPath)

	store, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open() on arcade database failed: %v", err)
	}
	defer store.Close()

	mustSave(t, store, Score{GameID: "invaders", Difficulty: "hard", Score: 90, Level: 4})
	top, err := store.TopScores(ctx, "invaders", "hard", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 1 || top[0].Score != 90 || top[0].Level != 4 {
		t.Errorf("invaders scores = %+v", top)
	}

	old, err := store.TopScores(ctx, "flappy", "", 0)
	if err != nil {
		t.Fatalf("TopScores(flappy) failed: %v", err)
	}
	if len(old) != 1 || old[0].Score != 42 || old[0].Difficulty != "normal" || old[0].Level != 1 {
		t.Errorf("existing arcade row = %+v, want score 42 at normal level 1", old)
	}

	// The arcade keeps inserting without the new columns.
	if _, err := store.db.ExecContext(ctx, "INSERT INTO scores (game_id, score) VALUES ('dino', 7)"); err != nil {
		t.Errorf("arcade-style insert failed after upgrade: %v", err)
	}

	v, err := store.SchemaVersion(ctx)
	if err != nil || v != 2 {
		t.Errorf("schema version = %d, %v; want 2", v, err)
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Score{GameID: "invaders", Score: 70, Level: 2})
	store.Close()

	store, err = Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore(ctx, "invaders", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("high score after reopen = %d, want 70", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	mustSave(t, store, Score{GameID: "invaders", Difficulty: "normal", Score: 100, Level: 2})
	mustSave(t, store, Score{GameID: "invaders", Difficulty: "normal", Score: 50, Level: 1})
	mustSave(t, store, Score{GameID: "invaders", Difficulty: "hard", Score: 200, Level: 3})
	mustSave(t, store, Score{GameID: "other", Difficulty: "normal", Score: 500, Level: 9})

	tests := []struct {
		name       string
		difficulty string
		want       []int
	}{
		{"all difficulties", "", []int{200, 100, 50}},
		{"normal only", "normal", []int{100, 50}},
		{"hard only", "hard", []int{200}},
		{"unplayed", "easy", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores(ctx, "invaders", tt.difficulty, 10)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.want) {
				t.Fatalf("got %d scores, want %d", len(scores), len(tt.want))
			}
			for i, w := range tt.want {
				if scores[i].Score != w {
					t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
				}
				if scores[i].GameID != "invaders" {
					t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
				}
			}
		})
	}

	top, _ := store.TopScores(ctx, "invaders", "hard", 1)
	if top[0].Level != 3 || top[0].Difficulty != "hard" || top[0].CreatedAt.IsZero() {
		t.Errorf("top hard score = %+v", top[0])
	}
}

func TestStoreSaveDefaults(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	mustSave(t, store, Score{GameID: "invaders", Score: 10})

	scores, err := store.TopScores(ctx, "invaders", "", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Difficulty != "normal" || scores[0].Level != 1 {
		t.Errorf("saved score = %+v, want normal difficulty at level 1", scores)
	}

	if _, err := store.SaveScore(ctx, Score{Score: 10}); err == nil {
		t.Error("SaveScore without game id should fail")
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Score{GameID: "invaders", Score: (i + 1) * 100, Level: 1})
	}
	mustSave(t, store, Score{GameID: "invaders", Score: 500, Level: 4})

	scores, err := store.TopScores(ctx, "invaders", "", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[0].Level != 4 {
		t.Errorf("tie should prefer the higher level, got %+v", scores[0])
	}
	if scores[1].Score != 500 || scores[2].Score != 400 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	all, _ := store.TopScores(ctx, "invaders", "", 0)
	if len(all) != 6 {
		t.Errorf("non-positive limit should use DefaultLimit, got %d rows", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	high, err := store.HighScore(ctx, "invaders", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	mustSave(t, store, Score{GameID: "invaders", Difficulty: "easy", Score: 300})
	mustSave(t, store, Score{GameID: "invaders", Difficulty: "hard", Score: 200})

	tests := []struct {
		difficulty string
		want       int
	}{
		{"", 300},
		{"easy", 300},
		{"hard", 200},
		{"fixed", 0},
	}
	for _, tt := range tests {
		got, err := store.HighScore(ctx, "invaders", tt.difficulty)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tt.difficulty, err)
		}
		if got != tt.want {
			t.Errorf("HighScore(%q) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestStoreDifficulties(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	mustSave(t, store, Score{GameID: "invaders", Difficulty: "normal", Score: 1})
	mustSave(t, store, Score{GameID: "invaders", Difficulty: "easy", Score: 2})
	mustSave(t, store, Score{GameID: "invaders", Difficulty: "normal", Score: 3})
	mustSave(t, store, Score{GameID: "other", Difficulty: "hard", Score: 4})

	got, err := store.Difficulties(ctx, "invaders")
	if err != nil {
		t.Fatalf("Difficulties() failed: %v", err)
	}
	if len(got) != 2 || got[0] != "easy" || got[1] != "normal" {
		t.Errorf("Difficulties = %v, want [easy normal]", got)
	}
}

func TestStoreClearScores(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	mustSave(t, store, Score{GameID: "invaders", Score: 100})
	mustSave(t, store, Score{GameID: "other", Score: 300})

	if err := store.ClearScores(ctx, "invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores(ctx, "invaders", "", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores(ctx, "other", "", 10); len(scores) != 1 {
		t.Errorf("other game's scores should not be affected")
	}
}
