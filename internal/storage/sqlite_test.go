package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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

func sampleRun(seed int64) RunRecord {
	return RunRecord{
		Seed:            seed,
		Ticks:           1000,
		CheckpointEvery: 250,
		MaxFrameMS:      40,
		FinalHash:       0xfedcba9876543210, // High bit set
		Kills:           7,
		Deaths:          2,
		Resets:          1,
		Checkpoints: []Checkpoint{
			{Tick: 250, Hash: 1},
			{Tick: 500, Hash: 0x8000000000000000},
			{Tick: 750, Hash: 3},
			{Tick: 1000, Hash: 0xfedcba9876543210},
		},
	}
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
	want := sampleRun(42)

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got.ID != id || got.Seed != 42 || got.Ticks != 1000 {
		t.Errorf("unexpected run header: %+v", got)
	}
	if got.FinalHash != want.FinalHash {
		t.Errorf("FinalHash = %x, expected %x", got.FinalHash, want.FinalHash)
	}
	if got.Kills != 7 || got.Deaths != 2 || got.Resets != 1 {
		t.Errorf("stats not preserved: %+v", got)
	}
	if got.CheckpointEvery != 250 || got.MaxFrameMS != 40 {
		t.Errorf("options not preserved: %+v", got)
	}
	if len(got.Checkpoints) != len(want.Checkpoints) {
		t.Fatalf("len(Checkpoints) = %d, expected %d", len(got.Checkpoints), len(want.Checkpoints))
	}
	for i := range want.Checkpoints {
		if got.Checkpoints[i] != want.Checkpoints[i] {
			t.Errorf("checkpoint %d = %+v, expected %+v", i, got.Checkpoints[i], want.Checkpoints[i])
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Run(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Run(99) = %v, expected ErrNotFound", err)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(sampleRun(int64(i))); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Seed != 4 || runs[1].Seed != 3 || runs[2].Seed != 2 {
		t.Errorf("runs not in expected order: %d %d %d", runs[0].Seed, runs[1].Seed, runs[2].Seed)
	}
	if runs[0].Checkpoints != nil {
		t.Error("RecentRuns should not load checkpoints")
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	keep, _ := store.SaveRun(sampleRun(1))
	drop, _ := store.SaveRun(sampleRun(2))

	if err := store.DeleteRun(drop); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.Run(drop); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted run should be gone, got %v", err)
	}
	if _, err := store.Run(keep); err != nil {
		t.Errorf("other runs should not be affected: %v", err)
	}

	var orphans int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM checkpoints WHERE run_id = ?", drop).Scan(&orphans); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if orphans != 0 {
		t.Errorf("%d checkpoints left behind", orphans)
	}

	if err := store.DeleteRun(drop); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteRun() = %v, expected ErrNotFound", err)
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
