package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/prodhub/internal/models"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prodhub.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	habits := []models.Habit{
		{ID: 1, Text: "meditate", CompletedDates: []string{"2025-03-10"}, Streak: 1},
	}
	if err := store.Set("habits", habits); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got []models.Habit
	found, err := store.Get("habits", &got)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("Expected habits key to be present")
	}
	if len(got) != 1 || got[0].Streak != 1 || len(got[0].CompletedDates) != 1 {
		t.Errorf("Round-trip mismatch: %+v", got)
	}
}

func TestSQLiteStore_AbsentKeyAndUpsert(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "prodhub.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	var notes string
	found, err := store.Get("notes", &notes)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("Expected absent key to report not found")
	}

	if err := store.Set("notes", "first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("notes", "second"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := store.Get("notes", &notes); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if notes != "second" {
		t.Errorf("Expected upsert to replace the value, got %q", notes)
	}
}

func TestSQLiteStore_LoadWithoutInitFails(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Expected load of uninitialized storage to fail")
	}
}

func TestSQLiteStore_ReopenSeesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prodhub.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("points", 40); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	var points int
	found, err := reopened.Get("points", &points)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || points != 40 {
		t.Errorf("Expected points 40 after reopen, got found=%v points=%d", found, points)
	}
}
