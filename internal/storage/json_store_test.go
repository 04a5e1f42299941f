package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/prodhub/internal/models"
)

func TestJSONStore_InitAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prodhub.json")
	store := NewJSONStore(path)

	if err := store.Load(); err == nil {
		t.Error("Expected load of uninitialized storage to fail")
	}

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("Expected double init to fail")
	}

	tasks := []models.Task{{ID: 1, Text: "hello", Category: models.CategoryWork, CreatedOn: "2025-03-10"}}
	if err := store.Set("tasks", tasks); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var got []models.Task
	found, err := reopened.Get("tasks", &got)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("Expected tasks key to be present after reload")
	}
	if len(got) != 1 || got[0].Text != "hello" {
		t.Errorf("Round-trip mismatch: %+v", got)
	}
}

func TestJSONStore_AbsentKey(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "prodhub.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	var notes string
	found, err := store.Get("notes", &notes)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("Expected absent key to report not found")
	}
	if notes != "" {
		t.Errorf("Expected target untouched for absent key, got %q", notes)
	}
}

func TestJSONStore_OverwriteKey(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "prodhub.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := store.Set("points", 10); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("points", 25); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var points int
	if _, err := store.Get("points", &points); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if points != 25 {
		t.Errorf("Expected last write to win, got %d", points)
	}
}
