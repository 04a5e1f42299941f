package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/prodhub/internal/constants"
	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/storage"
	"github.com/julianstephens/prodhub/internal/tracker"
)

func newTestManager(t *testing.T, at time.Time) *Manager {
	t.Helper()
	m := NewManager(filepath.Join(t.TempDir(), "prodhub.json"))
	m.now = func() time.Time { return at }
	return m
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	want := "productivity-hub-backup-2025-03-10.json"
	if got := FileName(now); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSnapshot_NilCollectionsBecomeEmpty(t *testing.T) {
	doc := Snapshot(&tracker.State{Notes: "n", Points: 5})
	if doc.Tasks == nil || doc.Habits == nil || doc.Goals == nil || doc.JournalEntries == nil || doc.Badges == nil {
		t.Error("Expected nil collections to export as empty lists")
	}
	if doc.Notes != "n" || doc.Points != 5 {
		t.Errorf("Expected scalars to carry over, got %+v", doc)
	}
}

func TestExportRestoreRoundTrip(t *testing.T) {
	goalID := int64(100)
	doc := Document{
		Tasks: []models.Task{
			{ID: 1, Text: "task", Completed: true, Category: models.CategoryWork, GoalID: &goalID, CreatedOn: "2025-03-10"},
		},
		Habits: []models.Habit{
			{ID: 2, Text: "habit", CompletedDates: []string{"2025-03-09", "2025-03-10"}, Streak: 2},
		},
		Goals:          []models.Goal{{ID: goalID, Text: "goal"}},
		JournalEntries: []models.JournalEntry{{ID: 3, Text: "entry", CreatedAt: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}},
		Notes:          "scratch",
		Points:         125,
		Badges:         []models.Badge{{ID: "first_task", Name: "First Task", Icon: "★"}},
	}

	m := newTestManager(t, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))
	path, err := m.Write(doc)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].GoalID == nil || *got.Tasks[0].GoalID != goalID {
		t.Errorf("Tasks did not round-trip: %+v", got.Tasks)
	}
	if got.Points != 125 || got.Notes != "scratch" {
		t.Errorf("Scalars did not round-trip: points=%d notes=%q", got.Points, got.Notes)
	}

	// Restoring into a fresh store and reloading the tracker reproduces
	// the same state the document described.
	storePath := filepath.Join(t.TempDir(), "restored.json")
	store := storage.NewJSONStore(storePath)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to init store: %v", err)
	}
	if err := Restore(store, got); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	st := tracker.New(store).State()
	round := Snapshot(st)
	if len(round.Tasks) != 1 || round.Tasks[0].Text != "task" {
		t.Errorf("Restored tasks mismatch: %+v", round.Tasks)
	}
	if len(round.Habits) != 1 || round.Habits[0].Streak != 2 {
		t.Errorf("Restored habits mismatch: %+v", round.Habits)
	}
	if round.Points != 125 || round.Notes != "scratch" || len(round.Badges) != 1 {
		t.Errorf("Restored scalars mismatch: %+v", round)
	}
}

func TestWrite_SameDayCollisionGetsNewName(t *testing.T) {
	m := newTestManager(t, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))

	first, err := m.Write(Document{})
	if err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	second, err := m.Write(Document{})
	if err != nil {
		t.Fatalf("Second write failed: %v", err)
	}
	third, err := m.Write(Document{})
	if err != nil {
		t.Fatalf("Third write failed: %v", err)
	}

	if first == second || second == third || first == third {
		t.Errorf("Expected distinct backup paths, got %q %q %q", first, second, third)
	}
	for _, p := range []string{first, second, third} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Expected backup %q to exist: %v", p, err)
		}
	}
}

func TestListBackups_NewestFirstAndIgnoresStrays(t *testing.T) {
	m := newTestManager(t, time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC))
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatalf("Failed to create backup dir: %v", err)
	}

	names := []string{
		"productivity-hub-backup-2025-03-10.json",
		"productivity-hub-backup-2025-03-12.json",
		"productivity-hub-backup-2025-03-11.json",
		"unrelated.txt",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("Expected 3 backups, got %d", len(backups))
	}
	for i := 0; i < len(backups)-1; i++ {
		if backups[i].Timestamp.Before(backups[i+1].Timestamp) {
			t.Errorf("Expected newest-first order, got %v before %v", backups[i].Timestamp, backups[i+1].Timestamp)
		}
	}
}

func TestRotateBackups_KeepsRetentionWindow(t *testing.T) {
	m := newTestManager(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatalf("Failed to create backup dir: %v", err)
	}

	// Seed more dated backups than the retention window holds
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < constants.MaxBackups+5; i++ {
		name := FileName(base.AddDate(0, 0, i))
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("Failed to seed backup: %v", err)
		}
	}

	if _, err := m.Write(Document{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) > constants.MaxBackups {
		t.Errorf("Expected at most %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}

	// The newest backup survives rotation
	want := FileName(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	found := false
	for _, b := range backups {
		if filepath.Base(b.Path) == want {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the just-written backup %s to survive rotation", want)
	}
}

func TestReadInvalidFiles(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Error("Expected an error for unparseable JSON")
	}
}
