package importer

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/storage"
	"github.com/julianstephens/prodhub/internal/tracker"
)

func newTestTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "prodhub.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to init storage: %v", err)
	}
	return tracker.New(store)
}

func TestImport_FullDocument(t *testing.T) {
	tr := newTestTracker(t)

	yamlStr := `
goals:
  - Learn Go
  - Get fit
tasks:
  - text: Read the tutorial
    category: work
    goal: Learn Go
  - text: Morning run
    category: health
    goal: Get fit
    completed: true
  - text: Ungrouped chore
habits:
  - Meditate
  - Stretch
`
	res, err := Import(tr, yamlStr)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if res.Goals != 2 || res.Tasks != 3 || res.Habits != 2 {
		t.Errorf("Unexpected counts: %+v", res)
	}

	st := tr.State()
	if len(st.Goals) != 2 || len(st.Tasks) != 3 || len(st.Habits) != 2 {
		t.Fatalf("State mismatch: %d goals, %d tasks, %d habits",
			len(st.Goals), len(st.Tasks), len(st.Habits))
	}

	// Tasks link to goals by text
	var linked, completed int
	for _, task := range st.Tasks {
		if task.GoalID != nil {
			linked++
		}
		if task.Completed {
			completed++
		}
	}
	if linked != 2 {
		t.Errorf("Expected 2 linked tasks, got %d", linked)
	}
	if completed != 1 {
		t.Errorf("Expected 1 completed task, got %d", completed)
	}
	if st.Tasks[2].Category != models.CategoryOther {
		t.Errorf("Expected default category for uncategorized task, got %s", st.Tasks[2].Category)
	}
}

func TestImport_UnknownGoalLeftUnlinked(t *testing.T) {
	tr := newTestTracker(t)

	res, err := Import(tr, "tasks:\n  - text: Orphan\n    goal: Nonexistent\n")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if res.Tasks != 1 {
		t.Fatalf("Expected 1 task, got %d", res.Tasks)
	}
	if tr.State().Tasks[0].GoalID != nil {
		t.Error("Expected task naming an unknown goal to be unlinked")
	}
}

func TestImport_ExistingGoalsReused(t *testing.T) {
	tr := newTestTracker(t)
	existing, _ := tr.AddGoal("Learn Go")

	res, err := Import(tr, "goals:\n  - Learn Go\ntasks:\n  - text: Read book\n    goal: Learn Go\n")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if res.Goals != 0 {
		t.Errorf("Expected no new goals, got %d", res.Goals)
	}
	if len(tr.State().Goals) != 1 {
		t.Errorf("Expected 1 goal, got %d", len(tr.State().Goals))
	}
	task := tr.State().Tasks[0]
	if task.GoalID == nil || *task.GoalID != existing.ID {
		t.Error("Expected task to link to the pre-existing goal")
	}
}

func TestImport_BadInput(t *testing.T) {
	tr := newTestTracker(t)

	if _, err := Import(tr, "tasks: [unclosed"); err == nil {
		t.Error("Expected a parse error for invalid YAML")
	}
	if _, err := Import(tr, "unrelated: true"); err == nil {
		t.Error("Expected an error for a document without importable content")
	}
	if len(tr.State().Tasks) != 0 {
		t.Errorf("Expected no tasks after failed imports, got %d", len(tr.State().Tasks))
	}
}

func TestImport_BlankEntriesSkipped(t *testing.T) {
	tr := newTestTracker(t)

	res, err := Import(tr, "tasks:\n  - text: \"  \"\n  - text: Real task\nhabits:\n  - \"\"\n  - Stretch\n")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if res.Tasks != 1 || res.Habits != 1 {
		t.Errorf("Expected blanks to be skipped, got %+v", res)
	}
}
