package derive

import (
	"testing"
	"time"

	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/tracker"
)

func TestToday_PartitionsByCreationDate(t *testing.T) {
	st := tracker.NewState()
	st.Points = 42
	st.Tasks = []models.Task{
		{ID: 1, Text: "done today", Completed: true, CreatedOn: "2025-03-10"},
		{ID: 2, Text: "open today", Completed: false, CreatedOn: "2025-03-10"},
		{ID: 3, Text: "open today too", Completed: false, CreatedOn: "2025-03-10"},
		{ID: 4, Text: "done yesterday", Completed: true, CreatedOn: "2025-03-09"},
	}

	stats := Today(st, "2025-03-10")
	if stats.TasksCompleted != 1 {
		t.Errorf("Expected 1 completed today, got %d", stats.TasksCompleted)
	}
	if stats.TasksLeft != 2 {
		t.Errorf("Expected 2 left today, got %d", stats.TasksLeft)
	}
	if stats.TotalPoints != 42 {
		t.Errorf("Expected points passthrough 42, got %d", stats.TotalPoints)
	}

	// Every today-task lands in exactly one bucket
	todayTotal := 0
	for _, task := range st.Tasks {
		if task.CreatedOn == "2025-03-10" {
			todayTotal++
		}
	}
	if stats.TasksCompleted+stats.TasksLeft != todayTotal {
		t.Errorf("Partition mismatch: %d + %d != %d", stats.TasksCompleted, stats.TasksLeft, todayTotal)
	}
}

func TestTaskCountForGoal(t *testing.T) {
	goalID := int64(7)
	otherID := int64(8)
	st := tracker.NewState()
	st.Tasks = []models.Task{
		{ID: 1, GoalID: &goalID},
		{ID: 2, GoalID: &goalID},
		{ID: 3, GoalID: &otherID},
		{ID: 4, GoalID: nil},
	}

	if got := TaskCountForGoal(st, goalID); got != 2 {
		t.Errorf("Expected 2 tasks for goal %d, got %d", goalID, got)
	}
	if got := TaskCountForGoal(st, 999); got != 0 {
		t.Errorf("Expected 0 tasks for unknown goal, got %d", got)
	}
}

func TestLast7Days_ShapeAndOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC) // a Monday
	st := tracker.NewState()
	st.Tasks = []models.Task{
		{ID: 1, Completed: true, CreatedOn: "2025-03-10"},
		{ID: 2, Completed: true, CreatedOn: "2025-03-10"},
		{ID: 3, Completed: false, CreatedOn: "2025-03-10"}, // open, not counted
		{ID: 4, Completed: true, CreatedOn: "2025-03-04"},
		{ID: 5, Completed: true, CreatedOn: "2025-03-03"}, // outside the window
	}

	counts := Last7Days(st, now)
	if len(counts) != 7 {
		t.Fatalf("Expected exactly 7 buckets, got %d", len(counts))
	}

	if counts[0].Day != "2025-03-04" {
		t.Errorf("Expected oldest bucket 2025-03-04, got %s", counts[0].Day)
	}
	if counts[6].Day != "2025-03-10" {
		t.Errorf("Expected newest bucket to be today, got %s", counts[6].Day)
	}
	if counts[6].Label != "Mon" {
		t.Errorf("Expected short weekday label Mon, got %s", counts[6].Label)
	}

	if counts[6].Completed != 2 {
		t.Errorf("Expected 2 completed today, got %d", counts[6].Completed)
	}
	if counts[0].Completed != 1 {
		t.Errorf("Expected 1 completed six days ago, got %d", counts[0].Completed)
	}
	for i := 1; i < 6; i++ {
		if counts[i].Completed != 0 {
			t.Errorf("Expected empty bucket %s, got %d", counts[i].Day, counts[i].Completed)
		}
	}
}

func TestLast7Days_EmptyState(t *testing.T) {
	counts := Last7Days(tracker.NewState(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if len(counts) != 7 {
		t.Fatalf("Expected 7 buckets for an empty state, got %d", len(counts))
	}
	for _, dc := range counts {
		if dc.Completed != 0 {
			t.Errorf("Expected 0 completions in %s, got %d", dc.Day, dc.Completed)
		}
	}
}
