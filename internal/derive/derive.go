package derive

import (
	"time"

	"github.com/julianstephens/prodhub/internal/constants"
	"github.com/julianstephens/prodhub/internal/tracker"
)

// Read views computed on demand from the live state. Nothing here caches
// or mutates; every call walks the current collections.

// TodayStats summarizes the tasks created today plus the point total.
type TodayStats struct {
	TasksLeft      int
	TasksCompleted int
	TotalPoints    int
}

// Today partitions the tasks whose creation date equals today into
// completed and left. Tasks created on other days are excluded entirely.
func Today(st *tracker.State, today string) TodayStats {
	stats := TodayStats{TotalPoints: st.Points}
	for _, task := range st.Tasks {
		if task.CreatedOn != today {
			continue
		}
		if task.Completed {
			stats.TasksCompleted++
		} else {
			stats.TasksLeft++
		}
	}
	return stats
}

// TaskCountForGoal counts the tasks linked to the given goal.
func TaskCountForGoal(st *tracker.State, goalID int64) int {
	count := 0
	for _, task := range st.Tasks {
		if task.GoalID != nil && *task.GoalID == goalID {
			count++
		}
	}
	return count
}

// DayCount is one histogram bucket.
type DayCount struct {
	Label     string // short weekday name
	Day       string // YYYY-MM-DD
	Completed int
}

// Last7Days returns exactly 7 buckets, oldest to newest ending today,
// counting completed tasks by their *creation* date. The model has no
// completed-on field, so completion is attributed to the day the task was
// created.
func Last7Days(st *tracker.State, now time.Time) []DayCount {
	counts := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		day := d.Format(constants.DateFormat)
		completed := 0
		for _, task := range st.Tasks {
			if task.Completed && task.CreatedOn == day {
				completed++
			}
		}
		counts = append(counts, DayCount{
			Label:     d.Weekday().String()[:3],
			Day:       day,
			Completed: completed,
		})
	}
	return counts
}
