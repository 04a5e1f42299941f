package gamify

import (
	"github.com/julianstephens/prodhub/internal/constants"
	"github.com/julianstephens/prodhub/internal/models"
)

// EventKind identifies the mutation that triggered rule evaluation.
type EventKind string

const (
	// EventTaskAdded fires after a task is created. TaskTotal carries the
	// resulting size of the task collection.
	EventTaskAdded EventKind = "task_added"
	// EventTaskCompleted fires only on the incomplete -> complete
	// transition. Re-completing after an un-toggle fires again; there is
	// no corresponding decrement event.
	EventTaskCompleted EventKind = "task_completed"
	// EventHabitChecked fires when today is newly added to a habit's
	// completed dates. Streak carries the habit's streak after the
	// increment.
	EventHabitChecked EventKind = "habit_checked"
)

// Event is the input to rule evaluation.
type Event struct {
	Kind      EventKind
	TaskTotal int
	Streak    int
}

// Effect is one rule's output: a point delta, a badge to grant, or both.
type Effect struct {
	Points int
	Badge  *models.Badge
}

// Rule matches an event kind (plus an optional predicate) and yields an
// effect. Rules never remove points or badges.
type Rule struct {
	Kind   EventKind
	When   func(Event) bool
	Points int
	Badge  *models.Badge
}

// The fixed badge catalog.
var (
	BadgeFirstTask  = models.Badge{ID: "first_task", Name: "First Task", Icon: "★"}
	BadgeWeekStreak = models.Badge{ID: "week_streak", Name: "Week Streak", Icon: "🔥"}
)

// DefaultRules returns the reward table: new rules belong here, not at
// mutation call sites.
func DefaultRules() []Rule {
	return []Rule{
		{
			Kind:  EventTaskAdded,
			When:  func(e Event) bool { return e.TaskTotal == 1 },
			Badge: &BadgeFirstTask,
		},
		{
			Kind:   EventTaskCompleted,
			Points: constants.PointsTaskCompleted,
		},
		{
			Kind:   EventHabitChecked,
			Points: constants.PointsHabitChecked,
		},
		{
			Kind:  EventHabitChecked,
			When:  func(e Event) bool { return e.Streak == constants.WeekStreakTarget },
			Badge: &BadgeWeekStreak,
		},
	}
}

// Engine evaluates events against a rule table. It holds no state.
type Engine struct {
	rules []Rule
}

func New() *Engine {
	return &Engine{rules: DefaultRules()}
}

// Evaluate returns the effects of every rule matching the event.
func (e *Engine) Evaluate(ev Event) []Effect {
	var effects []Effect
	for _, r := range e.rules {
		if r.Kind != ev.Kind {
			continue
		}
		if r.When != nil && !r.When(ev) {
			continue
		}
		effects = append(effects, Effect{Points: r.Points, Badge: r.Badge})
	}
	return effects
}
