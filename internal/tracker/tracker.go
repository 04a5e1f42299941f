package tracker

import (
	"strings"
	"time"

	"github.com/julianstephens/prodhub/internal/constants"
	"github.com/julianstephens/prodhub/internal/gamify"
	"github.com/julianstephens/prodhub/internal/logger"
	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/storage"
	"github.com/julianstephens/prodhub/internal/streak"
)

// State is the authoritative in-memory holder of every durable collection
// and scalar. It is owned by a Tracker and handed by reference to the
// derivation layer; nothing outside this package mutates it.
type State struct {
	Tasks          []models.Task
	Habits         []models.Habit
	Goals          []models.Goal
	JournalEntries []models.JournalEntry
	Notes          string
	Points         int
	Badges         []models.Badge
}

// NewState returns an empty state with non-nil collections.
func NewState() *State {
	return &State{
		Tasks:          []models.Task{},
		Habits:         []models.Habit{},
		Goals:          []models.Goal{},
		JournalEntries: []models.JournalEntry{},
		Badges:         []models.Badge{},
	}
}

// Award reports the gamification side effects of a single mutation:
// points added and badges newly granted. Callers surface granted badges
// as notifications.
type Award struct {
	Points int
	Badges []models.Badge
}

// Tracker is the entity store: it owns the State, runs the mutation
// operations, evaluates gamification rules, and writes through to the
// persistence provider after every mutation.
//
// All operations run to completion on the caller's goroutine; there is no
// internal locking and none is needed under the single-session model.
// Mutations never return errors: blank-text adds and unknown-id lookups
// are silent no-ops, and a failed save leaves the in-memory state
// authoritative for the rest of the session.
type Tracker struct {
	store  storage.Provider
	state  *State
	engine *gamify.Engine
	now    func() time.Time
	lastID int64
}

// New builds a tracker over an already-loaded provider and reads every
// storage key. Absent or unreadable values fall back to empty defaults;
// startup never fails on bad persisted data.
func New(store storage.Provider) *Tracker {
	t := &Tracker{
		store:  store,
		state:  NewState(),
		engine: gamify.New(),
		now:    time.Now,
	}
	t.load()
	return t
}

func (t *Tracker) load() {
	t.loadKey(constants.KeyTasks, &t.state.Tasks)
	t.loadKey(constants.KeyHabits, &t.state.Habits)
	t.loadKey(constants.KeyGoals, &t.state.Goals)
	t.loadKey(constants.KeyJournalEntries, &t.state.JournalEntries)
	t.loadKey(constants.KeyNotes, &t.state.Notes)
	t.loadKey(constants.KeyPoints, &t.state.Points)
	t.loadKey(constants.KeyBadges, &t.state.Badges)

	// Stored null collections become empty ones
	if t.state.Tasks == nil {
		t.state.Tasks = []models.Task{}
	}
	if t.state.Habits == nil {
		t.state.Habits = []models.Habit{}
	}
	if t.state.Goals == nil {
		t.state.Goals = []models.Goal{}
	}
	if t.state.JournalEntries == nil {
		t.state.JournalEntries = []models.JournalEntry{}
	}
	if t.state.Badges == nil {
		t.state.Badges = []models.Badge{}
	}
	if t.state.Points < 0 {
		logger.Warn("Discarding negative stored point total", "points", t.state.Points)
		t.state.Points = 0
	}

	t.seedIDAllocator()
}

func (t *Tracker) loadKey(key string, v any) {
	found, err := t.store.Get(key, v)
	if err != nil {
		logger.Warn("Discarding unreadable stored value", "key", key, "error", err)
		return
	}
	if !found {
		logger.Debug("No stored value, using default", "key", key)
	}
}

func (t *Tracker) seedIDAllocator() {
	for _, task := range t.state.Tasks {
		if task.ID > t.lastID {
			t.lastID = task.ID
		}
	}
	for _, h := range t.state.Habits {
		if h.ID > t.lastID {
			t.lastID = h.ID
		}
	}
	for _, g := range t.state.Goals {
		if g.ID > t.lastID {
			t.lastID = g.ID
		}
	}
	for _, e := range t.state.JournalEntries {
		if e.ID > t.lastID {
			t.lastID = e.ID
		}
	}
}

// nextID allocates a creation-time-derived id. Two allocations within the
// same millisecond are serialized by bumping past the last issued id, so
// ids stay unique and monotonic by creation order.
func (t *Tracker) nextID() int64 {
	id := t.now().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

// State returns the live state container. Callers must treat it as
// read-only; all writes go through the mutation operations.
func (t *Tracker) State() *State {
	return t.state
}

// Now returns the tracker's current time. The TUI uses it so that views
// and mutations agree on what "today" is.
func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) today() string {
	return t.now().Format(constants.DateFormat)
}

func (t *Tracker) persist(keys ...string) {
	for _, key := range keys {
		var v any
		switch key {
		case constants.KeyTasks:
			v = t.state.Tasks
		case constants.KeyHabits:
			v = t.state.Habits
		case constants.KeyGoals:
			v = t.state.Goals
		case constants.KeyJournalEntries:
			v = t.state.JournalEntries
		case constants.KeyNotes:
			v = t.state.Notes
		case constants.KeyPoints:
			v = t.state.Points
		case constants.KeyBadges:
			v = t.state.Badges
		default:
			continue
		}
		if err := t.store.Set(key, v); err != nil {
			// In-memory state stays authoritative for this session
			logger.Warn("State save failed", "key", key, "error", err)
		}
	}
}

// apply runs the rule effects against the state and reports what actually
// changed. Points accumulate; badges are granted at most once per id.
func (t *Tracker) apply(effects []gamify.Effect) Award {
	var award Award
	for _, ef := range effects {
		if ef.Points != 0 {
			t.state.Points += ef.Points
			award.Points += ef.Points
		}
		if ef.Badge != nil && t.grantBadge(*ef.Badge) {
			award.Badges = append(award.Badges, *ef.Badge)
		}
	}
	if award.Points != 0 {
		t.persist(constants.KeyPoints)
	}
	if len(award.Badges) > 0 {
		t.persist(constants.KeyBadges)
	}
	return award
}

func (t *Tracker) grantBadge(b models.Badge) bool {
	for _, held := range t.state.Badges {
		if held.ID == b.ID {
			return false
		}
	}
	t.state.Badges = append(t.state.Badges, b)
	return true
}

// AddTask creates a task due today. Blank text is a no-op. The very first
// task ever recorded grants the first_task badge.
func (t *Tracker) AddTask(text string, category models.Category, goalID *int64) (models.Task, Award, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, Award{}, false
	}

	task := models.Task{
		ID:        t.nextID(),
		Text:      text,
		Completed: false,
		Category:  category,
		GoalID:    goalID,
		CreatedOn: t.today(),
	}
	t.state.Tasks = append(t.state.Tasks, task)
	t.persist(constants.KeyTasks)

	award := t.apply(t.engine.Evaluate(gamify.Event{
		Kind:      gamify.EventTaskAdded,
		TaskTotal: len(t.state.Tasks),
	}))

	logger.Debug("Task added", "id", task.ID, "category", category)
	return task, award, true
}

// ToggleTask flips a task's completion. The incomplete -> complete
// transition awards points; the reverse transition awards nothing and
// revokes nothing. Unknown ids are no-ops.
func (t *Tracker) ToggleTask(id int64) (models.Task, Award, bool) {
	for i := range t.state.Tasks {
		if t.state.Tasks[i].ID != id {
			continue
		}

		completing := !t.state.Tasks[i].Completed
		t.state.Tasks[i].Completed = completing
		t.persist(constants.KeyTasks)

		var award Award
		if completing {
			award = t.apply(t.engine.Evaluate(gamify.Event{Kind: gamify.EventTaskCompleted}))
		}
		return t.state.Tasks[i], award, true
	}
	return models.Task{}, Award{}, false
}

// DeleteTask removes a task. No cascading effects.
func (t *Tracker) DeleteTask(id int64) bool {
	for i := range t.state.Tasks {
		if t.state.Tasks[i].ID == id {
			t.state.Tasks = append(t.state.Tasks[:i], t.state.Tasks[i+1:]...)
			t.persist(constants.KeyTasks)
			return true
		}
	}
	return false
}

// AddGoal creates a goal. Blank text is a no-op.
func (t *Tracker) AddGoal(text string) (models.Goal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Goal{}, false
	}

	goal := models.Goal{ID: t.nextID(), Text: text}
	t.state.Goals = append(t.state.Goals, goal)
	t.persist(constants.KeyGoals)
	return goal, true
}

// DeleteGoal removes a goal and clears the goal reference on every task
// that pointed at it.
func (t *Tracker) DeleteGoal(id int64) bool {
	found := false
	for i := range t.state.Goals {
		if t.state.Goals[i].ID == id {
			t.state.Goals = append(t.state.Goals[:i], t.state.Goals[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	unlinked := false
	for i := range t.state.Tasks {
		if t.state.Tasks[i].GoalID != nil && *t.state.Tasks[i].GoalID == id {
			t.state.Tasks[i].GoalID = nil
			unlinked = true
		}
	}

	t.persist(constants.KeyGoals)
	if unlinked {
		t.persist(constants.KeyTasks)
	}
	return true
}

// AddHabit creates a habit with no completions. Blank text is a no-op.
func (t *Tracker) AddHabit(text string) (models.Habit, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Habit{}, false
	}

	habit := models.Habit{
		ID:             t.nextID(),
		Text:           text,
		CompletedDates: []string{},
		Streak:         0,
	}
	t.state.Habits = append(t.state.Habits, habit)
	t.persist(constants.KeyHabits)
	return habit, true
}

// ToggleHabitToday marks or un-marks a habit for today.
//
// Marking adds today, bumps the stored streak by one and awards points;
// a streak hitting exactly the weekly target grants the week_streak
// badge. Un-marking removes today and recomputes the streak from the
// remaining dates. It is a correction path and revokes nothing.
func (t *Tracker) ToggleHabitToday(id int64) (models.Habit, Award, bool) {
	today := t.today()
	for i := range t.state.Habits {
		h := &t.state.Habits[i]
		if h.ID != id {
			continue
		}

		var award Award
		if !h.DoneOn(today) {
			h.CompletedDates = append(h.CompletedDates, today)
			h.Streak++
			t.persist(constants.KeyHabits)
			award = t.apply(t.engine.Evaluate(gamify.Event{
				Kind:   gamify.EventHabitChecked,
				Streak: h.Streak,
			}))
		} else {
			kept := h.CompletedDates[:0]
			for _, d := range h.CompletedDates {
				if d != today {
					kept = append(kept, d)
				}
			}
			h.CompletedDates = kept
			h.Streak = streak.Compute(h.CompletedDates)
			t.persist(constants.KeyHabits)
		}
		return *h, award, true
	}
	return models.Habit{}, Award{}, false
}

// AddJournalEntry appends an entry stamped with the current instant.
// Blank text is a no-op.
func (t *Tracker) AddJournalEntry(text string) (models.JournalEntry, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.JournalEntry{}, false
	}

	entry := models.JournalEntry{
		ID:        t.nextID(),
		Text:      text,
		CreatedAt: t.now(),
	}
	t.state.JournalEntries = append(t.state.JournalEntries, entry)
	t.persist(constants.KeyJournalEntries)
	return entry, true
}

// SetNotes overwrites the notes scalar. Last write wins, no history.
func (t *Tracker) SetNotes(text string) {
	t.state.Notes = text
	t.persist(constants.KeyNotes)
}

// AwardPoints adds to the running total outside the rule table. Current
// callers only pass positive amounts.
func (t *Tracker) AwardPoints(amount int) {
	t.state.Points += amount
	t.persist(constants.KeyPoints)
}

// AwardBadge grants a badge directly, reporting whether it was newly
// granted. Re-awarding a held id is a no-op.
func (t *Tracker) AwardBadge(b models.Badge) bool {
	if !t.grantBadge(b) {
		return false
	}
	t.persist(constants.KeyBadges)
	return true
}
