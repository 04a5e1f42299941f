package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/tracker"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateTasks
	StateHabits
	StateGoals
	StateJournal
	StateNotes
	StateTimer
)

var tabTitles = []string{"Home", "Tasks", "Habits", "Goals", "Journal", "Notes", "Timer"}

// taskFilters cycles through "" (all) plus the known categories.
var taskFilters = []models.Category{"", models.CategoryWork, models.CategoryPersonal, models.CategoryHealth, models.CategoryOther}

type Model struct {
	tracker *tracker.Tracker

	state    SessionState
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool

	// add-entry input shared by the tasks/habits/goals tabs
	adding bool
	input  textinput.Model

	// journal adds use a multi-line editor
	journal textarea.Model

	// notes save on every keystroke (last write wins)
	notes textarea.Model

	cursorTasks  int
	cursorHabits int
	cursorGoals  int
	filterIdx    int

	timer     timerModel
	focusMode bool

	status string
}

func NewModel(t *tracker.Tracker) Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 200

	journal := textarea.New()
	journal.Placeholder = "Write about your day..."

	notes := textarea.New()
	notes.Placeholder = "Quick notes..."
	notes.SetValue(t.State().Notes)

	return Model{
		tracker: t,
		state:   StateHome,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   input,
		journal: journal,
		notes:   notes,
		timer:   newTimerModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// visibleTasks applies the current category filter.
func (m Model) visibleTasks() []models.Task {
	filter := taskFilters[m.filterIdx]
	if filter == "" {
		return m.tracker.State().Tasks
	}
	var tasks []models.Task
	for _, task := range m.tracker.State().Tasks {
		if task.Category == filter {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

func clampCursor(cursor, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
