package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/tracker"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.notes.SetWidth(msg.Width - 6)
		m.notes.SetHeight(msg.Height - 8)
		m.journal.SetWidth(msg.Width - 6)
		return m, nil

	case tickMsg:
		return m.updateTick(msg)

	case tea.KeyMsg:
		if m.focusMode {
			return m.updateFocusMode(msg)
		}
		if m.adding {
			return m.updateAdding(msg)
		}
		if m.state == StateNotes {
			return m.updateNotes(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateTick(msg tickMsg) (tea.Model, tea.Cmd) {
	// A stale tick from a stopped timer carries an old sequence number
	if !m.timer.running || msg.seq != m.timer.seq {
		return m, nil
	}

	if m.timer.advance() {
		if m.focusMode {
			m.focusMode = false
			m.timer.reset()
			m.status = "Focus session over! Great job."
			return m, nil
		}
		if m.timer.isBreak {
			m.status = "Time for a break!"
		} else {
			m.status = "Break over!"
		}
	}
	return m, m.timer.tick()
}

func (m Model) updateFocusMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.focusMode = false
		m.timer.reset()
		return m, nil
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == StateJournal {
		switch msg.String() {
		case "ctrl+s":
			if entry, ok := m.tracker.AddJournalEntry(m.journal.Value()); ok {
				m.status = fmt.Sprintf("Journal entry saved (%s)", entry.CreatedAt.Format("15:04"))
			}
			m.adding = false
			m.journal.Reset()
			m.journal.Blur()
			return m, nil
		case "esc":
			m.adding = false
			m.journal.Reset()
			m.journal.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.journal, cmd = m.journal.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		m.commitAdd()
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case "esc":
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitAdd() {
	text := m.input.Value()
	switch m.state {
	case StateTasks:
		category := taskFilters[m.filterIdx]
		if category == "" {
			category = models.CategoryOther
		}
		if _, award, ok := m.tracker.AddTask(text, category, nil); ok {
			m.status = "Task added."
			m.applyAwardStatus(award)
		}
	case StateHabits:
		if _, ok := m.tracker.AddHabit(text); ok {
			m.status = "Habit added."
		}
	case StateGoals:
		if _, ok := m.tracker.AddGoal(text); ok {
			m.status = "Goal added."
		}
	}
}

func (m Model) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.notes.Blur()
		m.state = (m.state + 1) % SessionState(len(tabTitles))
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.notes.Blur()
		m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.notes.Blur()
		m.state = StateHome
		return m, nil
	}

	if !m.notes.Focused() {
		cmd := m.notes.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	m.tracker.SetNotes(m.notes.Value())
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.status = ""
		m.state = (m.state + 1) % SessionState(len(tabTitles))
		if m.state == StateNotes {
			return m, m.notes.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.status = ""
		m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
		if m.state == StateNotes {
			return m, m.notes.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case StateTasks:
		return m.updateTasksKeys(msg)
	case StateHabits:
		return m.updateHabitsKeys(msg)
	case StateGoals:
		return m.updateGoalsKeys(msg)
	case StateJournal:
		if key.Matches(msg, m.keys.Add) {
			m.adding = true
			return m, m.journal.Focus()
		}
	case StateTimer:
		return m.updateTimerKeys(msg)
	}

	return m, nil
}

func (m Model) updateTasksKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.visibleTasks()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursorTasks = clampCursor(m.cursorTasks-1, len(tasks))
	case key.Matches(msg, m.keys.Down):
		m.cursorTasks = clampCursor(m.cursorTasks+1, len(tasks))
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Filter):
		m.filterIdx = (m.filterIdx + 1) % len(taskFilters)
		m.cursorTasks = 0
	case key.Matches(msg, m.keys.Toggle):
		if len(tasks) > 0 {
			m.cursorTasks = clampCursor(m.cursorTasks, len(tasks))
			_, award, _ := m.tracker.ToggleTask(tasks[m.cursorTasks].ID)
			m.applyAwardStatus(award)
		}
	case key.Matches(msg, m.keys.Delete):
		if len(tasks) > 0 {
			m.cursorTasks = clampCursor(m.cursorTasks, len(tasks))
			m.tracker.DeleteTask(tasks[m.cursorTasks].ID)
			m.cursorTasks = clampCursor(m.cursorTasks, len(tasks)-1)
		}
	}
	return m, nil
}

func (m Model) updateHabitsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	habits := m.tracker.State().Habits
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursorHabits = clampCursor(m.cursorHabits-1, len(habits))
	case key.Matches(msg, m.keys.Down):
		m.cursorHabits = clampCursor(m.cursorHabits+1, len(habits))
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if len(habits) > 0 {
			m.cursorHabits = clampCursor(m.cursorHabits, len(habits))
			_, award, _ := m.tracker.ToggleHabitToday(habits[m.cursorHabits].ID)
			m.applyAwardStatus(award)
		}
	}
	return m, nil
}

func (m Model) updateGoalsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	goals := m.tracker.State().Goals
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursorGoals = clampCursor(m.cursorGoals-1, len(goals))
	case key.Matches(msg, m.keys.Down):
		m.cursorGoals = clampCursor(m.cursorGoals+1, len(goals))
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Delete):
		if len(goals) > 0 {
			m.cursorGoals = clampCursor(m.cursorGoals, len(goals))
			m.tracker.DeleteGoal(goals[m.cursorGoals].ID)
			m.cursorGoals = clampCursor(m.cursorGoals, len(goals)-1)
			m.status = "Goal deleted; linked tasks unlinked."
		}
	}
	return m, nil
}

func (m Model) updateTimerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		return m, m.timer.start()
	case key.Matches(msg, m.keys.Pause):
		m.timer.pause()
	case key.Matches(msg, m.keys.Reset):
		m.timer.reset()
	case key.Matches(msg, m.keys.Focus):
		m.focusMode = true
		m.timer.reset()
		return m, m.timer.start()
	}
	return m, nil
}

func (m *Model) applyAwardStatus(award tracker.Award) {
	for _, b := range award.Badges {
		m.status = fmt.Sprintf("Congratulations! You've earned the %q badge! %s", b.Name, b.Icon)
		return
	}
	if award.Points > 0 {
		m.status = fmt.Sprintf("+%d points", award.Points)
	}
}
