package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/prodhub/internal/constants"
	"github.com/julianstephens/prodhub/internal/derive"
	"github.com/julianstephens/prodhub/internal/quotes"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.focusMode {
		return m.viewFocus()
	}

	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.state {
	case StateHome:
		b.WriteString(m.viewHome())
	case StateTasks:
		b.WriteString(m.viewTasks())
	case StateHabits:
		b.WriteString(m.viewHabits())
	case StateGoals:
		b.WriteString(m.viewGoals())
	case StateJournal:
		b.WriteString(m.viewJournal())
	case StateNotes:
		b.WriteString(m.viewNotes())
	case StateTimer:
		b.WriteString(m.viewTimer())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if SessionState(i) == m.state {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = inactiveTabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	st := m.tracker.State()
	now := m.tracker.Now()
	stats := derive.Today(st, now.Format(constants.DateFormat))

	var b strings.Builder
	b.WriteString(titleStyle.Render(now.Format("Monday, January 2, 2006")))
	b.WriteString("\n\n")
	b.WriteString(quoteStyle.Render(quotes.Daily(now)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Tasks left today: %d\n", stats.TasksLeft))
	b.WriteString(fmt.Sprintf("Completed today:  %d\n", stats.TasksCompleted))
	b.WriteString(fmt.Sprintf("Total points:     %d\n", stats.TotalPoints))

	if len(st.Badges) > 0 {
		b.WriteString("\nBadges: ")
		for _, badge := range st.Badges {
			b.WriteString(badge.Icon + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Last 7 Days"))
	b.WriteString("\n")
	for _, dc := range derive.Last7Days(st, now) {
		bar := barStyle.Render(strings.Repeat("█", dc.Completed))
		b.WriteString(fmt.Sprintf("%s %s %d\n", mutedStyle.Render(dc.Label), bar, dc.Completed))
	}

	return b.String()
}

func (m Model) viewTasks() string {
	tasks := m.visibleTasks()

	var b strings.Builder
	filter := taskFilters[m.filterIdx]
	if filter == "" {
		b.WriteString(titleStyle.Render("Tasks"))
	} else {
		b.WriteString(titleStyle.Render("Tasks") + mutedStyle.Render(fmt.Sprintf(" (%s)", filter)))
	}
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(mutedStyle.Render("No tasks yet. Press 'a' to add one."))
	}
	for i, task := range tasks {
		cursor := "  "
		if i == m.cursorTasks {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		text := task.Text
		if task.Completed {
			check = "[x]"
			text = doneStyle.Render(text)
		}
		meta := string(task.Category)
		if name := m.goalName(task.GoalID); name != "" {
			meta += " · " + name
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, check, text, mutedStyle.Render(meta))
		b.WriteString(line + "\n")
	}

	if m.adding {
		b.WriteString("\n" + m.input.View())
	}

	return b.String()
}

func (m Model) goalName(goalID *int64) string {
	if goalID == nil {
		return ""
	}
	for _, g := range m.tracker.State().Goals {
		if g.ID == *goalID {
			return g.Text
		}
	}
	return ""
}

func (m Model) viewHabits() string {
	habits := m.tracker.State().Habits
	today := m.tracker.Now().Format(constants.DateFormat)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Habits"))
	b.WriteString("\n\n")

	if len(habits) == 0 {
		b.WriteString(mutedStyle.Render("No habits yet. Press 'a' to add one."))
	}
	for i, habit := range habits {
		cursor := "  "
		if i == m.cursorHabits {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if habit.DoneOn(today) {
			check = "[x]"
		}
		streak := ""
		if habit.Streak > 0 {
			streak = streakStyle.Render(fmt.Sprintf(" 🔥 %d", habit.Streak))
		}
		b.WriteString(fmt.Sprintf("%s%s %s%s\n", cursor, check, habit.Text, streak))
	}

	if m.adding {
		b.WriteString("\n" + m.input.View())
	}

	return b.String()
}

func (m Model) viewGoals() string {
	st := m.tracker.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Goals"))
	b.WriteString("\n\n")

	if len(st.Goals) == 0 {
		b.WriteString(mutedStyle.Render("No goals yet. Press 'a' to add one."))
	}
	for i, goal := range st.Goals {
		cursor := "  "
		if i == m.cursorGoals {
			cursor = cursorStyle.Render("> ")
		}
		count := derive.TaskCountForGoal(st, goal.ID)
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, goal.Text, mutedStyle.Render(fmt.Sprintf("(%d tasks)", count))))
	}

	if m.adding {
		b.WriteString("\n" + m.input.View())
	}

	return b.String()
}

func (m Model) viewJournal() string {
	entries := m.tracker.State().JournalEntries

	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal"))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(m.journal.View())
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("ctrl+s save, esc cancel"))
		return b.String()
	}

	if len(entries) == 0 {
		b.WriteString(mutedStyle.Render("No entries yet. Press 'a' to write one."))
	}
	// newest first
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		b.WriteString(mutedStyle.Render(entry.CreatedAt.Format("Mon Jan 2 15:04")))
		b.WriteString("\n")
		b.WriteString(entry.Text)
		b.WriteString("\n\n")
	}

	return b.String()
}

func (m Model) viewNotes() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes"))
	b.WriteString(mutedStyle.Render("  (saved as you type)"))
	b.WriteString("\n\n")
	b.WriteString(m.notes.View())
	return b.String()
}

func (m Model) viewTimer() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pomodoro"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s\n\n", m.timer.phase()))
	b.WriteString(titleStyle.Render(m.timer.display()))
	b.WriteString("\n\n")
	if m.timer.running {
		b.WriteString(mutedStyle.Render("p pause, r reset, f focus mode"))
	} else {
		b.WriteString(mutedStyle.Render("s start, r reset, f focus mode"))
	}
	return b.String()
}

func (m Model) viewFocus() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Focus Mode"),
		"",
		titleStyle.Render(m.timer.display()),
		"",
		quoteStyle.Render(quotes.Daily(m.tracker.Now())),
		"",
		mutedStyle.Render("esc to leave"),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
