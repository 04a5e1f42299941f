package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/prodhub/internal/constants"
)

// tickMsg carries the sequence number it was scheduled under. Stopping
// the timer bumps the sequence, so a tick already in flight when the user
// stops (or leaves focus mode) is discarded instead of firing late.
type tickMsg struct {
	seq int
}

type timerModel struct {
	running   bool
	isBreak   bool
	remaining int // seconds
	seq       int
}

func newTimerModel() timerModel {
	return timerModel{remaining: constants.TimerWorkMin * 60}
}

func (t timerModel) tick() tea.Cmd {
	seq := t.seq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (t *timerModel) start() tea.Cmd {
	if t.running {
		return nil
	}
	t.running = true
	t.seq++
	return t.tick()
}

func (t *timerModel) pause() {
	t.running = false
	t.seq++
}

func (t *timerModel) reset() {
	t.pause()
	t.isBreak = false
	t.remaining = constants.TimerWorkMin * 60
}

// advance consumes one second and reports whether the phase flipped.
func (t *timerModel) advance() (phaseDone bool) {
	t.remaining--
	if t.remaining >= 0 {
		return false
	}
	t.isBreak = !t.isBreak
	if t.isBreak {
		t.remaining = constants.TimerBreakMin * 60
	} else {
		t.remaining = constants.TimerWorkMin * 60
	}
	return true
}

func (t timerModel) phase() string {
	if t.isBreak {
		return "Break Time"
	}
	return "Work Time"
}

func (t timerModel) display() string {
	r := t.remaining
	if r < 0 {
		r = 0
	}
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}
