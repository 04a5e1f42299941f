package cli

import (
	"fmt"

	"github.com/julianstephens/prodhub/internal/constants"
)

type HabitAddCmd struct {
	Text string `arg:"" help:"Habit text."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, ok := t.AddHabit(c.Text)
	if !ok {
		return nil
	}
	fmt.Printf("Added habit: %s (ID: %d)\n", habit.Text, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	st := t.State()
	if len(st.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := t.Now().Format(constants.DateFormat)
	for _, h := range st.Habits {
		done := " "
		if h.DoneOn(today) {
			done = "x"
		}
		fmt.Printf("[%s] %d  %s  (%d day streak)\n", done, h.ID, h.Text, h.Streak)
	}
	return nil
}

type HabitCheckCmd struct {
	ID int64 `arg:"" help:"Habit ID."`
}

func (c *HabitCheckCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, award, ok := t.ToggleHabitToday(c.ID)
	if !ok {
		fmt.Printf("No habit with ID %d\n", c.ID)
		return nil
	}

	today := t.Now().Format(constants.DateFormat)
	if habit.DoneOn(today) {
		fmt.Printf("Done for today: %s (%d day streak)\n", habit.Text, habit.Streak)
	} else {
		fmt.Printf("Unmarked for today: %s (%d day streak)\n", habit.Text, habit.Streak)
	}
	announceAwards(award)
	return nil
}
