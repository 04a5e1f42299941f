package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/prodhub/internal/models"
)

type TaskAddCmd struct {
	Text     string `arg:"" optional:"" help:"Task text. Omit to fill in interactively."`
	Category string `short:"c" help:"Category (work|personal|health|other)." default:"other"`
	Goal     string `short:"g" help:"Link to a goal by its text."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if c.Text == "" {
		if err := c.promptForm(ctx); err != nil {
			return err
		}
	}

	var goalID *int64
	if c.Goal != "" && c.Goal != "No Goal" {
		goal, ok := findGoalByText(t.State(), c.Goal)
		if !ok {
			return fmt.Errorf("no goal with text %q", c.Goal)
		}
		goalID = &goal.ID
	}

	task, award, ok := t.AddTask(c.Text, models.Category(c.Category), goalID)
	if !ok {
		// Blank text is a deliberate no-op, not an error
		return nil
	}

	fmt.Printf("Added task: %s (ID: %d)\n", task.Text, task.ID)
	announceAwards(award)
	return nil
}

func (c *TaskAddCmd) promptForm(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	categoryOptions := make([]huh.Option[string], 0, len(models.Categories))
	for _, cat := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(cat), string(cat)))
	}

	goalOptions := []huh.Option[string]{huh.NewOption("No Goal", "")}
	for _, g := range t.State().Goals {
		goalOptions = append(goalOptions, huh.NewOption(g.Text, g.Text))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(&c.Text),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&c.Category),
			huh.NewSelect[string]().
				Title("Goal").
				Options(goalOptions...).
				Value(&c.Goal),
		),
	)

	return form.Run()
}

type TaskListCmd struct {
	Category string `short:"c" help:"Only show tasks in this category."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	st := t.State()
	shown := 0
	for _, task := range st.Tasks {
		if c.Category != "" && string(task.Category) != c.Category {
			continue
		}
		mark := " "
		if task.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %d  %s  (%s", mark, task.ID, task.Text, task.Category)
		if name := goalName(st, task.GoalID); name != "" {
			line += ", goal: " + name
		}
		line += ")"
		fmt.Println(line)
		shown++
	}

	if shown == 0 {
		fmt.Println("No tasks found.")
	}
	return nil
}

type TaskToggleCmd struct {
	ID int64 `arg:"" help:"Task ID."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	task, award, ok := t.ToggleTask(c.ID)
	if !ok {
		fmt.Printf("No task with ID %d\n", c.ID)
		return nil
	}

	if task.Completed {
		fmt.Printf("Completed: %s\n", task.Text)
	} else {
		fmt.Printf("Reopened: %s\n", task.Text)
	}
	announceAwards(award)
	return nil
}

type TaskDeleteCmd struct {
	ID int64 `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if !t.DeleteTask(c.ID) {
		fmt.Printf("No task with ID %d\n", c.ID)
		return nil
	}
	fmt.Printf("Deleted task %d\n", c.ID)
	return nil
}
