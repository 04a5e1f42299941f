package cli

import (
	"fmt"

	"github.com/julianstephens/prodhub/internal/derive"
)

type GoalAddCmd struct {
	Text string `arg:"" help:"Goal text."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	goal, ok := t.AddGoal(c.Text)
	if !ok {
		return nil
	}
	fmt.Printf("Added goal: %s (ID: %d)\n", goal.Text, goal.ID)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	st := t.State()
	if len(st.Goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}
	for _, g := range st.Goals {
		fmt.Printf("%d  %s  (%d tasks linked)\n", g.ID, g.Text, derive.TaskCountForGoal(st, g.ID))
	}
	return nil
}

type GoalDeleteCmd struct {
	ID int64 `arg:"" help:"Goal ID."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if !t.DeleteGoal(c.ID) {
		fmt.Printf("No goal with ID %d\n", c.ID)
		return nil
	}
	fmt.Printf("Deleted goal %d (linked tasks unlinked)\n", c.ID)
	return nil
}
