package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/prodhub/internal/constants"
	"github.com/julianstephens/prodhub/internal/derive"
	"github.com/julianstephens/prodhub/internal/quotes"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	st := t.State()
	now := t.Now()
	stats := derive.Today(st, now.Format(constants.DateFormat))

	fmt.Println(now.Format("Monday, January 2, 2006"))
	fmt.Printf("%q\n\n", quotes.Daily(now))
	fmt.Printf("Tasks left today:      %d\n", stats.TasksLeft)
	fmt.Printf("Tasks completed today: %d\n", stats.TasksCompleted)
	fmt.Printf("Total points:          %d\n\n", stats.TotalPoints)

	fmt.Println("Tasks completed, last 7 days:")
	for _, day := range derive.Last7Days(st, now) {
		fmt.Printf("  %s  %-20s %d\n", day.Label, strings.Repeat("█", day.Completed), day.Completed)
	}
	return nil
}

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	badges := t.State().Badges
	if len(badges) == 0 {
		fmt.Println("Complete tasks to earn badges!")
		return nil
	}
	for _, b := range badges {
		fmt.Printf("%s %s\n", b.Icon, b.Name)
	}
	return nil
}
