package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/prodhub/internal/importer"
)

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file with goals, tasks and habits."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	res, err := importer.Import(t, string(data))
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d goals, %d tasks, %d habits\n", res.Goals, res.Tasks, res.Habits)
	return nil
}
