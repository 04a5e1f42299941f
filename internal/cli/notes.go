package cli

import "fmt"

type NotesShowCmd struct{}

func (c *NotesShowCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	notes := t.State().Notes
	if notes == "" {
		fmt.Println("No notes.")
		return nil
	}
	fmt.Println(notes)
	return nil
}

type NotesSetCmd struct {
	Text string `arg:"" help:"Notes text. Overwrites existing notes."`
}

func (c *NotesSetCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	t.SetNotes(c.Text)
	fmt.Println("Notes saved.")
	return nil
}
