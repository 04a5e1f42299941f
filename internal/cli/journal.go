package cli

import (
	"fmt"
	"time"
)

type JournalAddCmd struct {
	Text string `arg:"" help:"Entry text."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	entry, ok := t.AddJournalEntry(c.Text)
	if !ok {
		return nil
	}
	fmt.Printf("Journal entry saved (ID: %d)\n", entry.ID)
	return nil
}

type JournalListCmd struct {
	Limit int `short:"n" help:"Show at most this many entries." default:"10"`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	entries := t.State().JournalEntries
	if len(entries) == 0 {
		fmt.Println("No entries yet. Start writing!")
		return nil
	}

	// Latest first
	shown := 0
	for i := len(entries) - 1; i >= 0 && shown < c.Limit; i-- {
		e := entries[i]
		fmt.Printf("%s\n%s\n\n", e.CreatedAt.Format(time.RFC1123), e.Text)
		shown++
	}
	return nil
}
