package cli

import (
	"fmt"

	"github.com/julianstephens/prodhub/internal/export"
)

type ExportCmd struct {
	Out string `short:"o" help:"Write the backup to this path instead of the backup directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	doc := export.Snapshot(t.State())
	mgr := export.NewManager(ctx.Store.GetConfigPath())

	if c.Out != "" {
		if err := mgr.WriteTo(c.Out, doc); err != nil {
			return err
		}
		fmt.Printf("Exported data to %s\n", c.Out)
		return nil
	}

	path, err := mgr.Write(doc)
	if err != nil {
		return err
	}
	fmt.Printf("Exported data to %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := export.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  (%d bytes)\n", b.Path, b.Size)
	}
	return nil
}

type RestoreCmd struct {
	File string `arg:"" type:"existingfile" help:"Backup document to restore from."`
}

func (c *RestoreCmd) Run(ctx *Context) error {
	doc, err := export.Read(c.File)
	if err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := export.Restore(ctx.Store, doc); err != nil {
		return err
	}

	fmt.Printf("Restored %d tasks, %d habits, %d goals, %d journal entries\n",
		len(doc.Tasks), len(doc.Habits), len(doc.Goals), len(doc.JournalEntries))
	return nil
}
