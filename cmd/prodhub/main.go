package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/prodhub/internal/cli"
	"github.com/julianstephens/prodhub/internal/constants"
	apperrors "github.com/julianstephens/prodhub/internal/errors"
	"github.com/julianstephens/prodhub/internal/keyring"
	"github.com/julianstephens/prodhub/internal/logger"
	"github.com/julianstephens/prodhub/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/prodhub/prodhub.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init cli.InitCmd `cmd:"" help:"Initialize prodhub storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks."`
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Goal struct {
		Add    cli.GoalAddCmd    `cmd:"" help:"Add a new goal."`
		List   cli.GoalListCmd   `cmd:"" help:"List goals."`
		Delete cli.GoalDeleteCmd `cmd:"" help:"Delete a goal."`
	} `cmd:"" help:"Manage goals."`
	Habit struct {
		Add   cli.HabitAddCmd   `cmd:"" help:"Add a new habit."`
		List  cli.HabitListCmd  `cmd:"" help:"List habits."`
		Check cli.HabitCheckCmd `cmd:"" help:"Toggle a habit's check for today."`
	} `cmd:"" help:"Manage habits."`
	Journal struct {
		Add  cli.JournalAddCmd  `cmd:"" help:"Write a journal entry."`
		List cli.JournalListCmd `cmd:"" help:"List journal entries."`
	} `cmd:"" help:"Manage the journal."`
	Notes struct {
		Show cli.NotesShowCmd `cmd:"" help:"Show the scratchpad." default:"1"`
		Set  cli.NotesSetCmd  `cmd:"" help:"Replace the scratchpad."`
	} `cmd:"" help:"Manage the notes scratchpad."`
	Stats   cli.StatsCmd      `cmd:"" help:"Show today's stats and 7-day history."`
	Badges  cli.BadgesCmd     `cmd:"" help:"List earned badges."`
	Export  cli.ExportCmd     `cmd:"" help:"Export state to a JSON backup."`
	Backups cli.BackupListCmd `cmd:"" help:"List existing backups."`
	Restore cli.RestoreCmd    `cmd:"" help:"Restore state from a backup file."`
	Import  cli.ImportCmd     `cmd:"" help:"Import goals, tasks and habits from YAML."`
	Keyring struct {
		Set   cli.KeyringSetCmd   `cmd:"" help:"Store the Postgres connection string."`
		Show  cli.KeyringShowCmd  `cmd:"" help:"Show the stored connection string."`
		Clear cli.KeyringClearCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage keyring credentials."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run storage and data health checks."`
}

func main() {
	// A .env next to the binary or in the working dir can set PRODHUB_* vars
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity tracker with tasks, habits, goals and streaks"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configPath := CLI.Config
	if env := os.Getenv(constants.DBEnvVar); env != "" {
		configPath = env
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not set up file logging: %v\n", err)
	}

	store, err := openStore(configPath)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	err = ctx.Run(appCtx)
	store.Close()
	if err != nil {
		apperrors.Fatal(err)
	}
}

// openStore picks a backend from the config path shape: "postgres" or a
// postgres:// DSN selects Postgres, a .json path selects the flat file
// store, anything else is treated as a SQLite database path.
func openStore(configPath string) (storage.Provider, error) {
	switch {
	case configPath == "postgres" || strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://"):
		dsn := configPath
		if dsn == "postgres" {
			dsn = os.Getenv(constants.PostgresDSNEnvVar)
			if dsn == "" {
				var err error
				dsn, err = keyring.GetConnectionString()
				if err != nil {
					return nil, fmt.Errorf("no Postgres DSN found: set %s or run '%s keyring set': %w",
						constants.PostgresDSNEnvVar, constants.AppName, err)
				}
			}
		}
		return storage.NewPostgresStore(dsn), nil
	case strings.HasSuffix(configPath, ".json"):
		return storage.NewJSONStore(configPath), nil
	default:
		return storage.NewSQLiteStore(configPath), nil
	}
}
