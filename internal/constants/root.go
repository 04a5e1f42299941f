package constants

const (
	AppName            = "prodhub"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/prodhub/prodhub.db"
	Version            = "v0.3.0"

	// DBEnvVar overrides the default config path when set (loaded via .env too)
	DBEnvVar = "PRODHUB_DB"
	// PostgresDSNEnvVar supplies the Postgres connection string directly
	PostgresDSNEnvVar = "PRODHUB_PG_DSN"

	// DateFormat is the standard calendar-date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys. Each holds the JSON-serialized form of its collection or scalar.
	KeyTasks          = "tasks"
	KeyHabits         = "habits"
	KeyGoals          = "goals"
	KeyJournalEntries = "journalEntries"
	KeyNotes          = "notes"
	KeyPoints         = "points"
	KeyBadges         = "badges"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "productivity-hub-backup-"
	BackupFileSuffix = ".json"

	// Points awarded by the gamification rules
	PointsTaskCompleted = 10
	PointsHabitChecked  = 15

	// WeekStreakTarget is the streak length that unlocks the week_streak badge
	WeekStreakTarget = 7

	// Focus timer phases, in minutes
	TimerWorkMin  = 25
	TimerBreakMin = 5
)

// StorageKeys lists every persisted key, in load order.
var StorageKeys = []string{
	KeyTasks, KeyHabits, KeyGoals, KeyJournalEntries, KeyNotes, KeyPoints, KeyBadges,
}
