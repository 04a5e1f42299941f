package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/prodhub/internal/constants"
	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/storage"
	"github.com/julianstephens/prodhub/internal/tracker"
)

// Document is the backup format: a single JSON object mirroring the live
// in-memory state field for field.
type Document struct {
	Tasks          []models.Task         `json:"tasks"`
	Habits         []models.Habit        `json:"habits"`
	Goals          []models.Goal         `json:"goals"`
	JournalEntries []models.JournalEntry `json:"journalEntries"`
	Notes          string                `json:"notes"`
	Points         int                   `json:"points"`
	Badges         []models.Badge        `json:"badges"`
}

// Snapshot captures the current state into a document. Nil collections
// are exported as empty lists so the document round-trips cleanly.
func Snapshot(st *tracker.State) Document {
	doc := Document{
		Tasks:          st.Tasks,
		Habits:         st.Habits,
		Goals:          st.Goals,
		JournalEntries: st.JournalEntries,
		Notes:          st.Notes,
		Points:         st.Points,
		Badges:         st.Badges,
	}
	if doc.Tasks == nil {
		doc.Tasks = []models.Task{}
	}
	if doc.Habits == nil {
		doc.Habits = []models.Habit{}
	}
	if doc.Goals == nil {
		doc.Goals = []models.Goal{}
	}
	if doc.JournalEntries == nil {
		doc.JournalEntries = []models.JournalEntry{}
	}
	if doc.Badges == nil {
		doc.Badges = []models.Badge{}
	}
	return doc
}

// FileName returns the canonical backup name for a day:
// productivity-hub-backup-<ISO-date>.json.
func FileName(now time.Time) string {
	return fmt.Sprintf("%s%s%s",
		constants.BackupFilePrefix, now.Format(constants.DateFormat), constants.BackupFileSuffix)
}

// Restore replays a document into a provider key by key, exactly as the
// tracker would have persisted it.
func Restore(store storage.Provider, doc Document) error {
	writes := []struct {
		key   string
		value any
	}{
		{constants.KeyTasks, doc.Tasks},
		{constants.KeyHabits, doc.Habits},
		{constants.KeyGoals, doc.Goals},
		{constants.KeyJournalEntries, doc.JournalEntries},
		{constants.KeyNotes, doc.Notes},
		{constants.KeyPoints, doc.Points},
		{constants.KeyBadges, doc.Badges},
	}
	for _, w := range writes {
		if err := store.Set(w.key, w.value); err != nil {
			return fmt.Errorf("failed to restore %q: %w", w.key, err)
		}
	}
	return nil
}

// Read parses a backup document from disk.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read backup: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse backup: %w", err)
	}
	return doc, nil
}

// Info describes one backup file on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager writes dated backup documents into a directory and keeps the
// retention window trimmed.
type Manager struct {
	backupDir string
	now       func() time.Time
}

// NewManager derives the backup directory from the config path, matching
// where the stores keep their data.
func NewManager(configPath string) *Manager {
	return &Manager{
		backupDir: filepath.Join(filepath.Dir(configPath), constants.BackupDirName),
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path.
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// Write stores the document under the canonical dated name. A second
// backup the same day gets a time suffix, then a counter.
func (m *Manager) Write(doc Document) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(m.backupDir, FileName(m.now()))
	if _, err := os.Stat(path); err == nil {
		name := fmt.Sprintf("%s%s%s",
			constants.BackupFilePrefix, m.now().Format("2006-01-02-150405"), constants.BackupFileSuffix)
		path = filepath.Join(m.backupDir, name)

		counter := 1
		for {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				break
			}
			name = fmt.Sprintf("%s%s-%d%s",
				constants.BackupFilePrefix, m.now().Format("2006-01-02-150405"), counter, constants.BackupFileSuffix)
			path = filepath.Join(m.backupDir, name)
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := m.writeDocument(path, doc); err != nil {
		return "", err
	}

	if err := m.rotateBackups(); err != nil {
		// Rotation failure doesn't invalidate the backup just written
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return path, nil
}

// WriteTo stores the document at an explicit path, bypassing the backup
// directory and rotation.
func (m *Manager) WriteTo(path string, doc Document) error {
	return m.writeDocument(path, doc)
}

func (m *Manager) writeDocument(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// ListBackups returns all backups in the backup directory, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		stamp := strings.TrimPrefix(name, constants.BackupFilePrefix)
		stamp = strings.TrimSuffix(stamp, constants.BackupFileSuffix)

		timestamp, ok := parseStamp(stamp)
		if !ok {
			// Retry without a trailing -N collision counter
			if idx := strings.LastIndex(stamp, "-"); idx > 0 && isDigits(stamp[idx+1:]) {
				timestamp, ok = parseStamp(stamp[:idx])
			}
			if !ok {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

func parseStamp(stamp string) (time.Time, bool) {
	if t, err := time.Parse(constants.DateFormat, stamp); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02-150405", stamp); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
