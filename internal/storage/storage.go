package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore resolves calendar dates to daily postmortem files laid out as
// <root>/<year>/<month>/Daily Postmortem-<YYYY-MM-DD>.txt.
type FileStore struct {
	Root string
}

// DefaultRoot returns the default report directory (~/Postmortems).
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, "Postmortems"), nil
}

// DayPath returns the file path for the given date's report.
func (s FileStore) DayPath(day time.Time) string {
	name := "Daily Postmortem-" + day.Format("2006-01-02") + ".txt"
	return filepath.Join(s.Root, day.Format("2006"), day.Format("01"), name)
}

// ReadDay returns the raw text of the given date's report. ok is false
// when no report exists; that is not an error.
func (s FileStore) ReadDay(day time.Time) (string, bool, error) {
	path := s.DayPath(day)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	return string(data), true, nil
}

// dayTemplate is written when a new day file is created. The field labels
// match the patterns the report parser recognizes.
const dayTemplate = `Daily Postmortem %s

Arrival Time:
Departure Time:
Lunch/Breaks:

Accomplished:
-
`

// CreateDay creates the given date's report from the template, creating
// parent directories as needed. It refuses to overwrite an existing
// report and returns its path either way; created reports whether the
// file was newly written.
func (s FileStore) CreateDay(day time.Time) (path string, created bool, err error) {
	path = s.DayPath(day)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return path, false, fmt.Errorf("storage error checking %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return path, false, fmt.Errorf("storage error creating directories: %w", err)
	}
	content := fmt.Sprintf(dayTemplate, day.Format("2006-01-02"))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return path, false, fmt.Errorf("storage error writing %s: %w", path, err)
	}
	return path, true, nil
}
