package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dataFileName     = ".macro_tracker.json"
	sessionsFileName = ".coding_dashboard.json"
)

// DefaultDataPath is the macro document shared by the tracker and the dashboard.
func DefaultDataPath() (string, error) {
	return homeFile(dataFileName)
}

func DefaultSessionsPath() (string, error) {
	return homeFile(sessionsFileName)
}

// DefaultBackupDir keeps backups next to the data file.
func DefaultBackupDir(dataPath string) string {
	return filepath.Join(filepath.Dir(dataPath), ".habit-hub-backups")
}

func homeFile(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home dir: %w", err)
	}
	return filepath.Join(home, name), nil
}
