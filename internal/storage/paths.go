// Package storage persists user preferences and finished-game results.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chess2"

// EnvDataDir overrides the platform data directory when set.
const EnvDataDir = "CHESS2_DATA_DIR"

// baseDataDir picks the per-user application data root for the platform.
func baseDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support"), nil
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return filepath.Join(home, "AppData", "Roaming"), nil
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// GetDataDir returns the application data directory, creating it if needed:
// ~/Library/Application Support/chess2 on macOS, %APPDATA%\chess2 on
// Windows and $XDG_DATA_HOME/chess2 (or ~/.local/share/chess2) elsewhere.
func GetDataDir() (string, error) {
	dataDir := os.Getenv(EnvDataDir)
	if dataDir == "" {
		base, err := baseDataDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(base, appName)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// GetDatabaseDir returns the directory holding the BadgerDB files.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	log.Printf("[STORAGE] database directory: %s", dbDir)
	return dbDir, nil
}
