package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "dlhist"

// GetDir returns the per-user configuration directory
func GetDir() string {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return filepath.Join(appData, appName)
	case "darwin": // MacOS
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", appName)
	default: // Linux
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, _ := os.UserHomeDir()
			configHome = filepath.Join(home, ".config")
		}
		return filepath.Join(configHome, appName)
	}
}

// Returns directory for logs
func GetLogsDir() string {
	return filepath.Join(GetDir(), "logs")
}

// DefaultConfigPath is where the config file is looked up without --config
func DefaultConfigPath() string {
	return filepath.Join(GetDir(), "config.yaml")
}

// GetJournalPath is the run journal database
func GetJournalPath() string {
	return filepath.Join(GetDir(), "runs.db")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	for _, dir := range []string{GetDir(), GetLogsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
