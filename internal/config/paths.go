package config

import (
	"os"
	"path/filepath"
)

// GetMamaHome returns MAMA_HOME or ~/.mama default
func GetMamaHome() string {
	mamaHome := os.Getenv("MAMA_HOME")
	if mamaHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".mama"
		}
		return filepath.Join(homeDir, ".mama")
	}
	return ExpandPath(mamaHome)
}

// GetDBPath returns $MAMA_HOME/mama.db
func GetDBPath() string {
	return filepath.Join(GetMamaHome(), "mama.db")
}

// GetSettingsPath returns $MAMA_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetMamaHome(), "settings.json")
}

// GetLockPath returns $MAMA_HOME/mama.lock
func GetLockPath() string {
	return filepath.Join(GetMamaHome(), "mama.lock")
}

// GetSSHDir returns $MAMA_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetMamaHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
