package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "vista"

// configFileName is the file Parse reads when no explicit path is given.
const configFileName = "vista.conf"

// ConfigDir returns the platform-specific config directory.
// Unix: $XDG_CONFIG_HOME/vista or ~/.config/vista
// Windows: %APPDATA%\vista
func ConfigDir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, appName), nil
}

// DefaultConfigPath returns the configuration file the monitor reads when
// no -f flag is given.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}
