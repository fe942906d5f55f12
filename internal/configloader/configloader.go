package configloader

import (
	"errors"
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "SDKGEIST_CONFIG"

// ErrNoConfig is returned when no config file exists in any search location.
var ErrNoConfig = errors.New("no config file found")

var (
	userConfigDir   = ".sdkgeist"
	systemConfigDir = "/etc/sdkgeist"
)

// ResolveConfigPath returns the config path to use for the given file name.
// It checks, in order:
// 1. $SDKGEIST_CONFIG if set (used as is, even if missing)
// 2. ~/.sdkgeist/<file>
// 3. /etc/sdkgeist/<file>
func ResolveConfigPath(file string) (string, error) {
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, userConfigDir, file)
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}
	systemPath := filepath.Join(systemConfigDir, file)
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath, nil
	}
	return "", ErrNoConfig
}
