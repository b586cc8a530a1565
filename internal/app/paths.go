package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "hahealth"
	stateFileName  = "state.db"
	configFileName = "config.yaml"
	envConfigPath  = "HAHEALTH_CONFIG"
	envStateDBPath = "HAHEALTH_STATE_DB"
)

// DefaultStatePath resolves the sqlite file holding the client's local
// state (access token and theme preference).
func DefaultStatePath() (string, error) {
	if p := os.Getenv(envStateDBPath); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, stateFileName), nil
}

// DefaultConfigPath resolves the client config file location.
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(envConfigPath); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, configFileName), nil
}

func EnsureStateDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	return nil
}
