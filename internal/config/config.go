package config

import (
	"os"
	"path/filepath"
)

var Version = "v0.3.1"

const (
	AppName = "pantry"

	// DefaultDBFile lives next to the pantry binary unless --db says otherwise.
	DefaultDBFile  = "food_inventory.db"
	DefaultDataset = "en"

	LogFile = "pantry.log"
)

// DBPath returns override when set, otherwise DefaultDBFile in the
// directory of the running executable.
func DBPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Join(filepath.Dir(exe), DefaultDBFile), nil
}
