// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStateDir creates (if needed) and returns the application state
// directory under the user's config dir, e.g. ~/.config/finledger. If the
// user config dir cannot be resolved, it falls back to a subdirectory of
// the current working directory.
func EnsureStateDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		base, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
	}

	dir := filepath.Join(base, appName)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
