// Package dotdir locates the .oasis/ directory that holds config.toml.
package dotdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the name of the oasis directory.
const DirName = ".oasis"

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the absolute path of the .oasis/ directory to use.
// Order of precedence is as follows:
//  1. Provided override (created if missing)
//  2. Local ./.oasis/ dir
//  3. Home ~/.oasis/ dir
//
// If none applies, Target returns an empty string and no error.
func (m *Manager) Target(overrideDir string) (string, error) {
	if overrideDir != "" {
		if err := os.MkdirAll(overrideDir, 0o755); err != nil {
			return "", fmt.Errorf("creating oasis directory %s: %w", overrideDir, err)
		}
		return filepath.Abs(overrideDir)
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, DirName)
		if isDir(local) {
			return local, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	if dir := filepath.Join(home, DirName); isDir(dir) {
		return dir, nil
	}

	return "", nil
}

// Ensure behaves like Target but creates ~/.oasis/ when nothing else
// resolves, so callers that write config always get a directory.
func (m *Manager) Ensure(overrideDir string) (string, error) {
	dir, err := m.Target(overrideDir)
	if err != nil || dir != "" {
		return dir, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	dir = filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating oasis directory %s: %w", dir, err)
	}
	return dir, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
