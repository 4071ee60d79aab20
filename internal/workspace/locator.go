package workspace

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/danieljhkim/omnicopy/internal/fsops"
)

// ErrProjectRootNotFound indicates no manifest exists between the starting
// directory and the filesystem root.
var ErrProjectRootNotFound = errors.New("project root not found")

// Locator finds project roots by walking up the directory tree.
type Locator struct {
	fs       fsops.FS
	manifest string
	lockfile string
}

// NewLocator creates a Locator. An empty lockfile disables lockfile detection.
func NewLocator(fs fsops.FS, manifest, lockfile string) *Locator {
	return &Locator{
		fs:       fs,
		manifest: manifest,
		lockfile: lockfile,
	}
}

// Discover returns the project root for start, which must be absolute.
func (l *Locator) Discover(start string) (string, error) {
	if !filepath.IsAbs(start) {
		return "", fmt.Errorf("start directory must be absolute, got %q", start)
	}

	packageRoot := ""
	current := filepath.Clean(start)
	for {
		if l.lockfile != "" {
			found, err := l.fs.Exists(filepath.Join(current, l.lockfile))
			if err != nil {
				return "", fmt.Errorf("failed to check for lockfile: %w", err)
			}
			if found {
				return current, nil
			}
		}

		manifestPath := filepath.Join(current, l.manifest)
		found, err := l.fs.Exists(manifestPath)
		if err != nil {
			return "", fmt.Errorf("failed to check for manifest: %w", err)
		}
		if found {
			if packageRoot == "" {
				packageRoot = current
			}
			isWorkspace, err := l.declaresWorkspace(manifestPath)
			if err != nil {
				return "", err
			}
			if isWorkspace {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if packageRoot == "" {
		return "", fmt.Errorf("%w: no %s above %s", ErrProjectRootNotFound, l.manifest, start)
	}
	return packageRoot, nil
}

// declaresWorkspace reports whether the manifest has a [workspace] table.
func (l *Locator) declaresWorkspace(manifestPath string) (bool, error) {
	data, err := l.fs.ReadFile(manifestPath)
	if err != nil {
		return false, fmt.Errorf("failed to read manifest: %w", err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("failed to parse manifest %s: %w", manifestPath, err)
	}

	_, ok := doc["workspace"]
	return ok, nil
}
