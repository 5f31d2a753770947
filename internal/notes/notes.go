// Package notes performs the wrapper's direct filesystem operations on
// the backing tool's notes directory. The filename is the task; there is
// no other identity.
package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)

// Dir is a notes directory owned by the backing tool.
type Dir struct {
	Path    string
	DoneDir string
}

// Ensure creates the notes directory if it does not exist yet.
func (d Dir) Ensure() error {
	return os.MkdirAll(d.Path, 0o755)
}

// ValidName rejects names that would resolve outside the directory. Task
// filenames never contain path separators.
func ValidName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty task name", ErrInvalid)
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		return fmt.Errorf("%w: task name %q contains a path separator", ErrInvalid, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: task name %q", ErrInvalid, name)
	}
	return nil
}

// Create makes an empty task file named name. Creation is exclusive: an
// existing file is never overwritten unless force is set. The target path
// is returned even on conflict so callers can report it.
func (d Dir) Create(name string, force bool) (string, error) {
	if err := ValidName(name); err != nil {
		return "", err
	}
	path := filepath.Join(d.Path, name)
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, fmt.Errorf("%w: task file already exists: %s", ErrConflict, path)
		}
		return path, err
	}
	return path, f.Close()
}

// CompleteExact moves the task whose filename equals title byte for byte
// into the done subdirectory, keeping its name. The move is a single
// rename; if the rename fails because the done directory is missing, the
// directory is created and the rename retried once.
func (d Dir) CompleteExact(title string) error {
	if err := ValidName(title); err != nil {
		return err
	}
	src := filepath.Join(d.Path, title)
	fi, err := os.Stat(src)
	if err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: no task file named %q", ErrNotFound, title)
	}
	dst := filepath.Join(d.Path, d.DoneDir, title)
	if err := os.Rename(src, dst); err != nil {
		if mkErr := os.MkdirAll(filepath.Join(d.Path, d.DoneDir), 0o755); mkErr != nil {
			return mkErr
		}
		if err := os.Rename(src, dst); err != nil {
			return err
		}
	}
	return nil
}
