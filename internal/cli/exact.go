package cli

import (
	"errors"

	"wrenw/internal/notes"
)

// runExact completes a task by its exact filename, bypassing wren's
// substring matching entirely. This is the one route that never shells
// out: it exists so "buy-milk" can be completed while
// "buy-milk-and-eggs" stays put.
func runExact(dir notes.Dir, title string, u *ui) int {
	u.Verbosef("completing exact task %q", title)
	err := dir.CompleteExact(title)
	switch {
	case errors.Is(err, notes.ErrNotFound):
		u.Errorf("task not found with exact name: %q", title)
		return ExitUser
	case err != nil:
		u.Errorf("cannot mark %q done: %v", title, err)
		return ExitUser
	}
	u.Printf("Marked done: %s", title)
	return ExitOK
}
