package cli

import (
	"errors"

	"wrenw/internal/notes"
	"wrenw/internal/prompt"
)

// runCron creates a repeating task. The file's name carries the whole
// schedule: "<minute hour day month weekday> <title>".
func runCron(dir notes.Dir, title string, force bool, p *prompt.Prompter, u *ui) int {
	if err := notes.ValidName(title); err != nil {
		u.Errorf("%v", err)
		return ExitUser
	}

	stop := trapInterrupt()
	schedule, err := p.Schedule()
	stop()
	if err != nil {
		return u.Aborted()
	}

	return createTask(dir, schedule+" "+title, force, "Created repeating task: %s", u)
}

// createTask performs the exclusive creation shared by both composers.
func createTask(dir notes.Dir, name string, force bool, successFormat string, u *ui) int {
	u.Verbosef("creating task file %q in %s", name, dir.Path)
	path, err := dir.Create(name, force)
	if err != nil {
		if errors.Is(err, notes.ErrConflict) {
			u.Errorf("task file already exists: %s", path)
			return ExitUser
		}
		u.Errorf("cannot create task file: %v", err)
		return ExitUser
	}
	u.Printf(successFormat, path)
	return ExitOK
}
