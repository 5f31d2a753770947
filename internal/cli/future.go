package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"wrenw/internal/notes"
	"wrenw/internal/prompt"
)

// runFuture creates a task scheduled for a future date, named
// "<YYYY-MM-DD> <title>". The date comes from an external calendar
// picker when one is usable, otherwise from a plain prompt. Declining to
// pick a date is not an error: nothing is scheduled and the exit is 0.
func runFuture(dir notes.Dir, title string, force bool, picker string, p *prompt.Prompter, u *ui) int {
	if err := notes.ValidName(title); err != nil {
		u.Errorf("%v", err)
		return ExitUser
	}

	date, picked, err := pickDate(picker, p, u)
	if err != nil {
		return u.Aborted()
	}
	if !picked {
		u.Printf("Nothing scheduled.")
		return ExitOK
	}

	return createTask(dir, date+" "+title, force, "Created future task: %s", u)
}

// pickDate returns the chosen date, or picked=false when the user
// declined (picker cancelled, or empty line at the fallback prompt).
// An abort at the fallback prompt surfaces as an error.
func pickDate(picker string, p *prompt.Prompter, u *ui) (date string, picked bool, err error) {
	tomorrow := time.Now().AddDate(0, 0, 1)

	if path, lerr := exec.LookPath(picker); lerr == nil && os.Getenv("DISPLAY") != "" {
		u.Verbosef("using %s for date selection", path)
		date, picked, err := runPicker(path, tomorrow)
		if err == nil {
			return date, picked, nil
		}
		u.Verbosef("%s failed (%v), falling back to prompt", picker, err)
	} else {
		u.Verbosef("no usable date picker, falling back to prompt")
	}

	stop := trapInterrupt()
	date, err = p.Date()
	stop()
	if err != nil {
		return "", false, err
	}
	return date, date != "", nil
}

// runPicker invokes the calendar program with tomorrow preselected and
// the output format pinned to YYYY-MM-DD. A non-zero exit or empty
// output is a cancellation, not a failure.
func runPicker(path string, cursor time.Time) (date string, picked bool, err error) {
	var out bytes.Buffer
	cmd := exec.Command(path,
		"--calendar",
		"--text=Wren task date",
		"--date-format=%Y-%m-%d",
		fmt.Sprintf("--day=%d", cursor.Day()),
		fmt.Sprintf("--month=%d", int(cursor.Month())),
		fmt.Sprintf("--year=%d", cursor.Year()),
	)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", false, nil // cancelled in the picker
		}
		return "", false, err
	}
	date = strings.TrimSpace(out.String())
	if date == "" {
		return "", false, nil
	}
	return date, true, nil
}
