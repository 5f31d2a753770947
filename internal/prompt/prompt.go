// Package prompt implements the wrapper's line-oriented interactive
// prompts. All three prompts (candidate selection, cron schedule entry,
// fallback date entry) share the same loop shape: re-prompt on invalid
// input, abort on EOF or the abort token.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrAborted = errors.New("aborted")

const cronCheatSheet = `Cron cheat-sheet:
┌──────── minute (0-59)
│ ┌────── hour   (0-23)
│ │ ┌──── day    (1-31)
│ │ │ ┌── month  (1-12)
│ │ │ │ ┌─ weekday(0-6 Sun-Sat)
│ │ │ │ │
* * * * *  command`

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Prompter reads single-line answers from In and writes prompts to Out
// and validation errors to Err. Tests inject buffers for all three.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
	Err io.Writer
}

func New() *Prompter {
	return &Prompter{In: bufio.NewReader(os.Stdin), Out: os.Stdout, Err: os.Stderr}
}

// readLine returns the next input line without its line ending. EOF
// during a prompt is an abort.
func (p *Prompter) readLine() (string, error) {
	line, err := p.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", ErrAborted
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Select prints items as a 1-based numbered list under header and blocks
// until the user picks one. The returned index is 1-based and always
// matches the printed numbering; items are never re-ordered. Entering q
// aborts.
func (p *Prompter) Select(header string, items []string) (int, error) {
	fmt.Fprintln(p.Out, header)
	for i, item := range items {
		fmt.Fprintf(p.Out, "%d) %s\n", i+1, item)
	}
	for {
		fmt.Fprintf(p.Out, "Selection (1-%d, q to abort) > ", len(items))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "q") {
			return 0, ErrAborted
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.Err, "Invalid input. Please enter a number from the list.")
			continue
		}
		if n < 1 || n > len(items) {
			fmt.Fprintln(p.Err, "Invalid selection.")
			continue
		}
		return n, nil
	}
}

// Schedule prints the cron reference table and reads a schedule string
// of exactly five whitespace-separated fields. Field values are not
// range-checked; cron owns semantic validity.
func (p *Prompter) Schedule() (string, error) {
	fmt.Fprintln(p.Out, cronCheatSheet)
	for {
		fmt.Fprint(p.Out, `Enter cron schedule (e.g. "0 4 * * *"): `)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if len(strings.Fields(line)) == 5 {
			return line, nil
		}
		fmt.Fprintln(p.Err, "Invalid cron string format. It must have 5 space-separated fields.")
	}
}

// Date reads a calendar date in YYYY-MM-DD form, re-prompting on bad
// input. An empty line means the user declined to pick a date; it is
// returned as "" with no error.
func (p *Prompter) Date() (string, error) {
	for {
		fmt.Fprint(p.Out, "Enter date (YYYY-MM-DD): ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return "", nil
		}
		if dateRe.MatchString(line) {
			if _, perr := time.Parse("2006-01-02", line); perr == nil {
				return line, nil
			}
		}
		fmt.Fprintln(p.Err, "Invalid date format. Please use YYYY-MM-DD.")
	}
}
