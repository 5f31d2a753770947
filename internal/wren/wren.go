// Package wren invokes the backing task manager as a subprocess. The
// wrapper never interprets wren's matching semantics; it only consumes
// wren's line-oriented match output and exit codes.
package wren

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var ErrToolNotFound = errors.New("executable not found")

// Tool is a located backing-tool executable.
type Tool struct {
	Path string
}

// Find locates the backing tool on PATH.
func Find(name string) (Tool, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return Tool{}, fmt.Errorf("%w: %q is not on $PATH", ErrToolNotFound, name)
	}
	return Tool{Path: path}, nil
}

// Run executes the tool transparently: the child inherits the wrapper's
// stdio and its exit code is returned unchanged.
func (t Tool) Run(args []string) (int, error) {
	cmd := exec.Command(t.Path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}
	return 0, nil
}

// Capture executes the tool with stdout buffered for parsing. Stderr is
// passed through. A non-zero child exit is not an error here; the exit
// code is returned alongside the output.
func (t Tool) Capture(args []string) (string, int, error) {
	var buf bytes.Buffer
	cmd := exec.Command(t.Path, args...)
	cmd.Stdout = &buf
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return buf.String(), exitErr.ExitCode(), nil
		}
		return "", 1, err
	}
	return buf.String(), 0, nil
}

// ParseCandidates turns captured match output into an ordered list of
// task filenames: one per non-empty line, list markers stripped, error
// lines dropped. Order is preserved exactly; the selection prompt numbers
// candidates by this order.
func ParseCandidates(out string) []string {
	var candidates []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Error -") {
			continue
		}
		line = strings.TrimPrefix(line, "- ")
		candidates = append(candidates, line)
	}
	return candidates
}
