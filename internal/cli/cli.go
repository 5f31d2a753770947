package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"wrenw/internal/config"
	"wrenw/internal/notes"
	"wrenw/internal/prompt"
	"wrenw/internal/wren"
)

// Exit codes
const (
	ExitOK    = 0 // success, including nothing-scheduled paths
	ExitUser  = 1 // usage errors, validation failures, aborts, not found
	ExitFatal = 2 // broken config or backing tool missing from PATH
)

var errUsage = errors.New("usage")

func Run(args []string) int {
	rt, err := classify(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wrenw:", err)
		return ExitUser
	}
	u := &ui{out: os.Stdout, err: os.Stderr, verbose: rt.verbose, quiet: rt.quiet}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "wrenw:", err)
		return ExitFatal
	}
	u.Verbosef("notes directory is %s", cfg.NotesDir)

	tool, err := wren.Find(cfg.Tool)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wrenw:", err)
		return ExitFatal
	}
	u.Verbosef("found %s at %s", cfg.Tool, tool.Path)

	if rt.help {
		return runHelp(tool, u)
	}

	dir := notes.Dir{Path: cfg.NotesDir, DoneDir: cfg.DoneDir}
	switch rt.kind {
	case routeCron, routeFuture, routeExact:
		if err := dir.Ensure(); err != nil {
			u.Errorf("cannot create notes directory %s: %v", dir.Path, err)
			return ExitUser
		}
	}

	switch rt.kind {
	case routeCron:
		return runCron(dir, rt.title, rt.force, prompt.New(), u)
	case routeFuture:
		return runFuture(dir, rt.title, rt.force, cfg.Picker, prompt.New(), u)
	case routeExact:
		return runExact(dir, rt.title, u)
	case routeDone:
		return runDone(tool, rt, prompt.New(), u)
	default:
		u.Verbosef("proxying to %s: %q", cfg.Tool, rt.forward)
		return proxy(tool, rt.forward, u)
	}
}

// proxy runs the backing tool transparently and forwards its exit code.
func proxy(tool wren.Tool, args []string, u *ui) int {
	code, err := tool.Run(args)
	if err != nil {
		u.Errorf("%v", err)
		return ExitUser
	}
	return code
}

func runHelp(tool wren.Tool, u *ui) int {
	_, _ = tool.Run([]string{"--help"})
	fmt.Fprint(u.out, "\n--- wrenw help ---\n")
	printHelp(u.out)
	return ExitOK
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `wrenw — quality-of-life wrapper for the wren task manager

Usage:
  wrenw [wrapper flags] [--] [wren args | task title]

Wrapper flags:
  -c, --cron <title>    Create a repeating task (prompts for a cron schedule)
  -f, --future <title>  Create a future task (calendar picker, CLI fallback)
  -x, --exact <title>   Mark a task done by its exact filename
      --force           Let -c/-f replace an existing task file
  -h, --help            Show wren's own help, then this help
  -v, --verbose         Diagnostic output on stderr
  -q, --quiet           Suppress non-error output

Anything not listed above is passed through to wren unchanged, in the
order given. A passed-through "-d <pattern>" that matches several tasks
brings up a numbered selection prompt before completing one.
`)
}

// trapInterrupt converts Ctrl-C during an interactive prompt into a
// clean abort: exit 1, nothing written. Outside prompts the default
// signal handling stays in place so a proxied child sees the interrupt.
func trapInterrupt() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		if _, ok := <-ch; ok {
			fmt.Fprintln(os.Stderr, "\nAborted.")
			os.Exit(ExitUser)
		}
	}()
	return func() {
		signal.Stop(ch)
		close(ch)
	}
}

// ui gates the wrapper's own output. Errors always reach stderr; quiet
// suppresses everything else; verbose adds diagnostics on stderr.
type ui struct {
	out, err io.Writer
	verbose  bool
	quiet    bool
}

func (u *ui) Printf(format string, a ...any) {
	if u.quiet {
		return
	}
	fmt.Fprintf(u.out, format+"\n", a...)
}

func (u *ui) Verbosef(format string, a ...any) {
	if !u.verbose || u.quiet {
		return
	}
	fmt.Fprintf(u.err, "wrenw: "+format+"\n", a...)
}

func (u *ui) Errorf(format string, a ...any) {
	fmt.Fprintf(u.err, "wrenw: "+format+"\n", a...)
}

func (u *ui) Aborted() int {
	fmt.Fprintln(u.err, "Aborted.")
	return ExitUser
}
