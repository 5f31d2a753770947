package cli

import (
	"fmt"
	"strings"
)

type routeKind int

const (
	routeProxy routeKind = iota
	routeDone
	routeCron
	routeFuture
	routeExact
)

// route is the single path chosen for an invocation. Exactly one runs.
type route struct {
	kind    routeKind
	title   string   // composer or exact-completion title
	pattern string   // fuzzy pattern behind a forwarded -d/--done
	forward []string // backing-tool argv, original order preserved
	help    bool
	verbose bool
	quiet   bool
	force   bool
}

// classify splits argv into wrapper flags and backing-tool arguments.
// Wrapper flags match by exact token and win over any wren flag of the
// same name; everything else is forwarded untouched, in original order.
// A trigger flag (-c/-f/-x) consumes the rest of argv as the task title.
func classify(args []string) (route, error) {
	r := route{kind: routeProxy}
	var title []string

scan:
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "--":
			r.forward = append(r.forward, args[i+1:]...)
			break scan
		case "-h", "--help":
			r.help = true
		case "-v", "--verbose":
			r.verbose = true
		case "-q", "--quiet":
			r.quiet = true
		case "--force":
			r.force = true
		case "-c", "--cron":
			var err error
			title, err = r.trigger(routeCron, a, args[i+1:])
			if err != nil {
				return route{}, err
			}
			break scan
		case "-f", "--future":
			var err error
			title, err = r.trigger(routeFuture, a, args[i+1:])
			if err != nil {
				return route{}, err
			}
			break scan
		case "-x", "--exact":
			var err error
			title, err = r.trigger(routeExact, a, args[i+1:])
			if err != nil {
				return route{}, err
			}
			break scan
		default:
			r.forward = append(r.forward, a)
		}
	}

	if r.verbose && r.quiet {
		return route{}, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", errUsage)
	}

	if r.kind != routeProxy {
		r.title = strings.Join(title, " ")
		if strings.TrimSpace(r.title) == "" && !r.help {
			return route{}, fmt.Errorf("%w: %s requires a task title", errUsage, triggerFlag(r.kind))
		}
		if idx := completionIndex(r.forward); idx >= 0 {
			return route{}, fmt.Errorf("%w: %s may not be combined with %s", errUsage, triggerFlag(r.kind), r.forward[idx])
		}
		return r, nil
	}

	// Forwarded completion flows get the disambiguation treatment when a
	// fuzzy pattern follows the flag.
	if idx := completionIndex(r.forward); idx >= 0 {
		if idx+1 < len(r.forward) && !strings.HasPrefix(r.forward[idx+1], "-") {
			r.kind = routeDone
			r.pattern = r.forward[idx+1]
		}
	}
	return r, nil
}

// trigger records which composer route was selected and consumes the tail
// of argv as the title. Wrapper flags are still recognized inside the
// tail; a second trigger there is a usage error, never a silent pick.
func (r *route) trigger(kind routeKind, flag string, tail []string) ([]string, error) {
	r.kind = kind
	var title []string
	for _, a := range tail {
		switch a {
		case "-c", "--cron", "-f", "--future", "-x", "--exact", "-d", "--done":
			return nil, fmt.Errorf("%w: %s may not be combined with %s", errUsage, flag, a)
		case "-h", "--help":
			r.help = true
		case "-v", "--verbose":
			r.verbose = true
		case "-q", "--quiet":
			r.quiet = true
		case "--force":
			r.force = true
		default:
			title = append(title, a)
		}
	}
	return title, nil
}

func completionIndex(forward []string) int {
	for i, a := range forward {
		if a == "-d" || a == "--done" {
			return i
		}
	}
	return -1
}

func triggerFlag(kind routeKind) string {
	switch kind {
	case routeCron:
		return "--cron"
	case routeFuture:
		return "--future"
	case routeExact:
		return "--exact"
	default:
		return ""
	}
}
