package cli

import (
	"errors"
	"fmt"

	"wrenw/internal/prompt"
	"wrenw/internal/wren"
)

// runDone disambiguates a fuzzy completion. Wren is asked for its own
// matches first; with zero or one the original invocation is simply
// re-run so wren's native single-match and no-match handling applies.
// With two or more the user picks from a numbered list and the original
// invocation is re-run with the pattern replaced by the exact filename.
func runDone(tool wren.Tool, rt route, p *prompt.Prompter, u *ui) int {
	out, _, err := tool.Capture([]string{"-d", rt.pattern})
	if err != nil {
		u.Errorf("%v", err)
		return ExitUser
	}
	candidates := wren.ParseCandidates(out)
	u.Verbosef("%d candidates for %q", len(candidates), rt.pattern)

	if len(candidates) < 2 {
		u.Verbosef("delegating to wren unchanged")
		return proxy(tool, rt.forward, u)
	}

	stop := trapInterrupt()
	n, err := p.Select(fmt.Sprintf("Multiple tasks match %q. Mark which one as done?", rt.pattern), candidates)
	stop()
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return u.Aborted()
		}
		u.Errorf("%v", err)
		return ExitUser
	}

	final := replaceFirst(rt.forward, rt.pattern, candidates[n-1])
	u.Verbosef("re-running with exact filename %q", candidates[n-1])
	return proxy(tool, final, u)
}

// replaceFirst swaps the first occurrence of old for new, leaving every
// other token in place.
func replaceFirst(args []string, old, new string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, a := range out {
		if a == old {
			out[i] = new
			break
		}
	}
	return out
}
