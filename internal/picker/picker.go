// Package picker provides the strategies used to choose one match when the
// engine finds several: fixed index, first, or an interactive terminal list.
package picker

import (
	"fmt"

	"github.com/hmatsuda/wordflip/internal/engine"
)

// First always picks the top-ranked match.
func First() engine.Selector {
	return engine.SelectorFunc(func(line string, matches []engine.Match) (int, bool, error) {
		if len(matches) == 0 {
			return 0, false, nil
		}
		return 1, true, nil
	})
}

// Fixed picks the n-th match (1-based) and fails when the list is shorter.
func Fixed(n int) engine.Selector {
	return engine.SelectorFunc(func(line string, matches []engine.Match) (int, bool, error) {
		if n < 1 || n > len(matches) {
			return 0, false, fmt.Errorf("selection %d out of range (1..%d)", n, len(matches))
		}
		return n, true, nil
	})
}

// ForSpec builds a selector from a canonical select setting: "first", a
// positive integer, "prompt" for the interactive picker, or "auto" which
// prompts on a terminal and falls back to first otherwise.
func ForSpec(spec string, interactiveOK bool) (engine.Selector, error) {
	switch spec {
	case "", "auto":
		if interactiveOK {
			return Terminal(), nil
		}
		return First(), nil
	case "first":
		return First(), nil
	case "prompt":
		if !interactiveOK {
			return nil, fmt.Errorf("interactive selection requires a terminal")
		}
		return Terminal(), nil
	}
	var n int
	if _, err := fmt.Sscanf(spec, "%d", &n); err != nil || n < 1 {
		return nil, fmt.Errorf("invalid select value: %s", spec)
	}
	return Fixed(n), nil
}
