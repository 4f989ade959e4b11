// Package termcolor decides whether stderr/stdout notifications may use ANSI
// color and renders the small set of styles the CLI needs.
package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode is the tri-state color policy from --color / config / env.
type Mode int

const (
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode maps a canonical color word to a Mode. Empty means auto.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("invalid color mode: %s", raw)
	}
}

// isTerminal is swapped out in tests.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Enabled reports whether output destined for f should carry SGR codes.
// Environment conventions take precedence over TTY detection in auto mode:
// NO_COLOR disables, FORCE_COLOR/CLICOLOR_FORCE enable, TERM=dumb disables.
func Enabled(mode Mode, f *os.File, getenv func(string) string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("FORCE_COLOR") != "" || getenv("CLICOLOR_FORCE") == "1" {
		return true
	}
	if getenv("TERM") == "dumb" {
		return false
	}
	if f == nil {
		return false
	}
	return isTerminal(f.Fd())
}
