package engine

import "github.com/hmatsuda/wordflip/internal/casemask"

// Replace rewrites line with the match's opposite word and returns the new
// line; the input is never mutated. When the match was located on the
// lowercased line, the case pattern of the replaced text is transferred onto
// the opposite word, so "Enable" becomes "Disable" rather than "disable".
//
// The match must have been produced by FindMatches against the same line;
// indices from other sources are not validated here.
func Replace(line string, m Match) string {
	left := line[:m.Index-1]
	middle := line[m.Index-1 : m.Index-1+len(m.Word)]
	right := line[m.Index-1+len(m.Word):]

	repl := m.Opposite
	if m.UseMask {
		repl = casemask.Apply(repl, casemask.Mask(middle))
	}
	return left + repl + right
}
