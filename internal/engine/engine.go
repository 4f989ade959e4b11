// Package engine implements the word-opposite search and case-preserving
// replacement core: locate dictionary words touching the cursor, rank them
// deterministically, and rewrite the line with the chosen opposite.
package engine

import "fmt"

// Run performs one synchronous search -> select -> replace pass over a
// snapshot of the line. Absent matches and user cancellation are reported
// through Outcome.Status, not as errors; an error is returned only when the
// selector itself fails or answers out of range.
//
// A single match is accepted without consulting the selector. Replacement is
// all-or-nothing: either the outcome carries a fully built NewLine, or the
// line is untouched.
func Run(line string, col int, opts Options, sel Selector) (*Outcome, error) {
	matches := FindMatches(line, col, opts.Pairs, opts.CaseMask)
	out := &Outcome{Matches: matches}

	if len(matches) == 0 {
		out.Status = StatusNoMatch
		return out, nil
	}

	choice := 1
	if len(matches) > 1 {
		if sel == nil {
			return nil, fmt.Errorf("%d matches but no selector provided", len(matches))
		}
		var ok bool
		var err error
		choice, ok, err = sel.Select(line, matches)
		if err != nil {
			return nil, fmt.Errorf("select match: %w", err)
		}
		if !ok {
			out.Status = StatusCancelled
			return out, nil
		}
	}
	if choice < 1 || choice > len(matches) {
		return nil, fmt.Errorf("selection %d out of range 1..%d", choice, len(matches))
	}

	m := matches[choice-1]
	out.Status = StatusReplaced
	out.Match = &m
	out.NewLine = Replace(line, m)
	out.Summary = fmt.Sprintf("%s -> %s", m.Word, m.Opposite)
	return out, nil
}
