package engine

import "encoding/json"

// Match is one located occurrence of a dictionary word near the cursor,
// carrying enough data to perform the replacement.
type Match struct {
	Word     string `json:"word"`
	Opposite string `json:"opposite"`
	// Index is the 1-based byte offset of Word in the line. When UseMask is
	// set the occurrence was found on the lowercased line and the original
	// casing is restored on replacement.
	Index   int  `json:"index"`
	UseMask bool `json:"use_mask"`
}

// Options configure a single search/replace invocation. The dictionary and
// flags are passed explicitly per call; the engine keeps no global state.
type Options struct {
	// Pairs maps a word to its opposite. Every pair is bidirectional: both
	// (word, opposite) and (opposite, word) are candidates.
	Pairs map[string]string
	// CaseMask enables case-insensitive matching with case restoration for
	// pairs whose both sides contain no uppercase rune.
	CaseMask bool
	// MaxLineLength is a precondition checked by callers before Run; the
	// engine itself accepts lines of any length. 0 means unlimited.
	MaxLineLength int
}

// Status classifies the outcome of a Run. All values are normal, expected
// results rather than errors.
type Status int

const (
	StatusReplaced Status = iota
	StatusNoMatch
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusReplaced:
		return "replaced"
	case StatusNoMatch:
		return "no-match"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// MarshalJSON emits the symbolic name so API clients never see raw enum values.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Outcome is the result of one search -> select -> replace pass.
type Outcome struct {
	Status  Status  `json:"status"`
	Matches []Match `json:"matches"`
	// Match, NewLine and Summary are set only when Status is StatusReplaced.
	Match   *Match `json:"match,omitempty"`
	NewLine string `json:"new_line,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Selector chooses one match out of several. Implementations may block for
// user input. The returned choice is a 1-based index into matches; ok is
// false when the user cancelled, which is distinct from there being nothing
// to choose in the first place.
type Selector interface {
	Select(line string, matches []Match) (choice int, ok bool, err error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(line string, matches []Match) (int, bool, error)

func (f SelectorFunc) Select(line string, matches []Match) (int, bool, error) {
	return f(line, matches)
}
