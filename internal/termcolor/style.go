package termcolor

import "strings"

// Style is a reusable SGR sequence pair. Apply is a no-op when the style is
// zero or the text is empty, so callers can keep one code path for both
// colored and plain output.
type Style struct {
	open  string
	close string
}

func newStyle(codes ...string) Style {
	if len(codes) == 0 {
		return Style{}
	}
	return Style{
		open:  "\x1b[" + strings.Join(codes, ";") + "m",
		close: "\x1b[0m",
	}
}

var (
	// Found highlights a successful replacement notice.
	Found = newStyle("32")
	// NotFound highlights the nothing-to-do notice.
	NotFound = newStyle("33")
	// Error highlights fatal messages.
	Error = newStyle("31", "1")
	// Emphasis is used for the selected word inside notices and previews.
	Emphasis = newStyle("1")
)

// Apply wraps s in the style's SGR codes when enabled is true.
func (st Style) Apply(enabled bool, s string) string {
	if !enabled || s == "" || st.open == "" {
		return s
	}
	return st.open + s + st.close
}
