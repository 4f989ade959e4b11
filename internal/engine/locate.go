package engine

import "strings"

// findWordInLine returns the 1-based byte offset of the first occurrence of
// word in line that touches the cursor column col, or 0 when there is none.
//
// The occurrence must start within [col-len(word)+1, col]: it may contain
// the cursor or end exactly one column before it. This deliberately does not
// require the cursor to sit strictly inside the word, and no word-boundary
// rules apply; a word embedded in a larger token matches.
func findWordInLine(line string, col int, word string) int {
	if word == "" || line == "" {
		return 0
	}
	min := col - (len(word) - 1)
	if min < 1 {
		min = 1
	}
	if min > len(line) {
		return 0
	}
	off := strings.Index(line[min-1:], word)
	if off < 0 {
		return 0
	}
	idx := min + off
	if idx > col {
		return 0
	}
	return idx
}
