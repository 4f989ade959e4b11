// Package casemask captures per-character uppercase patterns from existing
// text and reapplies them to replacement words.
package casemask

import (
	"strings"
	"unicode"
)

// HasUpper reports whether s contains at least one uppercase rune.
func HasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Mask returns one entry per rune of s, true where that rune is uppercase.
// An empty string yields an empty mask.
func Mask(s string) []bool {
	mask := make([]bool, 0, len(s))
	for _, r := range s {
		mask = append(mask, unicode.IsUpper(r))
	}
	return mask
}

// Apply uppercases the runes of s at positions where mask is true. Runes
// past the end of the mask are emitted unchanged; mask entries past the end
// of s are ignored. Lowercase is never forced, so a false entry leaves the
// rune exactly as it was.
func Apply(s string, mask []bool) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for _, r := range s {
		if i < len(mask) && mask[i] {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}
