package engine

import (
	"sort"
	"strings"

	"github.com/hmatsuda/wordflip/internal/casemask"
)

type candidate struct {
	word     string
	opposite string
}

// FindMatches scans every dictionary pair in both directions and returns all
// occurrences touching the cursor column, ranked by ascending word length
// and then lexicographic word order. The ranking is deterministic and
// independent of map iteration order. Identical hits from distinct pairs are
// both kept; nothing is deduplicated.
//
// When useCaseMask is enabled, candidates whose both sides are free of
// uppercase runes are searched on the lowercased line and flagged with
// UseMask so the replacement step can restore the original casing. Pairs
// that carry uppercase letters are always matched verbatim to avoid
// corrupting deliberately cased dictionary entries.
func FindMatches(line string, col int, pairs map[string]string, useCaseMask bool) []Match {
	cands := make([]candidate, 0, len(pairs)*2)
	for w, ow := range pairs {
		cands = append(cands, candidate{w, ow}, candidate{ow, w})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].word != cands[j].word {
			return cands[i].word < cands[j].word
		}
		return cands[i].opposite < cands[j].opposite
	})

	// Indices found on the lowered line are only valid on the original when
	// lowering preserves byte length. ToLower can grow or shrink a rune
	// (U+023A -> U+2C65, U+0130 -> 'i'); in that case masked candidates fall
	// back to verbatim matching instead of slicing the original line with a
	// foreign offset.
	var lowered string
	loweredUsable := false
	haveLowered := false
	var out []Match
	for _, c := range cands {
		if c.word == "" || c.opposite == "" {
			continue
		}
		mask := useCaseMask && !casemask.HasUpper(c.word) && !casemask.HasUpper(c.opposite)
		target := line
		if mask {
			if !haveLowered {
				lowered = strings.ToLower(line)
				loweredUsable = len(lowered) == len(line)
				haveLowered = true
			}
			if loweredUsable {
				target = lowered
			} else {
				mask = false
			}
		}
		if idx := findWordInLine(target, col, c.word); idx > 0 {
			out = append(out, Match{Word: c.word, Opposite: c.opposite, Index: idx, UseMask: mask})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Word) != len(out[j].Word) {
			return len(out[i].Word) < len(out[j].Word)
		}
		return out[i].Word < out[j].Word
	})
	return out
}
