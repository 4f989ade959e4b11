package opts

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hmatsuda/wordflip/internal/engine"
)

const (
	// DefaultMaxLineLength bounds the line accepted from hosts before the
	// engine runs. The engine itself has no limit.
	DefaultMaxLineLength = 4096

	maxPairs = 4096
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// DefaultPairs returns the built-in opposite dictionary. Config layers
// extend it, or replace it outright when pairs_replace is set.
func DefaultPairs() map[string]string {
	return map[string]string{
		"true":    "false",
		"yes":     "no",
		"on":      "off",
		"enable":  "disable",
		"enabled": "disabled",
		"allow":   "deny",
		"show":    "hide",
		"start":   "stop",
		"min":     "max",
		"left":    "right",
		"up":      "down",
	}
}

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults() engine.Options {
	return engine.Options{
		Pairs:         DefaultPairs(),
		CaseMask:      true,
		MaxLineLength: DefaultMaxLineLength,
	}
}

// SelectSpec describes how a match is chosen when several are found.
type SelectSpec struct {
	// Strategy is one of "auto" (prompt on a TTY, else first), "first",
	// "prompt", or "index".
	Strategy string
	// Index is the 1-based fixed choice when Strategy is "index".
	Index int
}

// ParseSelect interprets a --select value: a strategy keyword or a positive
// integer picking a fixed entry from the ranked list.
func ParseSelect(raw string) (SelectSpec, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "auto":
		return SelectSpec{Strategy: "auto"}, nil
	case "first":
		return SelectSpec{Strategy: "first"}, nil
	case "prompt":
		return SelectSpec{Strategy: "prompt"}, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return SelectSpec{}, fmt.Errorf("invalid --select: %s", raw)
	}
	return SelectSpec{Strategy: "index", Index: n}, nil
}

// ParsePairs parses "word=opposite" specs (comma-separated or repeated) into
// a dictionary fragment.
func ParsePairs(specs []string) (map[string]string, error) {
	flat := SplitMulti(specs)
	if len(flat) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(flat))
	for _, spec := range flat {
		eq := strings.Index(spec, "=")
		if eq < 0 {
			return nil, fmt.Errorf("invalid pair %q: want word=opposite", spec)
		}
		word := strings.TrimSpace(spec[:eq])
		opposite := strings.TrimSpace(spec[eq+1:])
		if word == "" || opposite == "" {
			return nil, fmt.Errorf("invalid pair %q: empty side", spec)
		}
		out[word] = opposite
	}
	return out, nil
}

// ApplyWebQueryToOptions copies recognised values from the query string into
// the provided options. Validation happens separately via NormalizeAndValidate.
func ApplyWebQueryToOptions(def engine.Options, q url.Values) (engine.Options, error) {
	out := def
	out.Pairs = clonePairs(def.Pairs)

	if raw, ok := lastLiteralValue(q["case_mask"]); ok {
		v, err := ParseBool(raw, "case_mask")
		if err != nil {
			return out, err
		}
		out.CaseMask = v
	}
	if raw, ok := lastLiteralValue(q["max_line_length"]); ok {
		n, err := parseInt(raw, "max_line_length")
		if err != nil {
			return out, err
		}
		out.MaxLineLength = n
	}
	if raw, ok := lastLiteralValue(q["pairs_replace"]); ok {
		v, err := ParseBool(raw, "pairs_replace")
		if err != nil {
			return out, err
		}
		if v {
			out.Pairs = map[string]string{}
		}
	}
	if raw := q["pair"]; len(raw) > 0 {
		extra, err := ParsePairs(raw)
		if err != nil {
			return out, err
		}
		for w, ow := range extra {
			out.Pairs[w] = ow
		}
	}

	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the
// allowed ranges. Pair keys and values are trimmed; empty or self-opposite
// entries are rejected.
func NormalizeAndValidate(o *engine.Options) error {
	if o.MaxLineLength < 0 {
		return fmt.Errorf("max_line_length must be >= 0")
	}
	if len(o.Pairs) > maxPairs {
		return fmt.Errorf("too many pairs: %d (max %d)", len(o.Pairs), maxPairs)
	}
	normalized := make(map[string]string, len(o.Pairs))
	for w, ow := range o.Pairs {
		word := strings.TrimSpace(w)
		opposite := strings.TrimSpace(ow)
		if word == "" || opposite == "" {
			return fmt.Errorf("invalid pair %q=%q: both sides must be non-empty", w, ow)
		}
		if word == opposite {
			return fmt.Errorf("invalid pair: %q is its own opposite", word)
		}
		normalized[word] = opposite
	}
	o.Pairs = normalized
	return nil
}

// CheckLine enforces the upstream line preconditions before the engine runs:
// the cursor column must be a valid 1-based position and the line must not
// exceed the configured maximum length.
func CheckLine(line string, col int, o engine.Options) error {
	if col < 1 {
		return fmt.Errorf("column must be >= 1, got %d", col)
	}
	if o.MaxLineLength > 0 && len(line) > o.MaxLineLength {
		return fmt.Errorf("line length %d exceeds max_line_length %d", len(line), o.MaxLineLength)
	}
	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the CLI/Web output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "table":
		return "table", nil
	case "tsv", "json":
		return v, nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated values (and comma-separated entries) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func clonePairs(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}
