package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/hmatsuda/wordflip/internal/engine/opts"
)

// FromEnv builds a configuration layer from WORDFLIP_* environment
// variables. WORDFLIP_PAIRS takes comma-separated "word=opposite" specs.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	if raw := strings.TrimSpace(getenv("WORDFLIP_PAIRS")); raw != "" {
		pairs, err := engineopts.ParsePairs([]string{raw})
		if err != nil {
			errs = append(errs, err)
		} else if len(pairs) > 0 {
			cfg.Engine.Pairs = &pairs
		}
	}
	setBool(&cfg.Engine.PairsReplace, "WORDFLIP_PAIRS_REPLACE")
	setBool(&cfg.Engine.CaseMask, "WORDFLIP_CASE_MASK")
	setInt(&cfg.Engine.MaxLineLength, "WORDFLIP_MAX_LINE_LENGTH", 0, math.MaxInt)

	setBool(&cfg.UI.NotifyFound, "WORDFLIP_NOTIFY_FOUND")
	setBool(&cfg.UI.NotifyNotFound, "WORDFLIP_NOTIFY_NOT_FOUND")
	setString(&cfg.UI.Color, "WORDFLIP_COLOR")
	setString(&cfg.UI.Output, "WORDFLIP_OUTPUT")
	setString(&cfg.UI.Select, "WORDFLIP_SELECT")
	setBool(&cfg.UI.Diff, "WORDFLIP_DIFF")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
