package config

import (
	"fmt"
	"strings"

	engineopts "github.com/hmatsuda/wordflip/internal/engine/opts"
)

func CanonicalizeColor(raw string) (string, error) {
	color := strings.ToLower(strings.TrimSpace(raw))
	if color == "" {
		return "auto", nil
	}
	switch color {
	case "auto", "always", "never":
		return color, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

// NormalizeUI canonicalizes and validates resolved UI settings.
func NormalizeUI(values UISettings) (UISettings, error) {
	var err error
	values.Color, err = CanonicalizeColor(values.Color)
	if err != nil {
		return values, err
	}
	values.Output, err = engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	spec, err := engineopts.ParseSelect(values.Select)
	if err != nil {
		return values, err
	}
	values.Select = spec.Strategy
	if spec.Strategy == "index" {
		values.Select = fmt.Sprintf("%d", spec.Index)
	}
	return values, nil
}
