package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/hmatsuda/wordflip/internal/engine/opts"
)

var engineKeyMap = map[string]string{
	"pairs":           "pairs",
	"dictionary":      "pairs",
	"pairs_replace":   "pairs_replace",
	"replace_pairs":   "pairs_replace",
	"case_mask":       "case_mask",
	"casemask":        "case_mask",
	"max_line_length": "max_line_length",
	"max_line_len":    "max_line_length",
}

var uiKeyMap = map[string]string{
	"notify_found":     "notify_found",
	"notify_not_found": "notify_not_found",
	"color":            "color",
	"output":           "output",
	"select":           "select",
	"diff":             "diff",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	engineSection := make(map[string]any)
	uiSection := make(map[string]any)

	if block, ok := raw["engine"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("engine: %w", err)
		}
		if err := fillSection(engineSection, sub, engineKeyMap, "engine"); err != nil {
			return cfg, err
		}
	}
	if block, ok := raw["ui"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("ui: %w", err)
		}
		if err := fillSection(uiSection, sub, uiKeyMap, "ui"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "engine", "ui":
			continue
		default:
			if canonical, ok := engineKeyMap[norm]; ok {
				engineSection[canonical] = value
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				uiSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignEngine(engineSection, &cfg.Engine); err != nil {
		return cfg, fmt.Errorf("engine: %w", err)
	}
	if err := assignUI(uiSection, &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignEngine(section map[string]any, dst *EngineConfig) error {
	for key, value := range section {
		switch key {
		case "pairs":
			pairs, err := expectPairs(value, key)
			if err != nil {
				return err
			}
			dst.Pairs = &pairs
		case "pairs_replace":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.PairsReplace = &b
		case "case_mask":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.CaseMask = &b
		case "max_line_length":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxLineLength = &n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	for key, value := range section {
		switch key {
		case "notify_found":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.NotifyFound = &b
		case "notify_not_found":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.NotifyNotFound = &b
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "select":
			str, err := expectSelect(value)
			if err != nil {
				return err
			}
			dst.Select = &str
		case "diff":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Diff = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

// expectSelect also accepts a bare integer ("select: 2" in YAML decodes to
// an int) and canonicalizes it to its string form.
func expectSelect(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		if v != float64(int(v)) {
			return "", fmt.Errorf("expected integer or string for select, got %v", value)
		}
		return strconv.Itoa(int(v)), nil
	default:
		return "", fmt.Errorf("expected integer or string for select, got %T", value)
	}
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

// expectPairs tolerates scalar keys and values: YAML decodes an unquoted
// "true: false" entry as booleans, and an opposite dictionary is exactly
// where such words appear, so they are folded back to their literal form.
func expectPairs(value any, field string) (map[string]string, error) {
	entries := make(map[any]any)
	switch typed := value.(type) {
	case map[string]any:
		for k, v := range typed {
			entries[k] = v
		}
	case map[any]any:
		entries = typed
	default:
		return nil, fmt.Errorf("%s: expected map, got %T", field, value)
	}
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		word, ok := scalarString(k)
		if !ok {
			return nil, fmt.Errorf("%s: unsupported key %v (%T)", field, k, k)
		}
		opposite, ok := scalarString(v)
		if !ok {
			return nil, fmt.Errorf("%s: unsupported value %v (%T) for %q", field, v, v, word)
		}
		word = strings.TrimSpace(word)
		opposite = strings.TrimSpace(opposite)
		if word == "" || opposite == "" {
			return nil, fmt.Errorf("%s: pair %q=%q has an empty side", field, word, opposite)
		}
		out[word] = opposite
	}
	return out, nil
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		if t == float64(int(t)) {
			return strconv.Itoa(int(t)), true
		}
		return "", false
	default:
		return "", false
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
