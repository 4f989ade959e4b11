package config

import (
	"github.com/hmatsuda/wordflip/internal/engine"
	engineopts "github.com/hmatsuda/wordflip/internal/engine/opts"
)

// EngineConfig is one configuration layer for the search engine. Pointer
// fields distinguish "not set" from explicit zero values so layers can be
// merged with well-defined precedence.
type EngineConfig struct {
	Pairs         *map[string]string `yaml:"pairs" toml:"pairs" json:"pairs"`
	PairsReplace  *bool              `yaml:"pairs_replace" toml:"pairs_replace" json:"pairs_replace"`
	CaseMask      *bool              `yaml:"case_mask" toml:"case_mask" json:"case_mask"`
	MaxLineLength *int               `yaml:"max_line_length" toml:"max_line_length" json:"max_line_length"`
}

// UIConfig is one configuration layer for presentation concerns.
type UIConfig struct {
	NotifyFound    *bool   `yaml:"notify_found" toml:"notify_found" json:"notify_found"`
	NotifyNotFound *bool   `yaml:"notify_not_found" toml:"notify_not_found" json:"notify_not_found"`
	Color          *string `yaml:"color" toml:"color" json:"color"`
	Output         *string `yaml:"output" toml:"output" json:"output"`
	Select         *string `yaml:"select" toml:"select" json:"select"`
	Diff           *bool   `yaml:"diff" toml:"diff" json:"diff"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

// EngineSettings is the resolved engine configuration after merging all
// layers. Pairs always holds the full effective dictionary.
type EngineSettings struct {
	Pairs         map[string]string
	CaseMask      bool
	MaxLineLength int
}

// UISettings is the resolved presentation configuration.
type UISettings struct {
	NotifyFound    bool
	NotifyNotFound bool
	Color          string
	Output         string
	Select         string
	Diff           bool
}

// DefaultEngineSettings mirrors opts.Defaults as the base layer.
func DefaultEngineSettings() EngineSettings {
	def := engineopts.Defaults()
	return EngineSettings{
		Pairs:         def.Pairs,
		CaseMask:      def.CaseMask,
		MaxLineLength: def.MaxLineLength,
	}
}

func DefaultUISettings() UISettings {
	return UISettings{
		NotifyFound:    true,
		NotifyNotFound: true,
		Color:          "auto",
		Output:         "table",
		Select:         "auto",
		Diff:           false,
	}
}

// ToOptions converts resolved settings into engine options for one call.
func (s EngineSettings) ToOptions() engine.Options {
	return engine.Options{
		Pairs:         clonePairs(s.Pairs),
		CaseMask:      s.CaseMask,
		MaxLineLength: s.MaxLineLength,
	}
}

func clonePairs(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
