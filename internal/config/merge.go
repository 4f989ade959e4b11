package config

import "strings"

// MergeEngine resolves engine settings across layers, later layers winning.
// A layer's pairs overlay the accumulated dictionary unless the same layer
// sets pairs_replace, which discards everything gathered so far first.
func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	out.Pairs = clonePairs(base.Pairs)
	for _, layer := range layers {
		if layer.PairsReplace != nil && *layer.PairsReplace {
			out.Pairs = map[string]string{}
		}
		if layer.Pairs != nil {
			for w, ow := range *layer.Pairs {
				out.Pairs[w] = ow
			}
		}
		out.CaseMask = ResolveBool(out.CaseMask, layer.CaseMask)
		out.MaxLineLength = ResolveInt(out.MaxLineLength, layer.MaxLineLength)
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.NotifyFound = ResolveBool(out.NotifyFound, layer.NotifyFound)
		out.NotifyNotFound = ResolveBool(out.NotifyNotFound, layer.NotifyNotFound)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Select = ResolveAndTrim(out.Select, layer.Select)
		out.Diff = ResolveBool(out.Diff, layer.Diff)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	if strings.TrimSpace(out.Select) == "" {
		out.Select = "auto"
	}
	return out
}
