package life

import (
	"strconv"

	"gol-editor/pkg/engine"
	"gol-editor/pkg/rules"
)

// Config controls the board and rule of a life session.
type Config struct {
	Width  int
	Height int

	// Rule is a rulestring in B/S or LtL notation.
	Rule string
	// Edge names the neighborhood edge policy: flat, dead, clamp or wrap.
	Edge string

	// Density is the share of cells Reset brings to life.
	Density float64
	Seed    int64

	HistoryDepth int
}

// DefaultConfig returns the standard B3/S23 configuration.
func DefaultConfig() Config {
	return Config{
		Width:        256,
		Height:       128,
		Rule:         "B3/S23",
		Edge:         engine.EdgeFlat.String(),
		Density:      0.1,
		Seed:         1337,
		HistoryDepth: engine.MaxHistory,
	}
}

// DefaultLtLConfig returns a configuration running the Bugs LtL preset.
func DefaultLtLConfig() Config {
	c := DefaultConfig()
	c.Rule, _ = rules.Preset(rules.FamilyLtL, "Bugs")
	c.Density = 0.5
	return c
}

// FromMap populates the default config from a string map (flag-style
// key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides c with the recognised keys of cfg. Values that do not
// parse or are out of range are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := rules.Parse(v); err == nil {
			c.Rule = v
		} else if preset, err := rules.Lookup(v); err == nil {
			c.Rule = rules.Generate(preset)
		}
	}
	if v, ok := cfg["edge"]; ok {
		if p, err := engine.ParseEdgePolicy(v); err == nil {
			c.Edge = p.String()
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.HistoryDepth = parsed
		}
	}
	return c
}
