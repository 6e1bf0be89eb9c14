package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"gol-editor/pkg/engine"
	"gol-editor/pkg/rules"
)

// Config represents the host parameters for the application. It can be
// read from a YAML file and overridden from the command line.
type Config struct {
	Sim     string `yaml:"sim"`
	Scale   int    `yaml:"scale"`
	TPS     int    `yaml:"tps"`
	Seed    int64  `yaml:"seed"`
	HUD     int    `yaml:"hud_width"`
	Pattern string `yaml:"pattern"`

	// Board overrides. Zero values, and a nil Density, keep the sim defaults.
	Rule    string   `yaml:"rule"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Edge    string   `yaml:"edge"`
	Density *float64 `yaml:"density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 30, Seed: 42, HUD: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, ltl)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels, 0 hides it")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file loaded instead of a random board")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rulestring or preset name")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge policy: flat, dead, clamp or wrap")
	fs.Var(optionalFloat{&c.Density}, "density", "share of cells alive after reset")
}

// optionalFloat is a flag.Value that leaves its target nil until set.
type optionalFloat struct{ p **float64 }

func (o optionalFloat) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return strconv.FormatFloat(**o.p, 'f', -1, 64)
}

func (o optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*o.p = &v
	return nil
}

// LoadConfig reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Sim == "" {
		errs = append(errs, errors.New("sim must be set"))
	}
	if c.Scale < 1 {
		errs = append(errs, errors.New("scale must be >= 1"))
	}
	if c.TPS < 1 {
		errs = append(errs, errors.New("tps must be >= 1"))
	}
	if c.HUD < 0 {
		errs = append(errs, errors.New("hud_width must be >= 0"))
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, errors.New("width and height must be >= 0"))
	}
	if c.Density != nil && (*c.Density < 0 || *c.Density > 1) {
		errs = append(errs, errors.New("density must be between 0 and 1"))
	}
	if c.Rule != "" {
		if _, err := rules.Parse(c.Rule); err != nil {
			if _, lookupErr := rules.Lookup(c.Rule); lookupErr != nil {
				errs = append(errs, err)
			}
		}
	}
	if _, err := engine.ParseEdgePolicy(c.Edge); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SimConfig converts the board overrides into the key/value map sim
// factories accept.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	if c.Width > 0 {
		m["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		m["h"] = strconv.Itoa(c.Height)
	}
	if c.Edge != "" {
		m["edge"] = c.Edge
	}
	if c.Density != nil {
		m["density"] = strconv.FormatFloat(*c.Density, 'f', -1, 64)
	}
	return m
}
