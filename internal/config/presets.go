package config

import "sort"

// Presets are named variations applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"shallow": func(c *Config) {
		c.Bucket.Height = 200
	},
	"deep": func(c *Config) {
		c.Bucket.Height = 50
		c.Bucket.Width = 500
	},
	"moon": func(c *Config) {
		c.Gravity.Y = 162
	},
	// drop places the ball left of the bucket so it falls straight through
	// the bottom edge and keeps wrapping.
	"drop": func(c *Config) {
		c.Ball.X = 50
	},
	"slow": func(c *Config) {
		c.Rates.Render = 30
		c.Rates.Physics = 300
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
