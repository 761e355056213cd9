package config

import "sort"

// Presets are complete configurations keyed by scenario name.
var Presets = map[string]func() *Config{
	// The reference animation: inviscid, 100 frames over t in [0, 1].
	"reference": DefaultConfig,
	"inviscid": func() *Config {
		c := DefaultConfig()
		c.Animation.TEnd = 0.5
		c.Animation.Frames = 50
		c.Animation.Output = "inviscid.gif"
		return c
	},
	"viscous": func() *Config {
		c := DefaultConfig()
		c.Animation.Nu = 0.5
		c.Animation.Output = "viscous.gif"
		return c
	},
	"low-viscosity": func() *Config {
		c := DefaultConfig()
		c.Animation.Nu = 0.05
		c.Animation.Output = "low_viscosity.gif"
		return c
	},
	"fine": func() *Config {
		c := DefaultConfig()
		c.Solver.Nx, c.Solver.Ny, c.Solver.Nt = 80, 80, 4000
		c.Animation.Nu = 0.5
		c.Animation.Output = "fine.gif"
		return c
	},
	"long": func() *Config {
		c := DefaultConfig()
		c.Solver.Nt = 5000
		c.Animation.TEnd = 2
		c.Animation.Frames = 200
		c.Animation.Nu = 0.1
		c.Animation.Output = "long.gif"
		return c
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
