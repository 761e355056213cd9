package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/burgers2d/internal/burgers"
)

const (
	DefaultFrames   = 100
	DefaultTStart   = 0.0
	DefaultTEnd     = 1.0
	DefaultFPS      = 30
	DefaultAnimNu   = 0.0
	DefaultWidth    = 1000
	DefaultHeight   = 500
	DefaultElev     = 60.0
	DefaultAzim     = 135.0
	DefaultZMin     = 1.0
	DefaultZMax     = 2.0
	DefaultFormat   = "gif"
	DefaultOutput   = "animation.gif"
	DefaultLogLevel = "info"
)

type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Solver    SolverConfig    `yaml:"solver"`
	Animation AnimationConfig `yaml:"animation"`
}

// SolverConfig is the fixed part of every solve. The animation overrides T
// and nu per frame.
type SolverConfig struct {
	L  float64 `yaml:"l"`
	M  float64 `yaml:"m"`
	T  float64 `yaml:"t"`
	Nx int     `yaml:"nx"`
	Ny int     `yaml:"ny"`
	Nt int     `yaml:"nt"`
	Nu float64 `yaml:"nu"`
}

type AnimationConfig struct {
	Frames  int     `yaml:"frames"`
	TStart  float64 `yaml:"t_start"`
	TEnd    float64 `yaml:"t_end"`
	FPS     int     `yaml:"fps"`
	Nu      float64 `yaml:"nu"`
	Workers int     `yaml:"workers"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Elev    float64 `yaml:"elev"`
	Azim    float64 `yaml:"azim"`
	ZMin    float64 `yaml:"z_min"`
	ZMax    float64 `yaml:"z_max"`
	Format  string  `yaml:"format"`
	Output  string  `yaml:"output"`
}

func DefaultConfig() *Config {
	p := burgers.DefaultParams()
	return &Config{
		LogLevel: DefaultLogLevel,
		Solver:   FromParams(p),
		Animation: AnimationConfig{
			Frames: DefaultFrames,
			TStart: DefaultTStart,
			TEnd:   DefaultTEnd,
			FPS:    DefaultFPS,
			Nu:     DefaultAnimNu,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Elev:   DefaultElev,
			Azim:   DefaultAzim,
			ZMin:   DefaultZMin,
			ZMax:   DefaultZMax,
			Format: DefaultFormat,
			Output: DefaultOutput,
		},
	}
}

func FromParams(p burgers.Params) SolverConfig {
	return SolverConfig{L: p.L, M: p.M, T: p.T, Nx: p.Nx, Ny: p.Ny, Nt: p.Nt, Nu: p.Nu}
}

func (s SolverConfig) Params() burgers.Params {
	return burgers.Params{L: s.L, M: s.M, T: s.T, Nx: s.Nx, Ny: s.Ny, Nt: s.Nt, Nu: s.Nu}
}

// Load reads a yaml file, or an ini file when the extension is .ini. Keys
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".ini") {
		return loadINI(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadINI(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	d := DefaultConfig()

	root := file.Section("")
	solver := file.Section("solver")
	anim := file.Section("animation")

	return &Config{
		LogLevel: root.Key("log_level").MustString(d.LogLevel),
		Solver: SolverConfig{
			L:  solver.Key("l").MustFloat64(d.Solver.L),
			M:  solver.Key("m").MustFloat64(d.Solver.M),
			T:  solver.Key("t").MustFloat64(d.Solver.T),
			Nx: solver.Key("nx").MustInt(d.Solver.Nx),
			Ny: solver.Key("ny").MustInt(d.Solver.Ny),
			Nt: solver.Key("nt").MustInt(d.Solver.Nt),
			Nu: solver.Key("nu").MustFloat64(d.Solver.Nu),
		},
		Animation: AnimationConfig{
			Frames:  anim.Key("frames").MustInt(d.Animation.Frames),
			TStart:  anim.Key("t_start").MustFloat64(d.Animation.TStart),
			TEnd:    anim.Key("t_end").MustFloat64(d.Animation.TEnd),
			FPS:     anim.Key("fps").MustInt(d.Animation.FPS),
			Nu:      anim.Key("nu").MustFloat64(d.Animation.Nu),
			Workers: anim.Key("workers").MustInt(d.Animation.Workers),
			Width:   anim.Key("width").MustInt(d.Animation.Width),
			Height:  anim.Key("height").MustInt(d.Animation.Height),
			Elev:    anim.Key("elev").MustFloat64(d.Animation.Elev),
			Azim:    anim.Key("azim").MustFloat64(d.Animation.Azim),
			ZMin:    anim.Key("z_min").MustFloat64(d.Animation.ZMin),
			ZMax:    anim.Key("z_max").MustFloat64(d.Animation.ZMax),
			Format:  anim.Key("format").MustString(d.Animation.Format),
			Output:  anim.Key("output").MustString(d.Animation.Output),
		},
	}, nil
}
