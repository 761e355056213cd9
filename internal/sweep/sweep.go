// Package sweep runs the solver across a range of one parameter and
// summarises each result.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/burgers2d/internal/animation"
	"github.com/san-kum/burgers2d/internal/burgers"
	"github.com/san-kum/burgers2d/internal/metrics"
)

var ErrUnknownParam = errors.New("sweep: unknown parameter")

// setters name every sweepable parameter. Integer parameters are rounded.
var setters = map[string]func(*burgers.Params, float64){
	"l":  func(p *burgers.Params, v float64) { p.L = v },
	"m":  func(p *burgers.Params, v float64) { p.M = v },
	"t":  func(p *burgers.Params, v float64) { p.T = v },
	"nu": func(p *burgers.Params, v float64) { p.Nu = v },
	"nx": func(p *burgers.Params, v float64) { p.Nx = int(math.Round(v)) },
	"ny": func(p *burgers.Params, v float64) { p.Ny = int(math.Round(v)) },
	"nt": func(p *burgers.Params, v float64) { p.Nt = int(math.Round(v)) },
}

// Sweep varies Param over Steps evenly spaced values in [Min, Max].
type Sweep struct {
	Param string  `yaml:"param"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

// File is a sweep definition on disk. Base fields left out keep the solver
// defaults.
type File struct {
	Base  burgers.Params `yaml:"base"`
	Sweep Sweep          `yaml:"sweep"`
}

type Result struct {
	Value   float64
	Params  burgers.Params
	Metrics map[string]float64
	// Stable is the advisory verdict on the time step before solving.
	Stable bool
}

// Load reads a sweep file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f := File{Base: burgers.DefaultParams()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s Sweep) Values() []float64 {
	return animation.Timeline(s.Min, s.Max, s.Steps)
}

// Run solves base once per sweep value. Solves that fail validation abort
// the sweep; solutions that blow up are reported through their metrics.
func Run(ctx context.Context, base burgers.Params, s Sweep) ([]Result, error) {
	set, ok := setters[s.Param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, s.Param)
	}

	values := s.Values()
	results := make([]Result, 0, len(values))

	for i, v := range values {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		p := base
		set(&p, v)
		if err := p.Validate(); err != nil {
			return results, fmt.Errorf("%s=%g: %w", s.Param, v, err)
		}

		sol, err := burgers.Solve(p)
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", s.Param, v, err)
		}

		results = append(results, Result{
			Value:   v,
			Params:  p,
			Metrics: metrics.Collect(sol.U, metrics.Defaults()...),
			Stable:  p.Stability().Stable,
		})

		log.WithFields(log.Fields{
			"step":  i + 1,
			"steps": len(values),
			"param": s.Param,
			"value": v,
		}).Debug("sweep step done")
	}

	return results, nil
}
