// Package animation solves a sequence of frames that differ only in the
// simulated time and hands them, in order, to a FrameSink.
package animation

import (
	"context"
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/burgers2d/internal/burgers"
)

type Frame struct {
	Index    int
	T        float64
	Nu       float64
	Solution *burgers.Solution
}

// FrameSink consumes frames in increasing Index order.
type FrameSink interface {
	WriteFrame(Frame) error
}

// SinkFunc adapts a function to FrameSink.
type SinkFunc func(Frame) error

func (f SinkFunc) WriteFrame(fr Frame) error { return f(fr) }

// Driver holds everything except T fixed across frames.
type Driver struct {
	Base    burgers.Params
	Nu      float64
	Workers int
}

func NewDriver(base burgers.Params, nu float64) *Driver {
	return &Driver{Base: base, Nu: nu, Workers: runtime.NumCPU()}
}

// Solve computes the single frame at time t.
func (d *Driver) Solve(t float64) (*burgers.Solution, error) {
	p := d.Base
	p.T = t
	p.Nu = d.Nu
	return burgers.Solve(p)
}

// Run solves one frame per entry of times and writes each to sink.
// Up to Workers frames are solved at once; delivery is strictly ordered.
// Cancellation is observed between batches.
func (d *Driver) Run(ctx context.Context, times []float64, sink FrameSink) error {
	workers := d.Workers
	if workers < 1 {
		workers = 1
	}

	for start := 0; start < len(times); start += workers {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+workers, len(times))
		batch := make([]*burgers.Solution, end-start)

		g, _ := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				sol, err := d.Solve(times[i])
				if err != nil {
					return fmt.Errorf("frame %d (t=%g): %w", i, times[i], err)
				}
				batch[i-start] = sol
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for k, sol := range batch {
			fr := Frame{Index: start + k, T: times[start+k], Nu: d.Nu, Solution: sol}
			if err := sink.WriteFrame(fr); err != nil {
				return fmt.Errorf("frame %d: %w", fr.Index, err)
			}
			log.WithFields(log.Fields{
				"frame": fr.Index,
				"t":     fr.T,
				"nu":    fr.Nu,
			}).Debug("frame written")
		}
	}

	return nil
}
