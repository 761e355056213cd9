package animation

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/burgers2d/internal/burgers"
)

func smallParams() burgers.Params {
	p := burgers.DefaultParams()
	p.Nx, p.Ny, p.Nt = 10, 10, 50
	return p
}

func TestTimeline(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		frames     int
		want       []float64
	}{
		{"reference endpoints", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"single frame", 0.3, 1, 1, []float64{0.3}},
		{"none", 0, 1, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Timeline(tt.start, tt.end, tt.frames)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d times, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("time %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestTimelineReferenceLength(t *testing.T) {
	ts := Timeline(0, 1, 100)
	if len(ts) != 100 || ts[0] != 0 || ts[99] != 1 {
		t.Errorf("unexpected timeline: len=%d first=%v last=%v", len(ts), ts[0], ts[len(ts)-1])
	}
}

func TestDriverDeliversInOrder(t *testing.T) {
	d := NewDriver(smallParams(), 0.1)
	d.Workers = 3

	times := Timeline(0, 0.1, 7)
	var got []Frame
	err := d.Run(context.Background(), times, SinkFunc(func(f Frame) error {
		got = append(got, f)
		return nil
	}))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(got) != len(times) {
		t.Fatalf("expected %d frames, got %d", len(times), len(got))
	}

	for i, f := range got {
		if f.Index != i {
			t.Errorf("frame %d delivered at position %d", f.Index, i)
		}
		if f.T != times[i] || f.Solution.Params.T != times[i] {
			t.Errorf("frame %d: expected t=%v, got %v", i, times[i], f.T)
		}
		if f.Nu != 0.1 || f.Solution.Params.Nu != 0.1 {
			t.Errorf("frame %d: expected nu=0.1, got %v", i, f.Nu)
		}
	}

	want, err := d.Solve(times[4])
	if err != nil {
		t.Fatal(err)
	}
	if !got[4].Solution.U.Equal(want.U) {
		t.Error("concurrent frame differs from a direct solve")
	}
}

func TestDriverFirstFrameIsInitialCondition(t *testing.T) {
	p := smallParams()
	d := NewDriver(p, 0)

	sol, err := d.Solve(0)
	if err != nil {
		t.Fatal(err)
	}
	if !sol.U.Equal(burgers.InitialCondition(p)) {
		t.Error("frame at t=0 should be the initial condition")
	}
}

func TestDriverPropagatesZeroSteps(t *testing.T) {
	p := smallParams()
	p.Nt = 0
	d := NewDriver(p, 0)

	err := d.Run(context.Background(), []float64{0, 0.5}, SinkFunc(func(Frame) error { return nil }))
	if !errors.Is(err, burgers.ErrZeroSteps) {
		t.Errorf("expected ErrZeroSteps, got %v", err)
	}
}

func TestDriverStopsOnSinkError(t *testing.T) {
	d := NewDriver(smallParams(), 0)
	d.Workers = 1
	boom := errors.New("boom")

	calls := 0
	err := d.Run(context.Background(), Timeline(0, 0.1, 5), SinkFunc(func(Frame) error {
		calls++
		return boom
	}))
	if !errors.Is(err, boom) {
		t.Errorf("expected sink error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 sink call, got %d", calls)
	}
}

func TestDriverHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(smallParams(), 0)
	err := d.Run(ctx, Timeline(0, 0.1, 3), SinkFunc(func(Frame) error {
		t.Error("sink should not be called after cancellation")
		return nil
	}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
