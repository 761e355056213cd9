package sweep

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/burgers2d/internal/burgers"
)

func base() burgers.Params {
	p := burgers.DefaultParams()
	p.Nx, p.Ny, p.Nt = 12, 12, 100
	p.T = 0.1
	return p
}

func TestRunViscositySweep(t *testing.T) {
	results, err := Run(context.Background(), base(), Sweep{Param: "nu", Min: 0, Max: 0.4, Steps: 3})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i, r := range results {
		if r.Params.Nu != r.Value {
			t.Errorf("result %d: nu %v does not match value %v", i, r.Params.Nu, r.Value)
		}
		if !r.Stable || r.Metrics["finite"] != 1 {
			t.Errorf("result %d: expected a stable finite solve", i)
		}
	}

	// more viscosity flattens the hump faster
	if results[2].Metrics["max"] >= results[0].Metrics["max"] {
		t.Errorf("expected lower peak at nu=0.4 (%v) than at nu=0 (%v)",
			results[2].Metrics["max"], results[0].Metrics["max"])
	}
}

func TestRunRoundsIntegerParams(t *testing.T) {
	results, err := Run(context.Background(), base(), Sweep{Param: "nt", Min: 100, Max: 200, Steps: 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{100, 150, 200}
	for i, r := range results {
		if r.Params.Nt != want[i] {
			t.Errorf("step %d: expected nt %d, got %d", i, want[i], r.Params.Nt)
		}
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run(context.Background(), base(), Sweep{Param: "gamma", Steps: 2}); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}

	_, err := Run(context.Background(), base(), Sweep{Param: "nt", Min: 0, Max: 10, Steps: 2})
	if !errors.Is(err, burgers.ErrZeroSteps) {
		t.Errorf("expected ErrZeroSteps, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, base(), Sweep{Param: "nu", Min: 0, Max: 1, Steps: 2}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	data := []byte("base:\n  t: 0.5\n  nx: 20\nsweep:\n  param: nu\n  min: 0\n  max: 1\n  steps: 5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if f.Base.T != 0.5 || f.Base.Nx != 20 {
		t.Errorf("expected t=0.5 nx=20, got %+v", f.Base)
	}
	if f.Base.Ny != burgers.DefaultNy || f.Base.Nt != burgers.DefaultNt {
		t.Errorf("expected defaults for unset fields, got %+v", f.Base)
	}
	if f.Sweep.Param != "nu" || len(f.Sweep.Values()) != 5 {
		t.Errorf("unexpected sweep %+v", f.Sweep)
	}
}
