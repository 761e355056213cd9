package render

import (
	"context"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/burgers2d/internal/animation"
	"github.com/san-kum/burgers2d/internal/burgers"
)

func record(t *testing.T, rec Recorder, frames int) {
	t.Helper()
	p := burgers.DefaultParams()
	p.Nx, p.Ny, p.Nt = 12, 12, 50
	d := animation.NewDriver(p, 0)
	if err := d.Run(context.Background(), animation.Timeline(0, 0.1, frames), rec); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestGIFWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animation.gif")
	w := NewGIFWriter(path, NewSurface(120, 60, 1, 2), 30)
	record(t, w, 4)

	if w.Frames() != 4 {
		t.Errorf("expected 4 frames, got %d", w.Frames())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 4 {
		t.Errorf("expected 4 decoded frames, got %d", len(anim.Image))
	}
	if anim.Delay[0] != 3 {
		t.Errorf("expected delay 3 at 30 fps, got %d", anim.Delay[0])
	}
}

func TestGIFDelay(t *testing.T) {
	tests := []struct {
		fps  float64
		want int
	}{
		{30, 3},
		{10, 10},
		{1000, 1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := gifDelay(tt.fps); got != tt.want {
			t.Errorf("gifDelay(%v) = %d, want %d", tt.fps, got, tt.want)
		}
	}
}

func TestMJPEGWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animation.avi")
	rec, err := NewRecorder("mjpeg", path, NewSurface(120, 60, 1, 2), 30)
	if err != nil {
		t.Fatal(err)
	}
	record(t, rec, 3)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty avi")
	}
}

func TestNewRecorderUnknownFormat(t *testing.T) {
	_, err := NewRecorder("webm", "out.webm", NewSurface(10, 10, 1, 2), 30)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
