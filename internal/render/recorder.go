package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"math"
	"os"

	"github.com/icza/mjpeg"

	"github.com/san-kum/burgers2d/internal/animation"
)

var ErrUnknownFormat = errors.New("render: unknown animation format")

// Recorder is a frame sink backed by a file. Close must be called to
// finish the file.
type Recorder interface {
	animation.FrameSink
	Close() error
}

// NewRecorder opens a recorder for format "gif" or "mjpeg".
func NewRecorder(format, path string, s *Surface, fps float64) (Recorder, error) {
	switch format {
	case "gif":
		return NewGIFWriter(path, s, fps), nil
	case "mjpeg", "avi":
		return NewMJPEGWriter(path, s, fps)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// GIFWriter collects frames in memory and encodes them on Close.
type GIFWriter struct {
	path    string
	surface *Surface
	delay   int
	palette color.Palette
	lookup  map[color.RGBA]uint8
	anim    gif.GIF
}

func NewGIFWriter(path string, s *Surface, fps float64) *GIFWriter {
	pal := color.Palette{background, ink, gridInk}
	pal = append(pal, s.Colormap.Colors()...)
	return &GIFWriter{
		path:    path,
		surface: s,
		delay:   gifDelay(fps),
		palette: pal,
		lookup:  make(map[color.RGBA]uint8),
		anim:    gif.GIF{LoopCount: 0},
	}
}

// gifDelay converts frames per second to hundredths of a second per frame.
func gifDelay(fps float64) int {
	if !(fps > 0) {
		return 0
	}
	return max(1, int(math.Round(100/fps)))
}

func (w *GIFWriter) WriteFrame(fr animation.Frame) error {
	img := w.surface.Render(fr.Solution, Title(fr.Nu))
	w.anim.Image = append(w.anim.Image, w.paletted(img))
	w.anim.Delay = append(w.anim.Delay, w.delay)
	return nil
}

// paletted quantises img. Rendered frames use few distinct colors, so
// nearest-color searches are cached per color.
func (w *GIFWriter) paletted(img *image.RGBA) *image.Paletted {
	b := img.Bounds()
	out := image.NewPaletted(b, w.palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			idx, ok := w.lookup[c]
			if !ok {
				idx = uint8(w.palette.Index(c))
				w.lookup[c] = idx
			}
			out.SetColorIndex(x, y, idx)
		}
	}
	return out
}

func (w *GIFWriter) Frames() int { return len(w.anim.Image) }

func (w *GIFWriter) Close() error {
	if len(w.anim.Image) == 0 {
		return nil
	}
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &w.anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MJPEGWriter streams frames as JPEGs into an AVI container.
type MJPEGWriter struct {
	surface *Surface
	aw      mjpeg.AviWriter
	buf     bytes.Buffer
	opts    *jpeg.Options
}

func NewMJPEGWriter(path string, s *Surface, fps float64) (*MJPEGWriter, error) {
	aw, err := mjpeg.New(path, int32(s.Width), int32(s.Height), int32(math.Max(1, math.Round(fps))))
	if err != nil {
		return nil, err
	}
	return &MJPEGWriter{surface: s, aw: aw, opts: &jpeg.Options{Quality: 90}}, nil
}

func (w *MJPEGWriter) WriteFrame(fr animation.Frame) error {
	img := w.surface.Render(fr.Solution, Title(fr.Nu))
	defer w.buf.Reset()
	if err := jpeg.Encode(&w.buf, img, w.opts); err != nil {
		return err
	}
	return w.aw.AddFrame(w.buf.Bytes())
}

func (w *MJPEGWriter) Close() error {
	return w.aw.Close()
}
