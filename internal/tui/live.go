// Package tui is an interactive terminal viewer for the Burgers solution.
//
// Keys:
//
//	Space      pause or resume
//	Up/Down    viscosity x1.25 or /1.25
//	Left/Right step time back or forward one frame
//	A/D W/S    rotate the view
//	+/-        zoom
//	T          cycle themes
//	R          reset
//	Q          quit
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/burgers2d/internal/animation"
	"github.com/san-kum/burgers2d/internal/burgers"
	"github.com/san-kum/burgers2d/internal/metrics"
	"github.com/san-kum/burgers2d/internal/render"
)

const (
	canvasWidth  = 60
	canvasHeight = 22

	nuFactor = 1.25
	// nuFloor is where Up leaves zero viscosity and Down returns to it.
	nuFloor = 0.01
)

// Options configures the viewer. Frames times are spread over
// [TStart, TEnd] exactly as an animation with the same settings.
type Options struct {
	Base       burgers.Params
	Nu         float64
	TStart     float64
	TEnd       float64
	Frames     int
	FPS        float64
	ZMin, ZMax float64
	Elev, Azim float64
}

type tickMsg time.Time

type Model struct {
	opts    Options
	driver  *animation.Driver
	times   []float64
	frame   int
	running bool

	sol   *burgers.Solution
	stats map[string]float64
	err   error

	canvas *render.Canvas
	camera *render.Camera
	theme  int
	styles styles
}

func NewModel(opts Options) Model {
	times := animation.Timeline(opts.TStart, opts.TEnd, opts.Frames)
	if len(times) == 0 {
		times = []float64{opts.TStart}
	}
	m := Model{
		opts:    opts,
		driver:  animation.NewDriver(opts.Base, opts.Nu),
		times:   times,
		running: true,
		canvas:  render.NewCanvas(canvasWidth, canvasHeight),
		camera:  render.NewCamera(opts.Elev, opts.Azim),
		styles:  newStyles(themes[0]),
	}
	m.solve()
	return m
}

// Run starts the viewer on the alternate screen and blocks until quit.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) tick() tea.Cmd {
	interval := time.Second / 10
	if m.opts.FPS > 0 {
		interval = time.Duration(float64(time.Second) / m.opts.FPS)
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "up", "k":
			m.setNu(raiseNu(m.driver.Nu))
		case "down", "j":
			m.setNu(lowerNu(m.driver.Nu))
		case "left", "h":
			m.seek(-1)
		case "right", "l":
			m.seek(1)
		case "r":
			m.reset()
		case "a":
			m.camera.Rotate(0, -5)
		case "d":
			m.camera.Rotate(0, 5)
		case "w":
			m.camera.Rotate(5, 0)
		case "s":
			m.camera.Rotate(-5, 0)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "t":
			m.theme = (m.theme + 1) % len(themes)
			m.styles = newStyles(themes[m.theme])
		}
	case tickMsg:
		if m.running {
			m.frame = (m.frame + 1) % len(m.times)
			m.solve()
		}
		return m, m.tick()
	}
	return m, nil
}

func raiseNu(nu float64) float64 {
	if nu <= 0 {
		return nuFloor
	}
	return nu * nuFactor
}

func lowerNu(nu float64) float64 {
	next := nu / nuFactor
	if next < nuFloor {
		return 0
	}
	return next
}

func (m *Model) setNu(nu float64) {
	m.driver.Nu = nu
	m.solve()
}

// seek pauses and moves one frame, clamped to the timeline.
func (m *Model) seek(dir int) {
	m.running = false
	m.frame = max(0, min(len(m.times)-1, m.frame+dir))
	m.solve()
}

func (m *Model) reset() {
	m.frame = 0
	m.driver.Nu = m.opts.Nu
	m.camera = render.NewCamera(m.opts.Elev, m.opts.Azim)
	m.running = true
	m.solve()
}

func (m *Model) solve() {
	sol, err := m.driver.Solve(m.times[m.frame])
	m.err = err
	if err != nil {
		return
	}
	m.sol = sol
	m.stats = metrics.Collect(sol.U, metrics.Defaults()...)
}

func (m Model) T() float64  { return m.times[m.frame] }
func (m Model) Nu() float64 { return m.driver.Nu }

func (m Model) View() string {
	m.canvas.Clear()
	if m.sol != nil {
		render.DrawWireframe(m.canvas, m.camera, m.sol, m.opts.ZMin, m.opts.ZMax)
	}
	canvasView := m.styles.canvas.Render(m.canvas.String())

	st := m.styles
	var s strings.Builder
	s.WriteString(st.header.Render("BURGERS 2D") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if m.sol != nil {
		if profile := centerline(m.sol); len(profile) > 1 {
			chart := asciigraph.Plot(profile,
				asciigraph.Height(6),
				asciigraph.Width(36),
				asciigraph.Caption("u(x, y = M/2)"))
			s.WriteString(st.graph.Render(chart) + "\n\n")
		}
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.3f / %.3f", m.T(), m.opts.TEnd))
	row("Frame", fmt.Sprintf("%d / %d", m.frame+1, len(m.times)))
	row("nu", fmt.Sprintf("%.4g", m.Nu()))
	if m.stats != nil {
		row("max u", fmt.Sprintf("%.4f", m.stats["max"]))
		row("min u", fmt.Sprintf("%.4f", m.stats["min"]))
		row("mean u", fmt.Sprintf("%.4f", m.stats["mean"]))
	}

	p := m.opts.Base
	p.T, p.Nu = m.T(), m.Nu()
	if rep := p.Stability(); !rep.Stable {
		s.WriteString("\n" + st.warn.Render(fmt.Sprintf("UNSTABLE: need Nt >= %d", burgers.MinSteps(p))) + "\n")
	}
	if m.stats != nil && m.stats["finite"] < 1 {
		s.WriteString(st.warn.Render(fmt.Sprintf("non-finite cells: %.1f%%", 100*(1-m.stats["finite"]))) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + st.warn.Render(m.err.Error()) + "\n")
	}

	s.WriteString(st.help.Render("SP:Pause R:Reset Q:Quit T:Theme\n↑↓:nu ←→:Time AD/WS:Rotate +-:Zoom"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
}

// centerline samples u along x at the middle y index, dropping
// non-finite values asciigraph cannot plot.
func centerline(sol *burgers.Solution) []float64 {
	if sol.U.Rows() == 0 {
		return nil
	}
	raw := sol.U.Row(sol.U.Rows() / 2)
	out := raw[:0]
	for _, v := range raw {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
