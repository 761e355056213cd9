package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/burgers2d/internal/animation"
	"github.com/san-kum/burgers2d/internal/metrics"
	"github.com/san-kum/burgers2d/internal/storage"
)

var (
	ErrUnknownType = errors.New("server: unknown request type")
	ErrFrames      = errors.New("server: frames out of range")
)

// Hub serves one connection. Requests are handled one at a time and all
// writes happen on the handling goroutine.
type Hub struct {
	conn     *websocket.Conn
	settings Settings
	log      *log.Entry
	requests chan Request
}

func newHub(conn *websocket.Conn, settings Settings, entry *log.Entry) *Hub {
	return &Hub{
		conn:     conn,
		settings: settings,
		log:      entry,
		requests: make(chan Request, 10),
	}
}

// FramePayload is the content of a frame reply.
type FramePayload struct {
	Index int `json:"index"`
	storage.Snapshot
}

func (h *Hub) handleRequests(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-h.requests:
			if err := h.handle(ctx, req); err != nil {
				h.log.WithError(err).WithField("type", req.Type).Warn("request failed")
				if werr := h.writeError(err); werr != nil {
					h.log.WithError(werr).Warn("write failed")
					return
				}
			}
		}
	}
}

func (h *Hub) driver(req Request) *animation.Driver {
	nu := h.settings.Nu
	if req.Nu != nil {
		nu = *req.Nu
	}
	d := animation.NewDriver(h.settings.Base, nu)
	if h.settings.Workers > 0 {
		d.Workers = h.settings.Workers
	}
	return d
}

func (h *Hub) handle(ctx context.Context, req Request) error {
	d := h.driver(req)

	switch req.Type {
	case TypeSolve:
		p := d.Base
		p.T, p.Nu = req.T, d.Nu
		if err := p.Validate(); err != nil {
			return err
		}
		sol, err := d.Solve(req.T)
		if err != nil {
			return err
		}
		return h.writeFrame(animation.Frame{Index: 0, T: req.T, Nu: d.Nu, Solution: sol})

	case TypeAnimate:
		if req.Frames < 1 || req.Frames > MaxFrames {
			return fmt.Errorf("%w: %d", ErrFrames, req.Frames)
		}
		p := d.Base
		p.T, p.Nu = h.settings.TEnd, d.Nu
		if err := p.Validate(); err != nil {
			return err
		}
		times := animation.Timeline(h.settings.TStart, h.settings.TEnd, req.Frames)
		if err := d.Run(ctx, times, animation.SinkFunc(h.writeFrame)); err != nil {
			return err
		}
		h.log.WithFields(log.Fields{"frames": req.Frames, "nu": d.Nu}).Info("animation streamed")
		return h.write(TypeDone, nil)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}
}

func (h *Hub) writeFrame(fr animation.Frame) error {
	stats := metrics.Collect(fr.Solution.U, metrics.Defaults()...)
	return h.write(TypeFrame, FramePayload{Index: fr.Index, Snapshot: storage.NewSnapshot(fr.Solution, stats)})
}

func (h *Hub) writeError(err error) error {
	return h.write(TypeError, err.Error())
}

func (h *Hub) write(typ string, content any) error {
	msg := Msg{Type: typ}
	if content != nil {
		data, err := json.Marshal(content)
		if err != nil {
			return err
		}
		msg.Content = data
	}
	return h.conn.WriteJSON(&msg)
}
