// Package server streams solved frames over a websocket so an external
// renderer can draw them.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/burgers2d/internal/burgers"
)

// MaxFrames caps a single animate request.
const MaxFrames = 1000

// Settings are the defaults a request starts from.
type Settings struct {
	Base   burgers.Params
	Nu     float64
	TStart float64
	TEnd   float64
	// Workers bounds concurrent frame solves per animate request.
	Workers int
}

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	settings Settings
}

func NewServer(addr string, settings Settings) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1 << 16,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		settings: settings,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	entry := log.WithField("remote", conn.RemoteAddr().String())
	entry.Info("client connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	hub := newHub(conn, s.settings, entry)
	done := make(chan struct{})
	go func() {
		defer close(done)
		hub.handleRequests(ctx)
	}()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				entry.WithError(err).Warn("read failed")
			}
			break
		}
		select {
		case hub.requests <- req:
		case <-ctx.Done():
		}
	}

	cancel()
	<-done
	entry.Info("client disconnected")
}

// Serve listens until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", s.addr).Info("frame server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
