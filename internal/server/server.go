// Package server exposes one game session over HTTP: the board page, the
// WebSocket event stream, and a QR code for joining from a phone.
package server

import (
	"context"
	_ "embed"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"github.com/SAMIC97/Christmas-Jeopardy/internal/game"
)

//go:embed web/index.html
var boardHTML []byte

const (
	httpTimeout = 10 * time.Second

	// tickInterval is how often the question clock advances. 100ms keeps the
	// on-screen progress bar smooth without flooding the event stream.
	tickInterval = 100 * time.Millisecond
)

// Options configures a Server.
type Options struct {
	Bind string
	Port int
}

// Server ties one TriviaGame to its HTTP surface.
type Server struct {
	opts Options
	game *game.TriviaGame
	hub  *Hub
	log  *logrus.Entry
}

// New wires a server for the given session. The game's BroadcastFn is pointed
// at the server's hub.
func New(opts Options, g *game.TriviaGame) *Server {
	s := &Server{
		opts: opts,
		game: g,
		hub:  NewHub(),
		log:  logrus.WithField("component", "server"),
	}
	g.BroadcastFn = s.hub.Broadcast
	return s
}

// Run serves until the context is cancelled. The question clock runs here:
// every tick interval the session advances by the elapsed fraction of a
// second, which also drives timeout resolution.
func (s *Server) Run(ctx context.Context) error {
	mux := httprouter.New()
	mux.GET("/", s.serveBoard)
	mux.GET("/ws", s.serveWS)
	mux.GET("/qr", s.serveQR)
	mux.GET("/healthz", s.serveHealth)

	addr := net.JoinHostPort(s.opts.Bind, strconv.Itoa(s.opts.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		IdleTimeout:       10 * time.Minute,
		ReadHeaderTimeout: httpTimeout,
	}

	go s.runClock(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on http://%s/", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runClock drives the session's question timer from the wall clock.
func (s *Server) runClock(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.game.Tick(tickInterval.Seconds())
		}
	}
}

// serveBoard returns the embedded single-page board display.
func (s *Server) serveBoard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(boardHTML)
}

// serveWS upgrades the connection, pushes the current board snapshot, and
// then relays inbound commands to the session until the client goes away.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // same-host board and controller pages
	})
	if err != nil {
		s.log.WithError(err).Warn("websocket accept failed")
		return
	}

	c := s.hub.add(conn)
	defer s.hub.remove(c)
	s.log.Infof("client connected (%d online)", s.hub.count())

	s.hub.sendTo(c, game.GameEvent{
		Type:  game.EventBoardUpdate,
		State: s.game.Snapshot(),
	})

	ctx := r.Context()
	for {
		var cmd game.Command
		if err := wsjson.Read(ctx, conn, &cmd); err != nil {
			s.log.Infof("client disconnected (%d online)", s.hub.count()-1)
			return
		}
		s.game.HandleCommand(cmd)
	}
}

// serveQR renders a QR code pointing phones at the board page.
func (s *Server) serveQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	url := scheme + "://" + r.Host + strings.TrimSuffix(r.URL.Path, "/qr")

	const qrSize = 320
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
