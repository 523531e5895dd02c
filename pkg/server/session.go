package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/multislider/internal/errors"
	"github.com/vango-dev/multislider/internal/logging"
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/render"
	"github.com/vango-dev/multislider/pkg/slider"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 25 * time.Second
	maxMessage   = 64 << 10
)

// Session is one browser tab: a websocket and the host state of its
// sliders. Pointer messages are handled one at a time on the read loop.
type Session struct {
	id     string
	conn   *websocket.Conn
	server *Server
	logger *slog.Logger
	ctx    context.Context

	hosts     map[string]host
	order     []string
	renderers map[string]*render.Renderer

	// stateMu guards host state between the read loop and Close.
	stateMu   sync.Mutex
	writeMu   sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(s *Server, conn *websocket.Conn, id string, hosts []host) *Session {
	sess := &Session{
		id:        id,
		conn:      conn,
		server:    s,
		logger:    s.logger.With("session", id),
		ctx:       logging.With(context.Background(), "session", id),
		hosts:     make(map[string]host, len(hosts)),
		renderers: make(map[string]*render.Renderer, len(hosts)),
		done:      make(chan struct{}),
	}
	for _, h := range hosts {
		sess.hosts[h.ID()] = h
		sess.order = append(sess.order, h.ID())
		sess.renderers[h.ID()] = render.NewRenderer(render.RendererConfig{HIDPrefix: h.ID() + "-"})
	}
	return sess
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Start announces the session id, sends the initial renders and runs
// the session until the connection closes.
func (s *Session) Start() {
	if err := s.send(Outbound{Type: MessageSession, Session: s.id}); err != nil {
		s.Close()
		return
	}
	for _, id := range s.order {
		if err := s.sendRender(s.hosts[id]); err != nil {
			s.logger.Warn("initial render failed", "slider", id, "error", err)
			s.Close()
			return
		}
	}
	go s.WriteLoop()
	s.ReadLoop()
}

// ReadLoop reads pointer messages until the connection closes.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(maxMessage)
	s.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.server.recordError("read")
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(pongTimeout))
		s.handleMessage(msg)
	}
}

// WriteLoop keeps the connection alive with pings.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
			s.writeMu.Unlock()
			if err != nil {
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *Session) handleMessage(msg []byte) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("dispatch panic", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	in, kind, err := DecodeInbound(msg)
	if err != nil {
		s.reject(err)
		return
	}
	h, ok := s.hosts[in.Slider]
	if !ok {
		s.reject(errors.New("E061").WithDetail("unknown slider " + in.Slider))
		return
	}

	out, err := s.dispatch(h, in, kind)
	if err != nil {
		s.reject(err)
		return
	}
	if out != slider.OutcomeHandled {
		return
	}
	if err := s.sendRender(h); err != nil {
		s.logger.Warn("render failed", "slider", h.ID(), "error", err)
	}
}

// dispatch routes the event through the handler registered for its hid
// on the last render, or straight to the slider when no hid is given.
func (s *Session) dispatch(h host, in Inbound, kind geometry.PointerKind) (slider.Outcome, error) {
	ctx := logging.With(s.ctx, "slider", h.ID())
	ev := in.Event(kind)
	if in.HID == "" {
		return h.Slider().Dispatch(ctx, ev), nil
	}

	fn, ok := s.renderers[h.ID()].Handler(in.HID, in.Type).(slider.EventFunc)
	if !ok {
		return slider.OutcomeIgnored, errors.New("E061").WithDetail("no " + in.Type + " handler for " + in.HID)
	}
	return fn(ctx, ev), nil
}

func (s *Session) reject(err error) {
	var se *errors.SliderError
	if !stderrors.As(err, &se) {
		se = errors.FromError(err, "E061")
	}
	s.logger.Debug("rejected message", "error", se)
	s.server.recordError("message")
	if werr := s.send(errorMessage(se)); werr != nil {
		s.logger.Debug("error reply failed", "error", werr)
	}
}

func (s *Session) sendRender(h host) error {
	r := s.renderers[h.ID()]
	r.Reset()
	html, err := r.RenderToString(h.Render())
	if err != nil {
		return err
	}
	return s.send(Outbound{Type: MessageRender, Slider: h.ID(), HTML: html, Values: h.Values()})
}

func (s *Session) send(msg Outbound) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.server.recordError("write")
		return err
	}
	return nil
}

// dragging counts sliders left mid-drag.
func (s *Session) dragging() int {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	n := 0
	for _, h := range s.hosts {
		if h.Slider().Dragging() {
			n++
		}
	}
	return n
}

// values snapshots every slider's progress values by slider id.
func (s *Session) values() map[string][]int {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	out := make(map[string][]int, len(s.hosts))
	for id, h := range s.hosts {
		out[id] = h.Values()
	}
	return out
}

// Close closes the connection and unregisters the session. It is safe to
// call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.writeMu.Lock()
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.writeMu.Unlock()
		s.conn.Close()
		s.server.detach(s)
		s.server.removeSession(s)
	})
}
