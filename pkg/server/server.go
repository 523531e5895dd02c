package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/multislider/internal/config"
	"github.com/vango-dev/multislider/internal/errors"
	"github.com/vango-dev/multislider/pkg/assets"
	"github.com/vango-dev/multislider/pkg/icons"
	"github.com/vango-dev/multislider/pkg/middleware"
	"github.com/vango-dev/multislider/pkg/session"
	"github.com/vango-dev/multislider/pkg/slider"
)

// Server is the demo host.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	icons    icons.Store
	assets   *assets.Bundle
	tracer   trace.TracerProvider
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	deps     hostDeps

	store     session.Store
	ownsStore bool

	upgrader websocket.Upgrader
	router   chi.Router

	mu         sync.Mutex
	sessions   map[string]*Session
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithIconStore serves dot icons from store under /icons/{name}.
func WithIconStore(store icons.Store) Option {
	return func(s *Server) { s.icons = store }
}

// WithTracerProvider sets the provider used when tracing is enabled.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) { s.tracer = tp }
}

// WithSessionStore keeps detached sessions in store instead of the
// default in-memory LRU. The caller remains responsible for closing it.
func WithSessionStore(store session.Store) Option {
	return func(s *Server) { s.store = store }
}

// WithMiddleware appends slider middleware run inside the built-in
// metrics and tracing middleware.
func WithMiddleware(mw ...slider.Middleware) Option {
	return func(s *Server) { s.deps.middleware = append(s.deps.middleware, mw...) }
}

// New creates a demo server for cfg. The demo slider props are decoded
// up front so configuration mistakes surface before listening.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.store == nil {
		s.store = session.NewMemoryStore(cfg.Server.MaxDetachedSessions)
		s.ownsStore = true
	}

	var builtin []slider.Middleware
	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.metrics = middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(s.registry),
		)
		builtin = append(builtin, s.metrics.Middleware())
	}
	if cfg.Tracing.Enabled {
		otelOpts := []middleware.OTelOption{middleware.WithTracerName(cfg.Tracing.TracerName)}
		if s.tracer != nil {
			otelOpts = append(otelOpts, middleware.WithTracerProvider(s.tracer))
		}
		builtin = append(builtin, middleware.OpenTelemetry(otelOpts...))
	}
	s.deps.logger = s.logger
	s.deps.metrics = s.metrics
	s.deps.middleware = append(builtin, s.deps.middleware...)

	if _, err := newHosts(cfg.Demo.Sliders, s.deps); err != nil {
		return nil, err
	}
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	s.assets = bundle

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/ws", s.HandleWebSocket)
	r.Handle(assetsPrefix+"*", s.assets)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	if s.icons != nil {
		r.Get("/icons/{name}", icons.Handler(s.icons, s.cfg.Icons.CacheMaxAge).ServeHTTP)
	}
	if s.registry != nil {
		r.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler { return s.router }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// checkOrigin allows same-origin upgrades and the configured origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if slices.Contains(s.cfg.Server.AllowedOrigins, "*") || slices.Contains(s.cfg.Server.AllowedOrigins, origin) {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// HandleWebSocket upgrades the request and runs a session until the
// client goes away. Host state starts from the demo config, or from the
// snapshot named by ?resume=<id> when one is still stored.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", errors.New("E060").Wrap(err))
		s.recordError("upgrade")
		return
	}

	hosts, err := newHosts(s.cfg.Demo.Sliders, s.deps)
	if err != nil {
		s.logger.Error("session setup failed", "error", err)
		conn.Close()
		return
	}

	requested := r.URL.Query().Get("resume")
	sess := newSession(s, conn, s.resume(r.Context(), requested, hosts), hosts)
	for !s.addSession(sess) {
		sess = newSession(s, conn, uuid.NewString(), hosts)
	}
	sess.logger.Info("session started", "remote", r.RemoteAddr, "resumed", sess.id == requested)
	sess.Start()
}

// resume restores hosts from the snapshot saved under id and returns the
// id to reuse. Unknown, expired or malformed ids yield a fresh id.
func (s *Server) resume(ctx context.Context, id string, hosts []host) string {
	if id == "" {
		return uuid.NewString()
	}
	if _, err := uuid.Parse(id); err != nil {
		return uuid.NewString()
	}

	data, err := s.store.Load(ctx, id)
	if err != nil {
		s.logger.Warn("session load failed", "session", id, "error", err)
		return uuid.NewString()
	}
	if data == nil {
		return uuid.NewString()
	}
	snap, err := session.Decode(data)
	if err != nil || snap.ID != id {
		s.logger.Warn("discarding session snapshot", "session", id, "error", err)
		_ = s.store.Delete(ctx, id)
		return uuid.NewString()
	}

	for _, h := range hosts {
		if values, ok := snap.Values[h.ID()]; ok {
			h.Restore(values)
		}
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Warn("session delete failed", "session", id, "error", err)
	}
	return id
}

// addSession registers sess unless its id is already live.
func (s *Server) addSession(sess *Session) bool {
	s.mu.Lock()
	if _, taken := s.sessions[sess.id]; taken {
		s.mu.Unlock()
		return false
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	if s.metrics != nil {
		s.metrics.RecordSessionOpen()
	}
	return true
}

// detach saves the session's values so the client can resume within
// the configured window.
func (s *Server) detach(sess *Session) {
	window := s.cfg.Server.ResumeWindow
	if window <= 0 {
		return
	}
	data, err := session.Snapshot{ID: sess.id, Values: sess.values()}.Encode()
	if err != nil {
		sess.logger.Warn("session snapshot failed", "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.store.Save(ctx, sess.id, data, time.Now().Add(window)); err != nil {
		sess.logger.Warn("session save failed", "error", err)
	}
}

func (s *Server) removeSession(sess *Session) {
	s.mu.Lock()
	_, ok := s.sessions[sess.id]
	delete(s.sessions, sess.id)
	s.mu.Unlock()
	if !ok {
		return
	}
	if s.metrics != nil {
		s.metrics.RecordSessionClose(sess.dragging())
	}
	sess.logger.Info("session closed")
}

func (s *Server) recordError(kind string) {
	if s.metrics != nil {
		s.metrics.RecordWebSocketError(kind)
	}
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
	}
	srv := s.httpServer
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every session and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Server.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	srv := s.httpServer
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	if s.ownsStore {
		s.store.Close()
	}
	s.logger.Info("server shutdown complete")
	return nil
}
