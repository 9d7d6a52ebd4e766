package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ChicagoDave/neighborhood/pkg/analytics"
	"github.com/ChicagoDave/neighborhood/pkg/cost"
	"github.com/ChicagoDave/neighborhood/pkg/layout"
	"github.com/ChicagoDave/neighborhood/pkg/routing"
	"github.com/ChicagoDave/neighborhood/pkg/scene"
	"github.com/ChicagoDave/neighborhood/pkg/scene2d"
	"github.com/ChicagoDave/neighborhood/pkg/spec"
	"github.com/ChicagoDave/neighborhood/pkg/validation"
)

var errNoLayout = errors.New("no layout loaded")

const (
	memoSize        = 16
	shutdownTimeout = 5 * time.Second
)

// Snapshot is everything the server derives from one config. Snapshots are
// never modified after they are published.
type Snapshot struct {
	Version    uint64
	Config     spec.Config
	Parameters *analytics.ResolvedParameters
	Layout     *layout.Neighborhood
	Scene      *scene.Graph
	Plan       *scene2d.Scene2D
	Cost       *cost.Report
	Report     *validation.Report
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithOverride applies fn to every config loaded from the project, so
// command-line flags keep winning over the file across reloads.
func WithOverride(fn func(*spec.Config)) Option {
	return func(s *Server) { s.override = fn }
}

// Server is the local development server for interactive design.
type Server struct {
	projectPath string
	port        int
	log         *slog.Logger
	override    func(*spec.Config)

	memo    *layout.Memo
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	mu      sync.Mutex // serializes publishers
	hub     *hub
}

// New creates a server for the given project directory.
func New(projectPath string, port int, opts ...Option) *Server {
	s := &Server{
		projectPath: projectPath,
		port:        port,
		log:         slog.Default(),
		memo:        layout.NewMemo(memoSize),
		hub:         newHub(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the published snapshot, or nil before the first load.
func (s *Server) Current() *Snapshot {
	return s.current.Load()
}

// Load reads the project config and publishes a snapshot for it. An
// invalid config leaves the current snapshot in place.
func (s *Server) Load() error {
	cfg, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	if s.override != nil {
		s.override(cfg)
	}
	_, err = s.publish(*cfg)
	return err
}

// Regenerate publishes a snapshot for the current config with the next
// seed. Concurrent calls each advance the seed once.
func (s *Server) Regenerate() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	if cur == nil {
		return nil, errNoLayout
	}
	return s.publishLocked(cur.Config.Regenerate())
}

func (s *Server) publish(cfg spec.Config) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publishLocked(cfg)
}

// publishLocked builds and publishes a snapshot for cfg. s.mu must be held.
func (s *Server) publishLocked(cfg spec.Config) (*Snapshot, error) {
	snap, err := s.build(cfg)
	if err != nil {
		return nil, err
	}
	snap.Version = s.version.Add(1)
	s.current.Store(snap)

	msg, err := sceneMessage(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding scene: %w", err)
	}
	s.hub.broadcast(msg)

	s.log.Info("layout published",
		"version", snap.Version,
		"seed", cfg.Seed,
		"buildings", len(snap.Layout.Buildings),
		"entities", len(snap.Scene.Entities),
		"warnings", len(snap.Report.Warnings))
	return snap, nil
}

// build runs the full pipeline for cfg.
func (s *Server) build(cfg spec.Config) (*Snapshot, error) {
	report := validation.ValidateConfig(&cfg)
	if !report.Valid {
		return nil, &layout.ConfigError{Report: report}
	}
	params, analyticsReport := analytics.Resolve(cfg)
	report.Merge(analyticsReport)

	n, err := s.memo.Get(cfg)
	if err != nil {
		return nil, fmt.Errorf("generating layout: %w", err)
	}

	g := scene.Assemble(n)
	report.Merge(scene.ValidateGraph(g))
	_, frontageReport := routing.CheckFrontage(n)
	report.Merge(frontageReport)

	return &Snapshot{
		Config:     cfg,
		Parameters: params,
		Layout:     n,
		Scene:      g,
		Plan:       scene2d.Assemble2D(n),
		Cost:       cost.Estimate(g),
		Report:     report,
	}, nil
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/layout", s.handleSnapshot(func(snap *Snapshot) any { return snap.Layout }))
	mux.HandleFunc("GET /api/scene", s.handleSnapshot(func(snap *Snapshot) any { return snap.Scene }))
	mux.HandleFunc("GET /api/plan", s.handleSnapshot(func(snap *Snapshot) any { return snap.Plan }))
	mux.HandleFunc("GET /api/cost", s.handleSnapshot(func(snap *Snapshot) any { return snap.Cost }))
	mux.HandleFunc("GET /api/validation", s.handleSnapshot(func(snap *Snapshot) any { return snap.Report }))
	mux.HandleFunc("GET /api/config", s.handleSnapshot(func(snap *Snapshot) any { return snap.Config }))
	mux.HandleFunc("POST /api/regenerate", s.handleRegenerate)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// Start loads the project and serves until ctx is cancelled. The config
// file is watched and reloaded on change.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Load(); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("neighborhood server starting", "url", "http://localhost"+addr, "project", s.projectPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return s.Watch(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		s.hub.closeAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Neighborhood</title></head>
<body style="margin:0;background:#040404;color:#7fd0ff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Neighborhood</h1>
<p>Scene graph at <code>/api/scene</code>, live updates on <code>/ws</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleSnapshot(pick func(*Snapshot) any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		snap := s.current.Load()
		if snap == nil {
			writeError(w, http.StatusServiceUnavailable, errNoLayout.Error())
			return
		}
		writeJSON(w, http.StatusOK, pick(snap))
	}
}

func (s *Server) handleRegenerate(w http.ResponseWriter, _ *http.Request) {
	snap, err := s.Regenerate()
	if err != nil {
		status := errorStatus(err)
		if status >= http.StatusInternalServerError {
			s.log.Error("regenerate failed", "err", err)
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"version": snap.Version,
		"config":  snap.Config,
	})
}

// errorStatus maps a pipeline error to an HTTP status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errNoLayout):
		return http.StatusServiceUnavailable
	case errors.Is(err, layout.ErrInvalidConfiguration):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("writing response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// isProjectFile reports whether path names one of the project config files.
func isProjectFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range spec.ProjectFiles {
		if base == name {
			return true
		}
	}
	return false
}
