// Package server runs the forge HTTP API: preset store, wizard
// sessions, text extraction, and the render service client behind a
// single listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/config"
	"github.com/productforge/forge/internal/presets"
	"github.com/productforge/forge/internal/render"
	"github.com/productforge/forge/internal/server/endpoints"
	"github.com/productforge/forge/internal/svcctx"
	"github.com/productforge/forge/internal/wizard"
)

// Server is the main forge HTTP server.
type Server struct {
	httpServer  *http.Server
	presetStore *presets.Store
	sessions    *wizard.Manager
	renderer    *render.Client
	configMgr   *config.Manager
	logger      *slog.Logger
	uploadDir   string

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 0.0.0.0)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// PresetsDir optionally overrides/extends the built-in presets
	PresetsDir string
	// UploadDir is where uploaded logos and manuscripts are stored
	UploadDir string
	// MaxUploadBytes caps multipart parsing for upload endpoints
	MaxUploadBytes int64
	// Renderer configures the PDF render service client
	Renderer render.Config
	// SessionTTL is how long idle wizard sessions survive
	SessionTTL time.Duration
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// FromManager builds a server Config from the loaded configuration.
func FromManager(cm *config.Manager, logger *slog.Logger) Config {
	cfg := cm.Get()
	return Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		PresetsDir:     cfg.Presets.Dir,
		UploadDir:      cfg.Uploads.Dir,
		MaxUploadBytes: cfg.Uploads.MaxBytes,
		Renderer: render.Config{
			BaseURL:  cfg.Renderer.URL,
			Attempts: cfg.Renderer.Attempts,
			Delay:    cfg.Renderer.Delay,
			Timeout:  cfg.Renderer.Timeout,
			Logger:   logger,
		},
		SessionTTL:    cfg.Wizard.SessionTTL,
		ConfigManager: cm,
		Logger:        logger,
	}
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	store, err := presets.NewStore(cfg.PresetsDir, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}

	s := &Server{
		presetStore: store,
		sessions:    wizard.NewManager(store, cfg.SessionTTL, cfg.Logger),
		renderer:    render.New(cfg.Renderer),
		configMgr:   cfg.ConfigManager,
		logger:      cfg.Logger,
		uploadDir:   cfg.UploadDir,
	}

	s.services = &svcctx.Services{
		Presets:        s.presetStore,
		Sessions:       s.sessions,
		Renderer:       s.renderer,
		ConfigMgr:      s.configMgr,
		Logger:         s.logger,
		UploadDir:      s.uploadDir,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	// If config manager provided, reload presets when config changes
	if cfg.ConfigManager != nil {
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			if err := store.Reload(); err != nil {
				cfg.Logger.Error("preset reload failed", "error", err)
				return
			}
			cfg.Logger.Info("presets reloaded from config change")
		})
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All() {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // generation proxies the render service
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server. It blocks until the context is cancelled
// or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	// Watch the preset directory for edits; Watch blocks until ctx ends
	go func() {
		if err := s.presetStore.Watch(ctx); err != nil {
			s.logger.Warn("preset watcher stopped", "error", err)
		}
	}()

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Presets returns the design preset store.
func (s *Server) Presets() *presets.Store {
	return s.presetStore
}

// Sessions returns the wizard session manager.
func (s *Server) Sessions() *wizard.Manager {
	return s.sessions
}

// Handler returns the fully wired HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server's services are ready.
// Returns 503 Service Unavailable otherwise.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.presetStore == nil || s.sessions == nil || s.renderer == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
