// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/productforge/forge/internal/config"
	"github.com/productforge/forge/internal/presets"
	"github.com/productforge/forge/internal/render"
	"github.com/productforge/forge/internal/wizard"
)

// Services holds all core services that flow through request context.
// Endpoints extract what they need via the individual extractors.
type Services struct {
	Presets   *presets.Store
	Sessions  *wizard.Manager
	Renderer  *render.Client
	ConfigMgr *config.Manager
	Logger    *slog.Logger
	// UploadDir is where uploaded files (logos, manuscripts) land.
	UploadDir string
	// MaxUploadBytes caps multipart parsing for upload endpoints.
	MaxUploadBytes int64
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// PresetsFrom extracts the preset store from context.
func PresetsFrom(ctx context.Context) *presets.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Presets
	}
	return nil
}

// SessionsFrom extracts the wizard session manager from context.
func SessionsFrom(ctx context.Context) *wizard.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Sessions
	}
	return nil
}

// RendererFrom extracts the render service client from context.
func RendererFrom(ctx context.Context) *render.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.Renderer
	}
	return nil
}

// LoggerFrom extracts the logger from context, falling back to the default.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// UploadDirFrom extracts the upload directory from context.
func UploadDirFrom(ctx context.Context) string {
	if s := ServicesFrom(ctx); s != nil {
		return s.UploadDir
	}
	return ""
}

// MaxUploadBytesFrom extracts the upload size cap, with a 50MB default.
func MaxUploadBytesFrom(ctx context.Context) int64 {
	if s := ServicesFrom(ctx); s != nil && s.MaxUploadBytes > 0 {
		return s.MaxUploadBytes
	}
	return 50 << 20
}
