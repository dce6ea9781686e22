// Package api defines the endpoint abstraction shared by the HTTP
// server and the CLI: every API operation is one Endpoint that
// contributes both an HTTP route and a cobra command calling that
// route over HTTP.
package api

import (
	"net/http"

	"github.com/spf13/cobra"
)

// Endpoint defines both an HTTP route and its corresponding CLI command,
// a single source of truth for each API operation.
type Endpoint interface {
	// Route returns the HTTP method, path, and handler for this endpoint.
	Route() (method, path string, handler http.HandlerFunc)

	// RequiresInit reports whether this endpoint needs the server's
	// services (preset store, wizard manager, render client) to be ready.
	RequiresInit() bool

	// Command returns a cobra command that calls this endpoint via HTTP,
	// or nil for endpoints with no CLI surface. getServerURL is evaluated
	// at run time so --server can override the default.
	Command(getServerURL func() string) *cobra.Command
}
