package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/product"
	"github.com/productforge/forge/internal/render"
	"github.com/productforge/forge/internal/svcctx"
)

// GenerateEndpoint handles POST /api/generate. The request body is a
// product config document; the response is the rendered PDF.
type GenerateEndpoint struct{}

var _ api.Endpoint = (*GenerateEndpoint)(nil)

func (e *GenerateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/generate", e.handler
}

func (e *GenerateEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Generate a PDF from a product config
//	@Description	Validates the document against the product schema and forwards it to the render service
//	@Tags			generate
//	@Accept			json
//	@Produce		application/pdf
//	@Param			request	body	product.Config	true	"Product config document"
//	@Success		200		{file}	binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/generate [post]
func (e *GenerateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	cfg, err := product.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderer := svcctx.RendererFrom(r.Context())
	if renderer == nil {
		writeError(w, http.StatusServiceUnavailable, "render client not initialized")
		return
	}

	pdf, err := renderer.Render(r.Context(), cfg)
	if err != nil {
		if errors.Is(err, render.ErrRejected) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		svcctx.LoggerFrom(r.Context()).Error("render failed", "title", cfg.Title, "error", err)
		writeError(w, http.StatusBadGateway, fmt.Sprintf("render service error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cfg.OutputFilename()))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (e *GenerateEndpoint) Command(getServerURL func() string) *cobra.Command {
	var file, output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a PDF from a product config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			// Validate locally before the round trip
			cfg, err := product.Parse(raw)
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.OutputFilename()
			}

			client := api.NewClient(getServerURL())
			pdf, err := client.Download(cmd.Context(), "/api/generate", cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			cmd.Printf("Wrote %s (%d bytes)\n", output, len(pdf))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the product config JSON")
	cmd.Flags().StringVar(&output, "out", "", "Output PDF path (defaults to the config filename)")
	cmd.MarkFlagRequired("file")
	return cmd
}
