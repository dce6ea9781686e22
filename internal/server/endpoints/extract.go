package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/ingest"
	"github.com/productforge/forge/internal/svcctx"
)

// ExtractResponse holds the text pulled out of an uploaded document.
// Detected headings are marked with a leading "# " so the segmenter
// can pick them up.
type ExtractResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// ExtractEndpoint handles POST /api/extract with a multipart file upload.
type ExtractEndpoint struct{}

var _ api.Endpoint = (*ExtractEndpoint)(nil)

func (e *ExtractEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/extract", e.handler
}

func (e *ExtractEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Extract text from an uploaded document
//	@Description	Accepts PDF, EPUB, TXT, and Markdown uploads and returns plain text with heading markers
//	@Tags			extract
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"Document to extract"
//	@Success		200		{object}	ExtractResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/extract [post]
func (e *ExtractEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if !parseUpload(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	// Extraction dispatches on the file extension, so keep it.
	tempDir, err := os.MkdirTemp("", "forge-extract-*")
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create temp dir: %v", err))
		return
	}
	defer os.RemoveAll(tempDir)

	destPath := filepath.Join(tempDir, filepath.Base(header.Filename))
	dst, err := os.Create(destPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save upload: %v", err))
		return
	}
	_, err = io.Copy(dst, file)
	dst.Close()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save upload: %v", err))
		return
	}

	text, err := ingest.Extract(destPath)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupported) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		svcctx.LoggerFrom(r.Context()).Error("extraction failed", "file", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("extraction failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, ExtractResponse{Filename: header.Filename, Text: text})
}

func (e *ExtractEndpoint) Command(getServerURL func() string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract text from a document file",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ExtractResponse
			if err := client.PostFile(cmd.Context(), "/api/extract", "file", file, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the document (PDF, EPUB, TXT, MD)")
	cmd.MarkFlagRequired("file")
	return cmd
}
