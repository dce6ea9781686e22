package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/svcctx"
)

// parseUpload enforces the configured upload cap and parses the
// multipart form. The cap bounds the whole request body, not just the
// in-memory spill threshold; oversized uploads get a 413. Returns false
// after writing the error response.
func parseUpload(w http.ResponseWriter, r *http.Request) bool {
	maxBytes := svcctx.MaxUploadBytesFrom(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds the %d byte limit", maxBytes))
			return false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return false
	}
	return true
}

// logoExtensions are the image types accepted for cover logos.
var logoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".svg":  true,
	".webp": true,
}

// UploadLogoResponse returns where the uploaded logo was stored.
type UploadLogoResponse struct {
	Path string `json:"path"`
}

// UploadLogoEndpoint handles POST /api/upload-logo.
type UploadLogoEndpoint struct{}

var _ api.Endpoint = (*UploadLogoEndpoint)(nil)

func (e *UploadLogoEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/upload-logo", e.handler
}

func (e *UploadLogoEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Upload a cover logo
//	@Description	Stores the image under a generated name and returns the server path for use in a product config
//	@Tags			uploads
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"Logo image (png, jpg, svg, webp)"
//	@Success		200		{object}	UploadLogoResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/upload-logo [post]
func (e *UploadLogoEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !logoExtensions[ext] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported image type %s", ext))
		return
	}

	uploadDir := svcctx.UploadDirFrom(r.Context())
	if uploadDir == "" {
		writeError(w, http.StatusServiceUnavailable, "upload directory not configured")
		return
	}

	// uuid name avoids collisions between sessions
	destPath := filepath.Join(uploadDir, uuid.New().String()+ext)
	dst, err := os.Create(destPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store logo: %v", err))
		return
	}
	_, err = io.Copy(dst, file)
	dst.Close()
	if err != nil {
		os.Remove(destPath)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store logo: %v", err))
		return
	}

	svcctx.LoggerFrom(r.Context()).Info("logo uploaded", "file", header.Filename, "path", destPath)
	writeJSON(w, http.StatusOK, UploadLogoResponse{Path: destPath})
}

func (e *UploadLogoEndpoint) Command(getServerURL func() string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "upload-logo",
		Short: "Upload a cover logo image",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp UploadLogoResponse
			if err := client.PostFile(cmd.Context(), "/api/upload-logo", "file", file, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the logo image")
	cmd.MarkFlagRequired("file")
	return cmd
}
