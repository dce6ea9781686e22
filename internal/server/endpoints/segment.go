package endpoints

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/extract"
	"github.com/productforge/forge/internal/types"
)

// SegmentRequest carries raw manuscript text to split into chapters.
type SegmentRequest struct {
	Text string `json:"text"`
}

// SegmentResponse is the chapter list derived from the text.
type SegmentResponse struct {
	Chapters []types.Chapter `json:"chapters"`
}

// SegmentEndpoint handles POST /api/segment.
type SegmentEndpoint struct{}

var _ api.Endpoint = (*SegmentEndpoint)(nil)

func (e *SegmentEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/segment", e.handler
}

func (e *SegmentEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Split raw text into chapters
//	@Description	Detects chapter headings (explicit markers, markdown, numbered items, shouted lines) and returns titled chapters
//	@Tags			extract
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SegmentRequest	true	"Raw manuscript text"
//	@Success		200		{object}	SegmentResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/segment [post]
func (e *SegmentEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	writeJSON(w, http.StatusOK, SegmentResponse{Chapters: extract.Segment(req.Text)})
}

func (e *SegmentEndpoint) Command(getServerURL func() string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Split a manuscript into chapters",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			var resp SegmentResponse
			if err := client.Post(cmd.Context(), "/api/segment", SegmentRequest{Text: string(data)}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the manuscript text file")
	cmd.MarkFlagRequired("file")
	return cmd
}
