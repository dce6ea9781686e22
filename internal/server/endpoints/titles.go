package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/extract"
)

// TitlesRequest carries the normalized topic and audience phrases.
type TitlesRequest struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
}

// TitlesResponse holds the generated title candidates, in order.
type TitlesResponse struct {
	Titles []string `json:"titles"`
}

// TitlesEndpoint handles POST /api/titles.
type TitlesEndpoint struct{}

var _ api.Endpoint = (*TitlesEndpoint)(nil)

func (e *TitlesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/titles", e.handler
}

func (e *TitlesEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Generate title candidates
//	@Description	Returns five deterministic title candidates for a topic and audience
//	@Tags			extract
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TitlesRequest	true	"Normalized topic and audience"
//	@Success		200		{object}	TitlesResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/titles [post]
func (e *TitlesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req TitlesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Topic == "" || req.Audience == "" {
		writeError(w, http.StatusBadRequest, "topic and audience are required")
		return
	}

	writeJSON(w, http.StatusOK, TitlesResponse{Titles: extract.GenerateTitles(req.Topic, req.Audience)})
}

func (e *TitlesEndpoint) Command(getServerURL func() string) *cobra.Command {
	var topic, audience string
	cmd := &cobra.Command{
		Use:   "titles",
		Short: "Generate title candidates for a topic and audience",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp TitlesResponse
			if err := client.Post(cmd.Context(), "/api/titles", TitlesRequest{Topic: topic, Audience: audience}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "Normalized topic phrase")
	cmd.Flags().StringVar(&audience, "audience", "", "Normalized audience phrase")
	cmd.MarkFlagRequired("topic")
	cmd.MarkFlagRequired("audience")
	return cmd
}
