package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/extract"
)

// NormalizeRequest carries free-form expertise and audience answers.
// Either field may be empty; only present fields are normalized.
type NormalizeRequest struct {
	Expertise string `json:"expertise,omitempty"`
	Audience  string `json:"audience,omitempty"`
}

// NormalizeResponse holds the derived topic and audience phrases.
type NormalizeResponse struct {
	Topic    string `json:"topic,omitempty"`
	Audience string `json:"audience,omitempty"`
}

// NormalizeEndpoint handles POST /api/normalize.
type NormalizeEndpoint struct{}

var _ api.Endpoint = (*NormalizeEndpoint)(nil)

func (e *NormalizeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/normalize", e.handler
}

func (e *NormalizeEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Normalize expertise and audience descriptions
//	@Description	Turns "I flip cars for profit" into "Car Flipping" and "women over 40 dealing with bloating" into "Women Over 40"
//	@Tags			extract
//	@Accept			json
//	@Produce		json
//	@Param			request	body		NormalizeRequest	true	"Free-form answers"
//	@Success		200		{object}	NormalizeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/normalize [post]
func (e *NormalizeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Expertise == "" && req.Audience == "" {
		writeError(w, http.StatusBadRequest, "expertise or audience is required")
		return
	}

	var resp NormalizeResponse
	if req.Expertise != "" {
		resp.Topic = extract.NormalizeTopic(req.Expertise)
	}
	if req.Audience != "" {
		resp.Audience = extract.NormalizeAudience(req.Audience)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *NormalizeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var expertise, audience string
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize expertise and audience phrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			req := NormalizeRequest{Expertise: expertise, Audience: audience}
			var resp NormalizeResponse
			if err := client.Post(cmd.Context(), "/api/normalize", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&expertise, "expertise", "", "Free-form expertise description")
	cmd.Flags().StringVar(&audience, "audience", "", "Free-form audience description")
	return cmd
}
