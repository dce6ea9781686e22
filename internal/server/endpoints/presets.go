package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/presets"
	"github.com/productforge/forge/internal/svcctx"
)

// PresetsResponse lists the available design presets.
type PresetsResponse struct {
	Presets []presets.Preset `json:"presets"`
}

// ListPresetsEndpoint handles GET /api/presets.
type ListPresetsEndpoint struct{}

var _ api.Endpoint = (*ListPresetsEndpoint)(nil)

func (e *ListPresetsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/presets", e.handler
}

func (e *ListPresetsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary	List design presets
//	@Tags		presets
//	@Produce	json
//	@Success	200	{object}	PresetsResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/api/presets [get]
func (e *ListPresetsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.PresetsFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "preset store not initialized")
		return
	}

	writeJSON(w, http.StatusOK, PresetsResponse{Presets: store.List()})
}

func (e *ListPresetsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available design presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp PresetsResponse
			if err := client.Get(cmd.Context(), "/api/presets", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
