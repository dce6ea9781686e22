package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/productforge/forge/internal/api"
	"github.com/productforge/forge/internal/svcctx"
	"github.com/productforge/forge/internal/wizard"
)

// StartWizardResponse returns the new session and its first prompt.
type StartWizardResponse struct {
	ID     string      `json:"id"`
	Step   wizard.Step `json:"step"`
	Prompt string      `json:"prompt"`
}

// StartWizardEndpoint handles POST /api/wizard.
type StartWizardEndpoint struct{}

var _ api.Endpoint = (*StartWizardEndpoint)(nil)

func (e *StartWizardEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/wizard", e.handler
}

func (e *StartWizardEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary	Start a wizard session
//	@Tags		wizard
//	@Produce	json
//	@Success	200	{object}	StartWizardResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/api/wizard [post]
func (e *StartWizardEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	sessions := svcctx.SessionsFrom(r.Context())
	if sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "session manager not initialized")
		return
	}

	s := sessions.Start()
	writeJSON(w, http.StatusOK, StartWizardResponse{
		ID:     s.ID,
		Step:   s.Step,
		Prompt: wizard.Prompt(s.Step),
	})
}

func (e *StartWizardEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard-start",
		Short: "Start a new wizard session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp StartWizardResponse
			if err := client.Post(cmd.Context(), "/api/wizard", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// GetWizardEndpoint handles GET /api/wizard/{id}.
type GetWizardEndpoint struct{}

var _ api.Endpoint = (*GetWizardEndpoint)(nil)

func (e *GetWizardEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/wizard/{id}", e.handler
}

func (e *GetWizardEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary	Get wizard session state
//	@Tags		wizard
//	@Produce	json
//	@Param		id	path		string	true	"Session ID"
//	@Success	200	{object}	wizard.Session
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/wizard/{id} [get]
func (e *GetWizardEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	sessions := svcctx.SessionsFrom(r.Context())
	if sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "session manager not initialized")
		return
	}

	s, err := sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (e *GetWizardEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard-get <session-id>",
		Short: "Show wizard session state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp wizard.Session
			if err := client.Get(cmd.Context(), "/api/wizard/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// AnswerWizardEndpoint handles POST /api/wizard/{id}/answer.
type AnswerWizardEndpoint struct{}

var _ api.Endpoint = (*AnswerWizardEndpoint)(nil)

func (e *AnswerWizardEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/wizard/{id}/answer", e.handler
}

func (e *AnswerWizardEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Answer the current wizard step
//	@Description	Applies one answer, advances the state machine, and returns the next prompt plus any derived values
//	@Tags			wizard
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Session ID"
//	@Param			request	body		wizard.Input	true	"Answer for the current step"
//	@Success		200		{object}	wizard.Reply
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/wizard/{id}/answer [post]
func (e *AnswerWizardEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	sessions := svcctx.SessionsFrom(r.Context())
	if sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "session manager not initialized")
		return
	}

	var in wizard.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reply, err := sessions.Answer(r.PathValue("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, wizard.ErrEmptyAnswer),
			errors.Is(err, wizard.ErrUnknownPreset),
			errors.Is(err, wizard.ErrFinished):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (e *AnswerWizardEndpoint) Command(getServerURL func() string) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "wizard-answer <session-id>",
		Short: "Answer the current wizard step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp wizard.Reply
			in := wizard.Input{Text: text}
			if err := client.Post(cmd.Context(), "/api/wizard/"+args[0]+"/answer", in, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "Answer text for the current step")
	cmd.MarkFlagRequired("text")
	return cmd
}
