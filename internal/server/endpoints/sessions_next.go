package endpoints

import (
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/api"
	"github.com/jackzampolin/pagina/internal/schema"
	"github.com/jackzampolin/pagina/internal/svcctx"
)

// NextLabelsRequest is the request body for continuing a session.
type NextLabelsRequest struct {
	Count int `json:"count"`
}

// NextLabelsResponse holds the labels issued by one call.
type NextLabelsResponse struct {
	ID     string   `json:"id" yaml:"id"`
	Labels []string `json:"labels" yaml:"labels"`
	Issued int      `json:"issued" yaml:"issued"`
}

// Text renders one label per line.
func (r NextLabelsResponse) Text() string {
	return strings.Join(r.Labels, "\n")
}

// NextLabelsEndpoint handles POST /api/sessions/{id}/next.
type NextLabelsEndpoint struct{}

func (e *NextLabelsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/sessions/{id}/next", e.handler
}

func (e *NextLabelsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Continue a session
//	@Description	Return the next labels of a session's sequence
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Session ID"
//	@Param			request	body		NextLabelsRequest	true	"Label count"
//	@Success		200		{object}	NextLabelsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/sessions/{id}/next [post]
func (e *NextLabelsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req NextLabelsRequest
	if err := decodeRequest(r, schema.Next, &req); err != nil {
		writeFailure(w, err)
		return
	}

	store := svcctx.SessionsFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "session store not initialized")
		return
	}

	id := r.PathValue("id")
	labels, err := store.Next(id, req.Count)
	if err != nil {
		writeFailure(w, err)
		return
	}

	resp := NextLabelsResponse{ID: id, Labels: labels}
	if info, err := store.Get(id); err == nil {
		resp.Issued = info.Issued
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *NextLabelsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "next <id>",
		Short: "Get the next labels of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp NextLabelsResponse
			if err := client.Post(cmd.Context(), "/api/sessions/"+args[0]+"/next", NextLabelsRequest{Count: count}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of labels")
	return cmd
}
