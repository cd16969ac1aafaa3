package endpoints

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/api"
	"github.com/jackzampolin/pagina/internal/pagination"
	"github.com/jackzampolin/pagina/internal/schema"
	"github.com/jackzampolin/pagina/internal/session"
	"github.com/jackzampolin/pagina/internal/svcctx"
)

// LabelsRequest is the request body for generating labels.
// When Pages is set, one label is assigned per page starting at From and
// Count is ignored.
type LabelsRequest struct {
	Pattern string   `json:"pattern,omitempty"`
	Count   int      `json:"count,omitempty"`
	Pages   []string `json:"pages,omitempty"`
	From    int      `json:"from,omitempty"`
}

// LabelsResponse is the response for label generation.
type LabelsResponse struct {
	Pattern string                 `json:"pattern" yaml:"pattern"`
	Labels  []string               `json:"labels" yaml:"labels"`
	Pages   []pagination.PageLabel `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// Text renders one label per line, prefixed by its page when pages were assigned.
func (r LabelsResponse) Text() string {
	if len(r.Pages) == 0 {
		return strings.Join(r.Labels, "\n")
	}
	lines := make([]string, len(r.Pages))
	for i, p := range r.Pages {
		lines[i] = fmt.Sprintf("%s\t%s", p.Page, p.Label)
	}
	return strings.Join(lines, "\n")
}

// GenerateLabels runs a labels request against a fresh sequence.
// maxLabels of 0 means unlimited.
func GenerateLabels(req LabelsRequest, maxLabels int) (*LabelsResponse, error) {
	p, err := pagination.Compile(req.Pattern)
	if err != nil {
		return nil, err
	}
	seq := pagination.NewSequence(p)
	resp := &LabelsResponse{Pattern: p.String()}

	if len(req.Pages) > 0 {
		if err := pagination.CheckFrom(len(req.Pages), req.From); err != nil {
			return nil, err
		}
		if maxLabels > 0 && len(req.Pages)-req.From > maxLabels {
			return nil, fmt.Errorf("%w: %d > %d", session.ErrLimit, len(req.Pages)-req.From, maxLabels)
		}
		pages, err := pagination.Assign(seq, req.Pages, req.From)
		if err != nil {
			return nil, err
		}
		resp.Pages = pages
		resp.Labels = make([]string, 0, len(pages))
		for _, pl := range pages[req.From:] {
			resp.Labels = append(resp.Labels, pl.Label)
		}
		return resp, nil
	}

	if req.Count < 0 {
		return nil, pagination.ErrNegativeCount
	}
	if maxLabels > 0 && req.Count > maxLabels {
		return nil, fmt.Errorf("%w: %d > %d", session.ErrLimit, req.Count, maxLabels)
	}
	resp.Labels = seq.Take(req.Count)
	return resp, nil
}

// LabelsEndpoint handles POST /api/labels.
type LabelsEndpoint struct{}

func (e *LabelsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/labels", e.handler
}

func (e *LabelsEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Generate labels
//	@Description	Generate a label sequence, or assign labels to a list of pages
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LabelsRequest	true	"Pattern and count or pages"
//	@Success		200		{object}	LabelsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/labels [post]
func (e *LabelsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req LabelsRequest
	if err := decodeRequest(r, schema.Labels, &req); err != nil {
		writeFailure(w, err)
		return
	}

	cfg := svcctx.ConfigFrom(r.Context())
	if req.Pattern == "" {
		req.Pattern = cfg.Pagination.DefaultPattern
	}

	resp, err := GenerateLabels(req, cfg.Pagination.MaxLabels)
	if err != nil {
		writeFailure(w, err)
		return
	}

	svcctx.LoggerFrom(r.Context()).Debug("labels generated", "pattern", resp.Pattern, "count", len(resp.Labels))
	writeJSON(w, http.StatusOK, resp)
}

func (e *LabelsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "labels [pattern]",
		Short: "Generate labels on the server",
		Long: `Generate labels on the server.

Without a pattern the server's pagination.default_pattern is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := LabelsRequest{Count: count}
			if len(args) == 1 {
				req.Pattern = args[0]
			}
			client := api.NewClient(getServerURL())
			var resp LabelsResponse
			if err := client.Post(cmd.Context(), "/api/labels", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of labels")
	return cmd
}
