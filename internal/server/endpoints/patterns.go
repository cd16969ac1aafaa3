package endpoints

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/api"
	"github.com/jackzampolin/pagina/internal/pagination"
	"github.com/jackzampolin/pagina/internal/schema"
)

// CheckPatternRequest is the request body for checking a pattern.
type CheckPatternRequest struct {
	Pattern string `json:"pattern"`
}

// CheckPatternResponse describes a compiled pattern.
type CheckPatternResponse struct {
	Pattern string                   `json:"pattern" yaml:"pattern"`
	Columns [][]pagination.FieldInfo `json:"columns" yaml:"columns"`
}

// Text renders one line per field, grouped by column.
func (r CheckPatternResponse) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pattern: %s", r.Pattern)
	for i, col := range r.Columns {
		fmt.Fprintf(&b, "\ncolumn %d:", i+1)
		for _, f := range col {
			switch f.Kind {
			case "literal":
				fmt.Fprintf(&b, "\n  literal %q", f.Text)
			case "counter":
				fmt.Fprintf(&b, "\n  counter %s start=%s", f.System, f.Start)
				if f.Fixed {
					b.WriteString(" fixed")
				} else {
					fmt.Fprintf(&b, " step=%s", f.Step)
				}
			case "alternation":
				fmt.Fprintf(&b, "\n  alternation %q/%q step=%s phase=%s", f.Branches[0], f.Branches[1], f.Step, f.Phase)
			}
		}
	}
	return b.String()
}

// CheckPatternEndpoint handles POST /api/patterns/check.
type CheckPatternEndpoint struct{}

func (e *CheckPatternEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/patterns/check", e.handler
}

func (e *CheckPatternEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Check a pattern
//	@Description	Compile a pagination pattern and describe its fields
//	@Tags			patterns
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckPatternRequest	true	"Pattern to check"
//	@Success		200		{object}	CheckPatternResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/patterns/check [post]
func (e *CheckPatternEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req CheckPatternRequest
	if err := decodeRequest(r, schema.Check, &req); err != nil {
		writeFailure(w, err)
		return
	}

	p, err := pagination.Compile(req.Pattern)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CheckPatternResponse{
		Pattern: p.String(),
		Columns: p.Describe(),
	})
}

func (e *CheckPatternEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <pattern>",
		Short: "Check a pattern on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp CheckPatternResponse
			if err := client.Post(cmd.Context(), "/api/patterns/check", CheckPatternRequest{Pattern: args[0]}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
