package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/api"
	"github.com/jackzampolin/pagina/internal/pagination"
	"github.com/jackzampolin/pagina/internal/server/endpoints"
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern>",
	Short: "Check a pattern and describe its fields",
	Long: `Compile a pattern and print its columns and fields.

On a syntax error the offending position is marked.

Examples:
  pagina check "1° ¡r¿v½"
  pagina check "Bl. 1¡r¿v" -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pagination.Compile(args[0])
		if err != nil {
			var synErr *pagination.SyntaxError
			if errors.As(err, &synErr) {
				fmt.Fprintln(os.Stderr, synErr.Pattern)
				fmt.Fprintln(os.Stderr, strings.Repeat(" ", synErr.Offset)+"^")
			}
			return err
		}
		return api.Output(endpoints.CheckPatternResponse{
			Pattern: p.String(),
			Columns: p.Describe(),
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
