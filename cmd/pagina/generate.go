package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/api"
	"github.com/jackzampolin/pagina/internal/pages"
	"github.com/jackzampolin/pagina/internal/server/endpoints"
)

var (
	generateCount  int
	generatePDF    string
	generateImages string
	generateFrom   int
	generateExport string
)

var generateCmd = &cobra.Command{
	Use:   "generate [pattern]",
	Short: "Generate page labels locally",
	Long: `Generate page labels from a pattern without a running server.

The number of labels comes from -n, from the page count of a PDF (--pdf),
or from the page images in a directory (--images). With --pdf or --images
every page is listed with its label; --from skips leading pages such as
covers, which keep an empty label.

Without a pattern pagination.default_pattern is used.

Examples:
  pagina generate "1° ¡r¿v½" -n 6
  pagina generate "fol. 1¡r¿v" --images ./scans --from 2 -o text
  pagina generate i --pdf book.pdf --export frontmatter`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		req := endpoints.LabelsRequest{
			Pattern: mgr.Get().Pagination.DefaultPattern,
			Count:   generateCount,
			From:    generateFrom,
		}
		if len(args) == 1 {
			req.Pattern = args[0]
		}

		switch {
		case generatePDF != "" && generateImages != "":
			return fmt.Errorf("--pdf and --images are mutually exclusive")
		case generatePDF != "":
			n, err := pages.CountPDF(generatePDF)
			if err != nil {
				return err
			}
			req.Pages = make([]string, n)
			for i := range req.Pages {
				req.Pages[i] = strconv.Itoa(i + 1)
			}
		case generateImages != "":
			names, err := pages.ListImages(generateImages)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return fmt.Errorf("no page images in %s", generateImages)
			}
			req.Pages = names
		}

		// Local generation is not capped by pagination.max_labels.
		resp, err := endpoints.GenerateLabels(req, 0)
		if err != nil {
			return err
		}

		if generateExport != "" {
			return exportLabels(generateExport, resp)
		}
		return api.Output(resp)
	},
}

// exportLabels writes labels to the home exports directory in the current
// output format.
func exportLabels(name string, resp *endpoints.LabelsResponse) error {
	h, err := getHome()
	if err != nil {
		return err
	}

	format := api.GetOutputFormat()
	ext := string(format)
	if format == api.OutputFormatText {
		ext = "txt"
	}
	path := h.ExportPath(name, ext)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := api.OutputTo(f, format, resp); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d labels to %s\n", len(resp.Labels), path)
	return nil
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 10, "Number of labels")
	generateCmd.Flags().StringVar(&generatePDF, "pdf", "", "Label every page of a PDF file")
	generateCmd.Flags().StringVar(&generateImages, "images", "", "Label every page image in a directory")
	generateCmd.Flags().IntVar(&generateFrom, "from", 0, "Index of the first labelled page (with --pdf or --images)")
	generateCmd.Flags().StringVar(&generateExport, "export", "", "Write labels to ~/.pagina/exports/<name>.<format>")

	rootCmd.AddCommand(generateCmd)
}
