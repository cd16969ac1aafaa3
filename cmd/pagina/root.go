package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/api"
	"github.com/jackzampolin/pagina/internal/config"
	"github.com/jackzampolin/pagina/internal/home"
	"github.com/jackzampolin/pagina/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "pagina",
	Short: "Page label generator for digitized books and manuscripts",
	Long: `Pagina turns a compact pagination pattern into the sequence of page labels
a digitized object needs.

Patterns describe one or more columns of counters and literal text:
  - Arabic and roman counters (1, 098, iv, XII)
  - Fixed values in backticks (` + "`IV`" + `)
  - Explicit steps with superscript digits and ½ (1², 1½)
  - Alternating recto/verso markers (1¡r¿v, 1° ¡r¿v½)

Examples:
  pagina generate "1° ¡r¿v½" -n 6      # 1 r, 1 v, 2 r, 2 v, 3 r, 3 v
  pagina generate i --pdf book.pdf     # One label per PDF page
  pagina check "fol. 1¡r¿v"            # Describe a pattern
  pagina serve                         # Serve the HTTP API`,
	Version:      version.GitRelease,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pagina/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "pagina home directory (default: ~/.pagina)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml, json or text",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// getHome returns the home directory, creating it if needed.
func getHome() (*home.Dir, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}
	if err := h.EnsureExists(); err != nil {
		return nil, fmt.Errorf("failed to create home directory: %w", err)
	}
	return h, nil
}

// loadConfig loads configuration from --config, ./config.yaml or the home
// directory. The config's output format applies unless -o was given.
func loadConfig(cmd *cobra.Command) (*config.Manager, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}
	mgr, err := config.NewManager(cfgFile, h.Path())
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("output") {
		api.SetOutputFormat(mgr.Get().Output.Format)
	}
	return mgr, nil
}

// newLogger builds the text logger used by long-running commands.
func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})), nil
}
