package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Pagina server via HTTP.

These commands require a running server (pagina serve).
Use --server to specify a custom server URL.

Examples:
  pagina api health                       # Check server health
  pagina api labels "1° ¡r¿v½" -n 6       # Generate labels on the server
  pagina api sessions create "ii"         # Start a labelling session
  pagina api sessions next <id> -n 10     # Continue a session`,
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Labelling session commands",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configuration settings commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	// Health endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ReadyEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))

	// Stateless pattern endpoints at top level
	apiCmd.AddCommand((&endpoints.CheckPatternEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.LabelsEndpoint{}).Command(getServerURL))

	// OpenAPI spec
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerUIEndpoint{}).Command(getServerURL))

	// Sessions as subcommand group
	for _, ep := range endpoints.SessionCommands() {
		sessionsCmd.AddCommand(ep.Command(getServerURL))
	}

	// Settings as subcommand group
	for _, ep := range endpoints.SettingsCommands() {
		settingsCmd.AddCommand(ep.Command(getServerURL))
	}

	apiCmd.AddCommand(sessionsCmd)
	apiCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(apiCmd)
}
