package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/api"
	"github.com/jackzampolin/pagina/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := getHome()
		if err != nil {
			return err
		}
		if h.ConfigExists() && !configForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", h.ConfigPath())
		}
		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", h.ConfigPath())
		return nil
	},
}

// configShowResponse is the output of config show.
type configShowResponse struct {
	File     string         `json:"file" yaml:"file"`
	Settings []config.Entry `json:"settings" yaml:"settings"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		resp := configShowResponse{
			File:     mgr.ConfigFile(),
			Settings: config.Entries(mgr.Get()),
		}
		if resp.File == "" {
			resp.File = "(defaults)"
		}
		return api.Output(resp)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
