// Package cmd implements the daybrief command line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daybrief-ai/daybrief/config"
	"github.com/daybrief-ai/daybrief/logging"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "daybrief",
		Short:         "Personal assistant for weather, time and clothing advice",
		Long:          "daybrief routes your questions to weather, time and clothing agents, each backed by an LLM and live Open-Meteo data, and merges their answers into one reply.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")

	rootCmd.AddCommand(
		newChatCmd(&cfgPath),
		newServeCmd(&cfgPath),
	)
	return rootCmd
}

func loadConfig(path string) (*config.Config, logging.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewSlogLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	return cfg, logger, nil
}
