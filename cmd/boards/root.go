package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yuribeats/the-boards/config"
	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/utils"
)

var (
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'boards' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "boards",
		Short:         constants.DescRoot,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.ConfigFileName, "Path to boards config JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if debug {
			utils.SetMode("debug")
		}
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newFeedCmd(),
		newPendingCmd(),
	)
	return rootCmd
}

// loadConfig reads --config (if present) and applies environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, utils.Errorf("failed to load config %s: %w", configPath, err)
	}
	utils.SetLevel(cfg.Log.Level)
	return cfg, nil
}
