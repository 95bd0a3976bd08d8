package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/resumebase/visitcount/config"
	"github.com/resumebase/visitcount/utils"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'visitcount' command with persistent flags and
// subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{Use: "visitcount"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to config JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file, if present
		_ = godotenv.Load()
		if debug {
			utils.SetMode("debug")
		}
	}

	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

// loadConfig reads the config file if present and falls back to env-only
// configuration, which is how the Lambda deployment runs.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config.FromEnv(), nil
		}
		return nil, err
	}
	return cfg, nil
}
