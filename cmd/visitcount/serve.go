package main

import (
	vchttp "github.com/resumebase/visitcount/http"
	"github.com/resumebase/visitcount/utils"
	"github.com/spf13/cobra"
)

// newServeCmd creates the 'serve' subcommand for running the counter as a
// plain HTTP server outside Lambda.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the visitor counter over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return utils.Errorf("failed to load config: %w", err)
			}
			return vchttp.StartServer(cfg)
		},
	}
}
