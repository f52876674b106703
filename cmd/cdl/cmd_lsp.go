package main

import (
	"github.com/dhamidi/cdl/cdl/workspace"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			commonlog.Configure(cfg.Log.Verbosity, nil)
			server := workspace.NewLSPServer(version, cfg.Cache.Capacity)
			return server.RunStdio()
		},
	}
}
