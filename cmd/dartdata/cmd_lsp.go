package main

import (
	"github.com/spf13/cobra"

	"github.com/DanWlker/dart-json-serializable-helper/dart/codebase"
)

func newLSPCmd(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(globals, ".")
			if err != nil {
				return err
			}
			server := codebase.NewLSPServer(version, opts)
			return server.RunStdio()
		},
	}
}
