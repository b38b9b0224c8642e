package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modulemap-lang/modulemap/internal/cli/config"
	"github.com/modulemap-lang/modulemap/internal/cli/ui"
	"github.com/modulemap-lang/modulemap/internal/format"
	"github.com/modulemap-lang/modulemap/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Start the language server",
	Long: `Start a Language Server Protocol server on stdin/stdout. The server
publishes parse diagnostics as documents are opened, edited, and saved,
and serves whole-document formatting.

Editors should launch this command themselves; it is not meant for
interactive use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprint(os.Stderr, ui.ConfigError(err.Error(), nil, false))
			return err
		}

		server := lsp.NewServer(&format.Config{
			IndentSize: cfg.Format.IndentSize,
			UseTabs:    cfg.Format.UseTabs,
		})
		return server.Run(context.Background())
	},
}
