package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/modulemap-lang/modulemap/internal/cli/config"
	"github.com/modulemap-lang/modulemap/internal/cli/ui"
	"github.com/modulemap-lang/modulemap/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directories...]",
	Short: "Re-check module map files on change",
	Long: `Watch directories for module map changes and re-run the syntax check on
every changed file. With no arguments the current directory is watched.

Debounce delay and watched extensions come from modulemap.yml.

Examples:
  # Watch the current directory
  modulemap watch

  # Watch specific trees
  modulemap watch Sources Frameworks
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprint(os.Stderr, ui.ConfigError(err.Error(), nil, false))
			return err
		}

		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		fw, err := watch.NewFileWatcher(args, cfg.Watch.Extensions, debounce, func(files []string) error {
			for _, file := range files {
				if err := checkFile(file); err == nil {
					ui.WriteSuccess(os.Stdout, file, false)
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}

		if err := fw.Start(); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}

		fmt.Print(ui.Info("Watching for module map changes. Press Ctrl+C to stop.", false))

		// Block until signal
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		fmt.Println("\nShutting down...")
		return fw.Stop()
	},
}
