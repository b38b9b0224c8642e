package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modulemap-lang/modulemap/internal/cli/config"
	"github.com/modulemap-lang/modulemap/internal/cli/ui"
	"github.com/modulemap-lang/modulemap/internal/format"
)

var (
	fmtWrite bool
	fmtCheck bool
	fmtDiff  bool
)

func init() {
	fmtCmd.Flags().BoolVar(&fmtWrite, "write", false, "Rewrite files in place")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit non-zero if any file is not formatted")
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "Show a diff instead of the formatted text")
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format module map files canonically",
	Long: `Rewrite module map files into the canonical layout: one declaration per
line, a blank line between top-level modules, and indentation taken from
modulemap.yml. Without --write the formatted text is printed to stdout.

Examples:
  # Print the formatted file
  modulemap fmt module.modulemap

  # Rewrite every file in the tree
  modulemap fmt --write

  # CI gate: fail when anything is unformatted
  modulemap fmt --check
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprint(os.Stderr, ui.ConfigError(err.Error(), nil, false))
			return err
		}
		formatConfig := &format.Config{
			IndentSize: cfg.Format.IndentSize,
			UseTabs:    cfg.Format.UseTabs,
		}

		files, err := resolveModuleMapFiles(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println(ui.Warning("No module map files found", nil, false))
			return nil
		}

		unformatted := 0
		for _, file := range files {
			changed, err := formatOne(file, formatConfig)
			if err != nil {
				return err
			}
			if changed {
				unformatted++
			}
		}

		if fmtCheck && unformatted > 0 {
			return fmt.Errorf("%d file(s) not formatted", unformatted)
		}
		if fmtWrite {
			ui.WriteSuccess(os.Stdout, fmt.Sprintf("%d file(s) formatted", len(files)), false)
		}
		return nil
	},
}

// formatOne formats a single file according to the active flags and reports
// whether it differed from canonical form
func formatOne(path string, cfg *format.Config) (bool, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	formatted, err := format.New(cfg).Format(string(original), path)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.SyntaxCheckError(path, 1, false))
		return false, err
	}

	changed := formatted != string(original)

	switch {
	case fmtCheck:
		if changed {
			fmt.Fprint(os.Stderr, ui.FormatCheckError(path, false))
		}
	case fmtDiff:
		d := format.Diff(string(original), formatted)
		if d.Changed {
			fmt.Print(d.UnifiedDiff(path))
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return changed, err
			}
		}
	default:
		fmt.Print(formatted)
	}

	return changed, nil
}
