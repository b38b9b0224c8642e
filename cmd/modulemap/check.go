package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modulemap-lang/modulemap"
	"github.com/modulemap-lang/modulemap/compiler/parser"
	"github.com/modulemap-lang/modulemap/internal/cli/ui"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Report errors as JSON")
}

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check module map files for syntax errors",
	Long: `Parse the given module map files and report every lexical and syntax
error with its file, line, and column. With no arguments, all .modulemap
files under the current directory are checked.

Examples:
  # Check one file
  modulemap check module.modulemap

  # Check the whole tree
  modulemap check

  # Machine-readable output
  modulemap check --json module.modulemap
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := resolveModuleMapFiles(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println(ui.Warning("No module map files found", nil, false))
			return nil
		}

		failed := 0
		for _, file := range files {
			if err := checkFile(file); err != nil {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed the syntax check", failed, len(files))
		}
		if !checkJSON {
			ui.WriteSuccess(os.Stdout, fmt.Sprintf("%d file(s) valid", len(files)), false)
		}
		return nil
	},
}

// checkFile parses one file and reports its errors
func checkFile(path string) error {
	_, err := modulemap.ParseFile(path)
	if err == nil {
		return nil
	}

	list, ok := err.(parser.ParseErrorList)
	if !ok {
		// I/O failure, not a syntax problem
		return err
	}

	if checkJSON {
		payload, marshalErr := json.MarshalIndent(list.ToJSON(), "", "  ")
		if marshalErr != nil {
			return marshalErr
		}
		fmt.Println(string(payload))
	} else {
		fmt.Fprint(os.Stderr, ui.SyntaxCheckError(path, list.Count(), false))
		fmt.Fprintln(os.Stderr, list.Format())
	}
	return err
}

// resolveModuleMapFiles expands the argument list, walking the current
// directory for .modulemap files when no arguments are given
func resolveModuleMapFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	files := []string{}
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".modulemap" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
