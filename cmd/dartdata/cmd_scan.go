package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DanWlker/dart-json-serializable-helper/dart/codebase"
)

func newScanCmd(globals *globalFlags) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Scan a directory or .dart file and report which classes can be generated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, globals, args[0], quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report classes that cannot be generated")

	return cmd
}

func runScan(cmd *cobra.Command, globals *globalFlags, path string, quiet bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	opts, err := loadOptions(globals, path)
	if err != nil {
		return err
	}

	root := path
	if !info.IsDir() {
		root = filepath.Dir(path)
	}
	cb := codebase.New(root, opts)
	if info.IsDir() {
		err = cb.ScanAll()
	} else {
		err = cb.ScanFile(path)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	pending := color.New(color.FgYellow)

	var classes, invalid, outdated int
	for _, p := range cb.Paths() {
		f := cb.GetFile(p)
		for _, c := range f.File.Classes {
			classes++
			switch {
			case !c.IsValid():
				invalid++
				bad.Fprintf(out, "%s:%d: %s\n", p, c.StartLine, c.Issue())
			case c.Changed():
				outdated++
				if !quiet {
					pending.Fprintf(out, "%s:%d: %s needs generation\n", p, c.StartLine, c.Name)
				}
			default:
				if !quiet {
					ok.Fprintf(out, "%s:%d: %s up to date\n", p, c.StartLine, c.Name)
				}
			}
		}
	}

	fmt.Fprintf(out, "\nfiles: %d  classes: %d  outdated: %d  invalid: %d\n", len(cb.Paths()), classes, outdated, invalid)
	return nil
}
