package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DanWlker/dart-json-serializable-helper/config"
	"github.com/DanWlker/dart-json-serializable-helper/format"
	"github.com/DanWlker/dart-json-serializable-helper/generator"
)

type generateFlags struct {
	overwrite   bool
	diff        bool
	part        string
	projectName string
	flutter     bool
	class       string
}

func newGenerateCmd(globals *globalFlags) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate data class members for the classes of a .dart file",
		Long: `Generate constructors, copyWith, serialization, toString and equality
members for every class of a .dart file and print the result to stdout.

If no file is provided, reads Dart source from stdin.

Use -w to overwrite the file in place (requires a file argument) and --diff
to print a diff of the changes instead of the whole file.

--part jsonSerializable annotates the class for the json_serializable builder
instead. The part directive is named after the file, so it is only added when
a file argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			filename := "<stdin>"
			dir := "."

			if len(args) == 0 {
				if flags.overwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				if ext := filepath.Ext(filename); ext != ".dart" {
					return fmt.Errorf("expected .dart file, got %s", ext)
				}
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				dir = filepath.Dir(filename)
			}

			opts, err := loadOptions(globals, dir)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &opts); err != nil {
				return err
			}

			gen := generator.New(opts)
			if len(args) > 0 {
				gen = gen.ForFile(filename)
			}
			if flags.class != "" {
				gen = gen.ForClass(flags.class)
			}
			result, err := gen.Generate(string(source))
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			warn := color.New(color.FgYellow)
			for _, d := range result.Diagnostics {
				warn.Fprintf(cmd.ErrOrStderr(), "%s:%d: %s\n", filename, d.Line, d)
			}

			output, err := result.Text()
			if err != nil {
				return fmt.Errorf("apply edits: %w", err)
			}

			if flags.diff {
				return format.Diff(cmd.OutOrStdout(), filename, string(source), output)
			}
			if flags.overwrite {
				if !result.Changed() {
					return nil
				}
				return os.WriteFile(filename, []byte(output), 0644)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&flags.overwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a diff instead of the generated file")
	cmd.Flags().StringVar(&flags.part, "part", "", "only generate one member category (constructor, copyWith, serialization, toString, equality, useEquatable, jsonSerializable)")
	cmd.Flags().StringVar(&flags.projectName, "project-name", "", "package name used to group package: imports")
	cmd.Flags().BoolVar(&flags.flutter, "flutter", false, "use the collection helpers of package:flutter")
	cmd.Flags().StringVar(&flags.class, "class", "", "only generate the named class")

	return cmd
}

// apply overrides configured options with the flags given on the command line.
func (f *generateFlags) apply(cmd *cobra.Command, opts *generator.Options) error {
	if cmd.Flags().Changed("part") {
		opts.Part = generator.Part(f.part)
		if opts.Part == generator.PartEquatable {
			opts.UseEquatable = true
		}
	}
	if cmd.Flags().Changed("project-name") {
		opts.Project.Name = f.projectName
	}
	if cmd.Flags().Changed("flutter") {
		opts.Project.Flutter = f.flutter
	}
	return config.Validate(opts)
}
