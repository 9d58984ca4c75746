package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
	"github.com/DanWlker/dart-json-serializable-helper/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .dart file and dump the classes found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read dart file: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			case "line":
				encoder = format.NewLineEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			file := dart.Parse(string(data))
			for _, c := range file.Classes {
				if err := encoder.Encode(c); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line)")

	return cmd
}
