package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/DanWlker/dart-json-serializable-helper/config"
	"github.com/DanWlker/dart-json-serializable-helper/generator"
	"github.com/DanWlker/dart-json-serializable-helper/project"
)

const version = "0.1.0"

type globalFlags struct {
	verbose    int
	logFile    string
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var globals globalFlags

	rootCmd := &cobra.Command{
		Use:          "dartdata",
		Short:        "Generate data class members for Dart classes",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if globals.logFile != "" {
				path = &globals.logFile
			}
			// Errors only by default; -vvvv reaches debug.
			commonlog.Configure(globals.verbose-2, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&globals.verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&globals.logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "config file (default .dartdata.yaml in the working or home directory)")

	rootCmd.AddCommand(newGenerateCmd(&globals))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newScanCmd(&globals))
	rootCmd.AddCommand(newWatchCmd(&globals))
	rootCmd.AddCommand(newLSPCmd(&globals))
	rootCmd.AddCommand(newConfigCmd(&globals))

	return rootCmd
}

// loadOptions reads the configuration and fills in the project facts of the
// package enclosing path when the configuration leaves them unset.
func loadOptions(globals *globalFlags, path string) (generator.Options, error) {
	opts, err := config.Load(globals.configPath)
	if err != nil {
		return generator.Options{}, err
	}
	if opts.Project.Name != "" {
		return *opts, nil
	}

	proj, err := project.Find(path)
	if errors.Is(err, project.ErrNoManifest) {
		commonlog.GetLogger("dartdata").Debugf("%s", err)
		return *opts, nil
	}
	if err != nil {
		return generator.Options{}, err
	}
	opts.Project.Name = proj.Name
	opts.Project.Flutter = opts.Project.Flutter || proj.IsFlutter
	return *opts, nil
}
