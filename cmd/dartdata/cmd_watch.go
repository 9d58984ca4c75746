package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DanWlker/dart-json-serializable-helper/dart/codebase"
)

func newWatchCmd(globals *globalFlags) *cobra.Command {
	var interval time.Duration
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Regenerate data class members whenever a .dart file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", interval)
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			opts, err := loadOptions(globals, dir)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			written := color.New(color.FgGreen)
			failed := color.New(color.FgRed)

			w := codebase.NewFileWatcher(codebase.New(dir, opts))
			w.SetPollInterval(interval)
			w.Write = !dryRun
			w.OnEvent = func(ev codebase.Event) {
				switch {
				case ev.Err != nil:
					failed.Fprintf(out, "%s: %s\n", ev.Path, ev.Err)
				case ev.Written:
					written.Fprintf(out, "%s: regenerated\n", ev.Path)
				}
			}

			fmt.Fprintf(out, "watching %s\n", dir)
			w.Start()
			<-ctx.Done()
			w.Stop()
			return ignoreCanceled(ctx)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "poll interval")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "scan without writing files")

	return cmd
}

func ignoreCanceled(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}
