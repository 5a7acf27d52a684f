package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sawcalc",
		Short: "sawcalc - Simple Additive Weighting from the command line",
		Long: `sawcalc ranks alternatives with the Simple Additive Weighting method.

It can rank any decision problem described in YAML, recommend elective
subjects for a student profile, and follow the events the peminatan
service publishes.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newRecommendCommand())
	cmd.AddCommand(newWatchCommand())

	return cmd
}

func checkFormat(format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", format)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
