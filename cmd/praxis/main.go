// Package main implements the praxis command line tool: a thin front-end
// over the pattern store for matching problem files against the stock (or
// a saved) pattern library, inspecting structural features, exporting the
// catalog, and rendering solutions into concrete domains.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "praxis",
		Short:         "Match problems against a library of abstract solution patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}

	root.AddCommand(
		newMatchCmd(),
		newFeaturesCmd(),
		newCatalogCmd(),
		newInstantiateCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "praxis:", err)
		os.Exit(1)
	}
}
