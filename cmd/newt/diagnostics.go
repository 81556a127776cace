package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"newt/internal/diag"
	"newt/internal/diagfmt"
	"newt/internal/source"
)

// commonFlags holds the persistent flags every subcommand reads.
type commonFlags struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	diagFormat     string
}

func readCommonFlags(cmd *cobra.Command) (commonFlags, error) {
	var cf commonFlags
	flags := cmd.Root().PersistentFlags()
	colorValue, err := flags.GetString("color")
	if err != nil {
		return cf, fmt.Errorf("failed to get color flag: %w", err)
	}
	if cf.color, err = readColor(colorValue, os.Stderr); err != nil {
		return cf, err
	}
	if cf.quiet, err = flags.GetBool("quiet"); err != nil {
		return cf, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if cf.timings, err = flags.GetBool("timings"); err != nil {
		return cf, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if cf.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return cf, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if cf.diagFormat, err = flags.GetString("diagnostics-format"); err != nil {
		return cf, fmt.Errorf("failed to get diagnostics-format flag: %w", err)
	}
	switch cf.diagFormat {
	case "pretty", "json":
	default:
		return cf, fmt.Errorf("unknown diagnostics format: %s", cf.diagFormat)
	}
	return cf, nil
}

// printDiagnostics writes bag to w; empty bags print nothing.
func printDiagnostics(w io.Writer, cf commonFlags, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || (bag.Len() == 0 && bag.Dropped() == 0) {
		return nil
	}
	bag.Sort()
	if cf.diagFormat == "json" {
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	}
	return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     cf.color,
		ShowNotes: true,
		Context:   1,
	})
}
