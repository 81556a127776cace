package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"newt/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new newt project",
	Long: `Initialize a new newt project by creating a project manifest (newt.toml)
and a hello-world entry point (main.nt). If [path|name] is omitted, initializes
the current directory. A directory that does not exist yet is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	res, err := project.Init(abs)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return nil
	}
	wd, _ := os.Getwd()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created %s\n", formatPathForOutput(wd, res.ManifestPath))
	if res.CreatedEntry {
		fmt.Fprintf(out, "created %s\n", formatPathForOutput(wd, res.EntryPath))
	} else {
		fmt.Fprintf(out, "kept existing %s\n", formatPathForOutput(wd, res.EntryPath))
	}
	return nil
}
