package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newt/internal/diagfmt"
	"newt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.nt",
	Short: "Parse a newt source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	cf, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(cmd.Context(), args[0], driver.Options{MaxDiagnostics: cf.maxDiagnostics})
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if err := printDiagnostics(cmd.ErrOrStderr(), cf, result.Bag, result.FileSet); err != nil {
		return err
	}
	// дерево печатаем даже при ошибках: восстановленные элементы в нём есть
	if format == "json" {
		err = diagfmt.FormatASTJSON(cmd.OutOrStdout(), result.Tree, result.FileSet)
	} else {
		err = diagfmt.FormatASTPretty(cmd.OutOrStdout(), result.Tree, result.FileSet)
	}
	if err != nil {
		return err
	}
	if cf.timings {
		fmt.Fprint(cmd.ErrOrStderr(), result.Timer.Summary())
	}
	if result.Bag.HasErrors() {
		return errHadErrors
	}
	return nil
}
