package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"newt/internal/buildpipeline"
	"newt/internal/diagfmt"
	"newt/internal/driver"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.nt|dir",
	Short: "Tokenize a newt source file or directory",
	Long:  `Tokenize breaks newt sources into tokens. A directory is tokenized in parallel, one file per worker.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().Bool("idents", false, "print the interned identifier table to stderr")
}

type tokenWriter func(w io.Writer, tokens []token.Token, fs *source.FileSet) error

func tokenFormat(format string) (tokenWriter, error) {
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty, nil
	case "json":
		return diagfmt.FormatTokensJSON, nil
	case "msgpack":
		return diagfmt.FormatTokensMsgpack, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	write, err := tokenFormat(format)
	if err != nil {
		return err
	}
	cf, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}
	idents, err := cmd.Flags().GetBool("idents")
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return tokenizeDir(cmd, path, format, write, cf, idents)
	}

	result, err := driver.Tokenize(cmd.Context(), path, driver.Options{MaxDiagnostics: cf.maxDiagnostics})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := printDiagnostics(cmd.ErrOrStderr(), cf, result.Bag, result.FileSet); err != nil {
		return err
	}
	if err := write(cmd.OutOrStdout(), result.Tokens, result.FileSet); err != nil {
		return err
	}
	if idents {
		printIdentifiers(cmd.ErrOrStderr(), result.Context)
	}
	if cf.timings {
		fmt.Fprint(cmd.ErrOrStderr(), result.Timer.Summary())
	}
	if result.Bag.HasErrors() {
		return errHadErrors
	}
	return nil
}

func tokenizeDir(cmd *cobra.Command, dir, format string, write tokenWriter, cf commonFlags, idents bool) error {
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return err
	}

	opts := driver.Options{MaxDiagnostics: cf.maxDiagnostics, Jobs: jobs}
	var res *driver.DirResult
	if shouldUseTUI(mode) && !cf.quiet && len(files) > 0 {
		res, err = runWithUI("newt tokenize", files, func(sink buildpipeline.ProgressSink) (*driver.DirResult, error) {
			opts.Observer = buildpipeline.Observe(sink, buildpipeline.StageLex)
			return driver.TokenizeDir(cmd.Context(), dir, opts)
		})
	} else {
		res, err = driver.TokenizeDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, f := range res.Files {
		if err := printDiagnostics(cmd.ErrOrStderr(), cf, f.Bag, res.FileSet); err != nil {
			return err
		}
		failed = failed || f.Bag.HasErrors()
		if f.Tokens == nil {
			continue
		}
		// msgpack: массивы идут подряд, заголовки сломали бы поток
		if format == "pretty" {
			fmt.Fprintf(out, "== %s\n", f.Path)
		}
		if err := write(out, f.Tokens, res.FileSet); err != nil {
			return err
		}
	}
	// контекст общий для всех файлов: одна таблица на директорию
	if idents {
		printIdentifiers(cmd.ErrOrStderr(), res.Context)
	}
	if cf.timings {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timer.Summary())
	}
	if failed {
		return errHadErrors
	}
	return nil
}

// printIdentifiers dumps the identifier arena in canonical order.
func printIdentifiers(w io.Writer, cx *session.Context) {
	ids := cx.Identifiers()
	fmt.Fprintf(w, "identifiers: %d\n", len(ids))
	for _, id := range ids {
		fmt.Fprintf(w, "%6d  %s\n", id.ID(), id.Value())
	}
}
