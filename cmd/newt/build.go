package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"newt/internal/buildpipeline"
	"newt/internal/project"
)

const noManifestMessage = "no " + project.ManifestName + " found; pass a file or directory, or run `newt init`"

var buildCmd = &cobra.Command{
	Use:   "build [flags] [path]",
	Short: "Build newt sources into LLVM IR",
	Long: `Build checks newt sources and writes textual LLVM IR next to each file.
Without a path the nearest ` + project.ManifestName + ` decides the entry and output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: buildExecution,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "IR output path (single file only)")
	buildCmd.Flags().String("ui", "auto", "user interface (auto|on|off)")
	buildCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	cf, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}

	var targetPath, baseDir string
	if len(args) == 0 {
		manifest, err := project.Discover(".")
		if errors.Is(err, project.ErrNoManifest) {
			return errors.New(noManifestMessage)
		}
		if err != nil {
			return err
		}
		if targetPath, err = manifest.EntryPath(); err != nil {
			return err
		}
		baseDir = manifest.Root
		if output == "" {
			output = manifest.OutputPath()
		}
		if m := manifest.Config.Diagnostics.Max; m > 0 && !cmd.Flags().Changed("max-diagnostics") {
			cf.maxDiagnostics = m
		}
	} else {
		targetPath = args[0]
	}

	files, err := buildpipeline.ExpandTarget(targetPath)
	if err != nil {
		return err
	}
	req := buildpipeline.CompileRequest{
		TargetPath:     targetPath,
		OutputPath:     output,
		MaxDiagnostics: cf.maxDiagnostics,
		Jobs:           jobs,
		Files:          files,
	}

	var res buildpipeline.CompileResult
	if shouldUseTUI(uiModeValue) && !cf.quiet {
		res, err = runWithUI("newt build", files, func(sink buildpipeline.ProgressSink) (buildpipeline.CompileResult, error) {
			reqCopy := req
			reqCopy.Progress = sink
			return buildpipeline.Compile(cmd.Context(), &reqCopy)
		})
	} else {
		res, err = buildpipeline.Compile(cmd.Context(), &req)
	}

	for _, unit := range res.Units {
		if unit.Build == nil {
			continue
		}
		if perr := printDiagnostics(cmd.ErrOrStderr(), cf, unit.Build.Bag, unit.Build.FileSet); perr != nil {
			return perr
		}
	}
	if cf.timings {
		if terr := printStageTimings(cmd.ErrOrStderr(), res.Timings); terr != nil {
			return terr
		}
	}
	if err != nil {
		return err
	}
	if !cf.quiet {
		root := baseDir
		if root == "" {
			root, _ = os.Getwd()
		}
		for _, unit := range res.Units {
			if unit.Output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built %s\n", formatPathForOutput(root, unit.Output))
			}
		}
	}
	if res.HasErrors() {
		return errHadErrors
	}
	return nil
}

func formatPathForOutput(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return path
	}
	if strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
