package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"newt/internal/driver"
)

// CompileRequest configures a build of one file or of every file in a
// directory.
type CompileRequest struct {
	TargetPath     string
	OutputPath     string // single-file target only; default is <source>.ll
	MaxDiagnostics int
	Jobs           int
	Progress       ProgressSink
	Files          []string // filled by Compile when empty
}

// Unit is the outcome for one source file.
type Unit struct {
	Path   string
	Output string // empty when nothing was written
	Build  *driver.BuildResult
}

// CompileResult captures per-file results and stage timings.
type CompileResult struct {
	Units   []Unit
	Timings Timings
}

// HasErrors reports whether any unit produced error diagnostics.
func (r CompileResult) HasErrors() bool {
	for _, u := range r.Units {
		if u.Build == nil || u.Build.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Compile builds every requested file and writes its IR next to the
// source (or to OutputPath). Diagnostics stay in the per-unit bags; the
// error return is for I/O and cancellation.
func Compile(ctx context.Context, req *CompileRequest) (CompileResult, error) {
	var result CompileResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing compile request")
	}
	if req.TargetPath == "" {
		return result, fmt.Errorf("missing target path")
	}
	if len(req.Files) == 0 {
		files, err := ExpandTarget(req.TargetPath)
		if err != nil {
			return result, err
		}
		req.Files = files
	}
	if len(req.Files) > 1 && req.OutputPath != "" {
		return result, fmt.Errorf("--output needs a single source file, %s has %d", req.TargetPath, len(req.Files))
	}
	emitQueued(req.Progress, req.Files)

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	var timingsMu sync.Mutex
	observer := &phaseObserver{sink: req.Progress, final: StageWrite, record: func(stage Stage, d time.Duration) {
		timingsMu.Lock()
		result.Timings.Add(stage, d)
		timingsMu.Unlock()
	}}

	result.Units = make([]Unit, len(req.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(req.Files))))
	for i, path := range req.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			unit, err := compileOne(gctx, req, path, observer)
			result.Units[i] = unit
			return err
		})
	}
	err := g.Wait()
	return result, err
}

func compileOne(ctx context.Context, req *CompileRequest, path string, observer *phaseObserver) (Unit, error) {
	unit := Unit{Path: path}
	res, err := driver.Build(ctx, path, driver.Options{
		MaxDiagnostics: req.MaxDiagnostics,
		Observer:       observer.OnPhase,
	})
	if err != nil {
		emitStage(req.Progress, path, StageLoad, StatusError, err, 0)
		return unit, err
	}
	unit.Build = res
	if res.Bag.HasErrors() || res.IR == "" {
		emitStage(req.Progress, path, StageBuild, StatusError, fmt.Errorf("%d diagnostics", res.Bag.Len()), 0)
		return unit, nil
	}

	out := req.OutputPath
	if out == "" {
		out = OutputPathFor(path)
	}
	started := time.Now()
	emitStage(req.Progress, path, StageWrite, StatusWorking, nil, 0)
	if err := os.WriteFile(out, []byte(res.IR), 0o600); err != nil {
		err = fmt.Errorf("write %s: %w", out, err)
		emitStage(req.Progress, path, StageWrite, StatusError, err, time.Since(started))
		return unit, err
	}
	observer.record(StageWrite, time.Since(started))
	unit.Output = out
	emitStage(req.Progress, path, StageWrite, StatusDone, nil, time.Since(started))
	return unit, nil
}

// ExpandTarget returns target itself for a file, or every source file
// under it for a directory.
func ExpandTarget(target string) ([]string, error) {
	st, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return []string{target}, nil
	}
	files, err := driver.ListSourceFiles(target)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files in %s", driver.SourceExt, target)
	}
	return files, nil
}

// OutputPathFor maps hello.nt to hello.ll.
func OutputPathFor(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".ll"
}

func emitQueued(sink ProgressSink, files []string) {
	if sink == nil {
		return
	}
	for _, f := range files {
		sink.OnEvent(Event{File: f, Status: StatusQueued})
	}
}

func emitStage(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
