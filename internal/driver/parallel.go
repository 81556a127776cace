package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"newt/internal/diag"
	"newt/internal/observ"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/token"
	"newt/internal/trace"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь как его вернул обход директории
	FileID source.FileID // валиден, только если файл загрузился
	Tokens []token.Token
	Bag    *diag.Bag
}

// DirResult is the outcome of TokenizeDir. All files share one
// synchronized session, so identifiers are canonical across the directory.
type DirResult struct {
	FileSet *source.FileSet
	Context *session.Context
	Files   []TokenizeDirResult
	Timer   *observ.Timer
}

// ListSourceFiles возвращает отсортированный список всех *.nt файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir lexes every *.nt file under dir in parallel. A file that fails
// to load gets an IOLoadFileError diagnostic instead of tokens; the error
// return is for walking the directory and cancellation.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*DirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	res := &DirResult{
		FileSet: source.NewFileSet(),
		Context: session.New(session.WithSynchronized()),
		Files:   make([]TokenizeDirResult, len(files)),
		Timer:   observ.NewTimer(),
	}
	if len(files) == 0 {
		return res, nil
	}

	// FileSet не потокобезопасен: грузим всё заранее
	loadPhase, _ := beginPhase(ctx, &opts, res.Timer, trace.ScopePass, PhaseLoad, dir)
	loaded := make([]*source.File, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		id, err := res.FileSet.Load(path)
		if err != nil {
			loadErrs[i] = err
			continue
		}
		loaded[i] = res.FileSet.Get(id)
	}
	loadPhase.end(fmt.Sprintf("%d files", len(files)), nil)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	lexPhase, lexCtx := beginPhase(ctx, &opts, res.Timer, trace.ScopePass, PhaseLex, dir)
	g, gctx := errgroup.WithContext(lexCtx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := diag.NewBag(opts.MaxDiagnostics)
			// индекс i уникален для горутины, мьютекс не нужен
			res.Files[i] = TokenizeDirResult{Path: path, Bag: bag}
			if loadErrs[i] != nil {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErrs[i].Error()))
				if opts.Observer != nil {
					opts.Observer(PhaseEvent{Name: PhaseLoad, Path: path, Status: PhaseEnd, Err: loadErrs[i]})
				}
				return nil
			}
			file := loaded[i]
			ph, _ := beginPhase(gctx, &opts, nil, trace.ScopeFile, PhaseLex, path)
			res.Files[i].FileID = file.ID
			res.Files[i].Tokens = lexAll(file, res.Context, bag)
			var lexErr error
			if bag.HasErrors() {
				lexErr = fmt.Errorf("%s: %d diagnostics", path, bag.Len())
			}
			ph.end(fmt.Sprintf("%d tokens", len(res.Files[i].Tokens)), lexErr)
			return nil
		})
	}
	err = g.Wait()
	lexPhase.end(fmt.Sprintf("%d files", len(files)), err)
	if err != nil {
		return res, err
	}
	return res, nil
}
