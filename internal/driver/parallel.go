package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"vesuvius/internal/diag"
	"vesuvius/internal/source"
	"vesuvius/internal/trace"
)

// FileResult is the outcome of one file in a ParseFiles run. Err is the
// fatal diagnostic or *LoadError of the file, if any.
type FileResult struct {
	Path   string
	Result *ParseResult
	Err    error
}

// ListSourceFiles возвращает отсортированный список всех *.vs файлов в директории
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
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandInputs replaces every directory among inputs with its source files.
// Plain paths are kept as given, even when they do not exist: the read
// error is reported per file later.
func ExpandInputs(inputs []string) ([]string, error) {
	var out []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil || !info.IsDir() {
			out = append(out, in)
			continue
		}
		files, err := ListSourceFiles(in)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", in, err)
		}
		out = append(out, files...)
	}
	return out, nil
}

// CollectDiagnostics merges the bags of all parsed files into one sorted bag.
// Files that failed to load have no bag and are skipped.
func CollectDiagnostics(results []FileResult) *diag.Bag {
	all := diag.NewBag(0)
	for _, r := range results {
		if r.Result != nil {
			all.Merge(r.Result.Bag)
		}
	}
	all.Sort()
	return all
}

// ParseFiles runs ParseFile over paths in parallel. Results keep the order
// of paths. A fatal diagnostic in one file does not stop the others; only
// context cancellation aborts the run.
func ParseFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSet()
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return fileSet, results, nil
	}

	tracer := trace.FromContext(ctx)
	run := trace.Begin(tracer, trace.ScopeDriver, "parse-files", trace.ParentSpan(ctx))
	run.WithExtra("files", strconv.Itoa(len(paths)))
	defer func() {
		run.WithExtra("diagnostics", strconv.Itoa(CollectDiagnostics(results).Len()))
		run.End("")
	}()
	ctx = trace.WithParentSpan(ctx, run.ID())

	// Загружаем последовательно: FileSet не потокобезопасен.
	files := make([]*source.File, len(paths))
	for i, path := range paths {
		results[i].Path = path
		notify(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
		file, err := loadFile(ctx, fileSet, path, opts)
		if err != nil {
			results[i].Err = err
			continue
		}
		files[i] = file
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, file := range files {
		if file == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := parseLoaded(gctx, file, opts)
			results[i].Result = res
			results[i].Err = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
