package driver

import (
	"context"
	"strconv"
	"time"

	"vesuvius/internal/diag"
	"vesuvius/internal/lexer"
	"vesuvius/internal/source"
	"vesuvius/internal/token"
	"vesuvius/internal/trace"
)

// TokenizeResult holds the token stream of one file. Bag collects every
// diagnostic raised for the file, the fatal one included.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
	Bag    *diag.Bag
	Cached bool
}

// TokenizeFile loads path into fs and tokenizes it. A read failure is
// returned as *LoadError; a lexical error as diag.Diagnostic, together with
// the partial result.
func TokenizeFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (*TokenizeResult, error) {
	file, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(ctx, file, diag.NewBag(opts.MaxDiagnostics), opts)
}

// TokenizeSource tokenizes in-memory text registered in fs under name.
func TokenizeSource(ctx context.Context, fs *source.FileSet, name, text string, opts Options) (*TokenizeResult, error) {
	file := fs.Get(fs.AddVirtual(name, text))
	return tokenizeLoaded(ctx, file, diag.NewBag(opts.MaxDiagnostics), opts)
}

func loadFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (*source.File, error) {
	notify(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	start := time.Now()
	id, err := fs.Load(path)
	elapsed := time.Since(start)
	opts.Timer.Add(string(StageRead), elapsed)
	if err != nil {
		lerr := &LoadError{Path: path, Err: err}
		trace.Error(trace.FromContext(ctx), trace.ScopeFile, "read", lerr.Error(), trace.ParentSpan(ctx))
		notify(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusError, Err: lerr, Elapsed: elapsed})
		return nil, lerr
	}
	notify(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusDone, Elapsed: elapsed})
	return fs.Get(id), nil
}

func tokenizeLoaded(ctx context.Context, file *source.File, bag *diag.Bag, opts Options) (*TokenizeResult, error) {
	res := &TokenizeResult{File: file, Bag: bag}
	stage := beginStage(ctx, file.Path, StageLex, opts)

	if tokens, ok := opts.Cache.loadTokens(file); ok {
		res.Tokens, res.Cached = tokens, true
		stage.span.WithExtra("cached", "true")
		stage.end(strconv.Itoa(len(tokens))+" tokens", nil)
		return res, nil
	}

	before := bag.Len()
	tokens, err := lexer.TokenizeFile(file, lexer.Options{Reporter: opts.reporter(bag)})
	res.Tokens = tokens
	if err != nil {
		if d, ok := AsDiagnostic(err); ok {
			bag.Add(d)
		}
		stage.end("", err)
		return res, err
	}
	// Предупреждения должны выводиться при каждом запуске, поэтому кешируем
	// только чистые файлы.
	if bag.Len() == before {
		if err := opts.Cache.storeTokens(file, tokens); err != nil {
			opts.logger().Debug("token cache write failed", "path", file.Path, "error", err)
		}
	}
	stage.end(strconv.Itoa(len(tokens))+" tokens", nil)
	return res, nil
}

// stageRun ties together the trace span, timer and progress events of one
// stage of one file.
type stageRun struct {
	ctx   context.Context
	file  string
	stage Stage
	opts  Options
	span  *trace.Span
	start time.Time
}

func beginStage(ctx context.Context, file string, stage Stage, opts Options) *stageRun {
	notify(opts.Progress, Event{File: file, Stage: stage, Status: StatusWorking})
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, string(stage), trace.ParentSpan(ctx))
	span.WithExtra("file", file)
	return &stageRun{ctx: ctx, file: file, stage: stage, opts: opts, span: span, start: time.Now()}
}

func (s *stageRun) end(detail string, err error) {
	elapsed := time.Since(s.start)
	s.opts.Timer.Add(string(s.stage), elapsed)
	if err != nil {
		trace.Error(trace.FromContext(s.ctx), trace.ScopePass, string(s.stage), err.Error(), s.span.ID())
		s.span.End("failed")
		notify(s.opts.Progress, Event{File: s.file, Stage: s.stage, Status: StatusError, Err: err, Elapsed: elapsed})
		return
	}
	s.span.End(detail)
	notify(s.opts.Progress, Event{File: s.file, Stage: s.stage, Status: StatusDone, Elapsed: elapsed})
}
