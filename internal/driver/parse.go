package driver

import (
	"context"
	"strconv"

	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
	"vesuvius/internal/parser"
	"vesuvius/internal/sema"
	"vesuvius/internal/source"
	"vesuvius/internal/trace"
)

// ParseResult holds the outcome of one file. Builder and Nodes are set only
// when parsing succeeded; Global only when validation ran and succeeded.
type ParseResult struct {
	File      *source.File
	Tokens    int
	Cached    bool
	Builder   *ast.Builder
	Nodes     []ast.NodeID
	NodeCount int // globals and all their descendants
	Global    *sema.Object
	Bag       *diag.Bag
}

// Failed reports whether the bag holds an error or critical diagnostic.
func (r *ParseResult) Failed() bool {
	return r != nil && r.Bag != nil && r.Bag.HasErrors()
}

// ParseFile loads, tokenizes and parses path; with opts.Validate it also
// validates the top-level names. The first fatal diagnostic is returned as
// error together with the partial result.
func ParseFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (*ParseResult, error) {
	file, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}
	return parseLoaded(ctx, file, opts)
}

// ParseSource runs the same pipeline over in-memory text.
func ParseSource(ctx context.Context, fs *source.FileSet, name, text string, opts Options) (*ParseResult, error) {
	return parseLoaded(ctx, fs.Get(fs.AddVirtual(name, text)), opts)
}

func parseLoaded(ctx context.Context, file *source.File, opts Options) (*ParseResult, error) {
	fileSpan := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, file.Path, trace.ParentSpan(ctx))
	ctx = trace.WithParentSpan(ctx, fileSpan.ID())

	bag := diag.NewBag(opts.MaxDiagnostics)
	res := &ParseResult{File: file, Bag: bag}
	err := runPipeline(ctx, res, opts)

	fileSpan.WithExtra("tokens", strconv.Itoa(res.Tokens))
	fileSpan.WithExtra("nodes", strconv.Itoa(res.NodeCount))
	fileSpan.WithExtra("diagnostics", strconv.Itoa(bag.Len()))
	if err != nil {
		fileSpan.End("failed")
		return res, err
	}
	fileSpan.End("ok")
	return res, nil
}

func runPipeline(ctx context.Context, res *ParseResult, opts Options) error {
	toks, err := tokenizeLoaded(ctx, res.File, res.Bag, opts)
	if toks != nil {
		res.Tokens, res.Cached = len(toks.Tokens), toks.Cached
	}
	if err != nil {
		return err
	}

	stage := beginStage(ctx, res.File.Path, StageParse, opts)
	parsed, err := parser.Parse(toks.Tokens, parser.Options{Reporter: opts.reporter(res.Bag)})
	if err != nil {
		res.Bag.Add(fatal(err))
		stage.end("", err)
		return err
	}
	res.Builder, res.Nodes = parsed.Builder, parsed.Nodes
	res.NodeCount = countNodes(parsed.Builder.Nodes, parsed.Nodes)
	stage.end(strconv.Itoa(len(parsed.Nodes))+" globals", nil)

	if !opts.Validate {
		return nil
	}
	stage = beginStage(ctx, res.File.Path, StageValidate, opts)
	global, err := sema.Validate(parsed.Builder.Nodes, parsed.Nodes)
	if err != nil {
		res.Bag.Add(fatal(err))
		stage.end("", err)
		return err
	}
	res.Global = global
	stage.end(strconv.Itoa(global.Len())+" names", nil)
	return nil
}

func countNodes(nodes *ast.Nodes, roots []ast.NodeID) int {
	n := 0
	for _, id := range roots {
		nodes.Walk(id, func(ast.NodeID, int) bool {
			n++
			return true
		})
	}
	return n
}

// fatal converts a stage error into a diagnostic for the bag.
func fatal(err error) diag.Diagnostic {
	if d, ok := AsDiagnostic(err); ok {
		return d
	}
	return diag.Internal(err.Error())
}
