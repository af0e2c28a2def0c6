package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"vesuvius/internal/diag"
	"vesuvius/internal/diagfmt"
	"vesuvius/internal/driver"
	"vesuvius/internal/observ"
	"vesuvius/internal/project"
	"vesuvius/internal/trace"
)

// session — состояние одного запуска CLI, общее для всех команд.
type session struct {
	settings settings
	baseDir  string
	logger   *slog.Logger
	tracer   trace.Tracer
	rootSpan *trace.Span
	reporter *diagfmt.StreamReporter
	timer    *observ.Timer
	cache    *driver.DiskCache
	closers  []func() error
	finished bool
}

var current *session

func setupSession(cmd *cobra.Command, args []string) error {
	cfg, configPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := resolveSettings(cmd.Root().PersistentFlags(), cfg)
	if err != nil {
		return err
	}
	baseDir, err := os.Getwd()
	if err != nil {
		baseDir = ""
	}
	sess := &session{settings: s, baseDir: baseDir}
	current = sess

	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), s.logFile, s.verbose)
	if err != nil {
		return err
	}
	sess.logger = logger
	sess.closers = append(sess.closers, closeLog)
	if configPath != "" {
		logger.Debug("config loaded", "path", configPath)
	}

	tracer, err := trace.New(trace.Config{
		Level:      s.traceLevel,
		Format:     s.traceFormat,
		OutputPath: s.traceOutput,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	sess.tracer = tracer
	sess.closers = append(sess.closers, func() error {
		if err := tracer.Flush(); err != nil {
			return err
		}
		return tracer.Close()
	})

	sess.rootSpan = trace.Begin(tracer, trace.ScopeDriver, cmd.Name(), 0)
	ctx := trace.WithTracer(cmd.Context(), tracer)
	ctx = trace.WithParentSpan(ctx, sess.rootSpan.ID())
	cmd.SetContext(ctx)

	color := s.useColor(isTerminal(os.Stderr))
	sess.reporter = diagfmt.NewStreamReporter(cmd.ErrOrStderr(), s.diagFormat,
		diagfmt.BannerOpts{Color: color, PathMode: s.pathMode, BaseDir: baseDir, ShowNotes: true},
		diagfmt.JSONOpts{PathMode: s.pathMode, BaseDir: baseDir, IncludeNotes: true},
	)
	sess.reporter.SetQuiet(s.quiet)

	if s.timings {
		sess.timer = observ.NewTimer()
	}
	if s.cacheEnabled {
		sess.cache = openCache(s.cacheDir, logger)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (project.Config, string, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return project.Config{}, "", err
	}
	if path != "" {
		cfg, err := project.Load(path)
		return cfg, path, err
	}
	return project.LoadFromDir(".")
}

// openDiskCache opens dir, or the per-user cache directory when dir is empty.
func openDiskCache(dir string) (*driver.DiskCache, error) {
	if dir != "" {
		return driver.OpenDiskCacheAt(dir)
	}
	return driver.OpenDiskCache("vesuvius")
}

func openCache(dir string, logger *slog.Logger) *driver.DiskCache {
	cache, err := openDiskCache(dir)
	if err != nil {
		// без кеша работаем так же, только медленнее
		logger.Warn("token cache disabled", "error", err)
		return nil
	}
	logger.Debug("token cache", "dir", cache.Dir())
	return cache
}

// newLogger fans log records out to a text handler on stderr and, with
// logFile set, a JSON handler on that file.
func newLogger(stderr io.Writer, logFile string, verbose bool) (*slog.Logger, func() error, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	closeFn := func() error { return nil }
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeFn = f.Close
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

func (s *session) driverOptions(validate bool) driver.Options {
	return driver.Options{
		MaxDiagnostics: s.settings.maxDiagnostics,
		Reporter:       diag.NewDedupReporter(s.reporter),
		Validate:       validate,
		Cache:          s.cache,
		Timer:          s.timer,
		Logger:         s.logger,
	}
}

func finishSession(cmd *cobra.Command) {
	if current == nil {
		return
	}
	current.finished = true
	current.rootSpan.End("")
	if current.timer != nil {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), current.timer.Summary())
	}
}

func closeSession() {
	if current == nil {
		return
	}
	if !current.finished {
		current.rootSpan.End("failed")
	}
	for i := len(current.closers) - 1; i >= 0; i-- {
		if err := current.closers[i](); err != nil {
			fmt.Fprintf(os.Stderr, "vesuvius: %v\n", err)
		}
	}
	current = nil
}
