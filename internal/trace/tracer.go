package trace

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level      Level
	Format     Format       // FormatAuto: по расширению OutputPath
	Output     io.Writer    // если nil — OutputPath
	OutputPath string       // "-" — stderr
	Logger     *slog.Logger // если задан, события дублируются в лог
	Session    string       // пустой — сгенерировать
}

// NewSession returns a fresh session id.
func NewSession() string {
	return uuid.NewString()
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.Session == "" {
		cfg.Session = NewSession()
	}

	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") || strings.HasSuffix(cfg.OutputPath, ".jsonl") {
			format = FormatNDJSON
		}
	}

	var tracers []Tracer
	if cfg.Output != nil || cfg.OutputPath != "" {
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		tracers = append(tracers, NewStreamTracer(w, cfg.Level, format, cfg.Session))
	}
	if cfg.Logger != nil {
		tracers = append(tracers, NewSlogTracer(cfg.Logger, cfg.Level, cfg.Session))
	}

	switch len(tracers) {
	case 0:
		return Nop, nil
	case 1:
		return tracers[0], nil
	default:
		return NewMultiTracer(cfg.Level, tracers...), nil
	}
}

// openOutput opens the output writer from config.
func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "-" {
		return nopCloser{os.Stderr}, nil
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// nopCloser не даёт Close закрыть stderr.
type nopCloser struct{ io.Writer }
