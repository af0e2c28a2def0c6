package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"vesuvius/internal/diagfmt"
	"vesuvius/internal/project"
	"vesuvius/internal/trace"
)

// settings — итоговая конфигурация запуска: флаги поверх файла, файл поверх
// значений по умолчанию.
type settings struct {
	colorMode      string
	quiet          bool
	timings        bool
	verbose        bool
	maxDiagnostics int
	diagFormat     diagfmt.Format
	pathMode       diagfmt.PathMode
	traceOutput    string
	traceLevel     trace.Level
	traceFormat    trace.Format
	logFile        string
	cacheEnabled   bool
	cacheDir       string
}

func resolveSettings(flags *pflag.FlagSet, cfg project.Config) (settings, error) {
	s := settings{
		colorMode:      cfg.Diagnostics.Color,
		maxDiagnostics: cfg.Diagnostics.Max,
		traceOutput:    cfg.Trace.Output,
		cacheEnabled:   cfg.Cache.Enabled,
		cacheDir:       cfg.Cache.Dir,
	}
	formatName := cfg.Diagnostics.Format
	pathsName := cfg.Diagnostics.Paths
	levelName := cfg.Trace.Level
	traceFormatName := cfg.Trace.Format

	var err error
	str := func(name string, dst *string) {
		if err == nil && flags.Changed(name) {
			*dst, err = flags.GetString(name)
		}
	}
	str("color", &s.colorMode)
	str("diagnostics-format", &formatName)
	str("paths", &pathsName)
	str("trace", &s.traceOutput)
	str("trace-level", &levelName)
	str("trace-format", &traceFormatName)
	if err != nil {
		return settings{}, err
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return settings{}, err
		}
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return settings{}, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return settings{}, err
	}
	if s.verbose, err = flags.GetBool("verbose"); err != nil {
		return settings{}, err
	}
	if s.logFile, err = flags.GetString("log-file"); err != nil {
		return settings{}, err
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return settings{}, err
	}
	if noCache {
		s.cacheEnabled = false
	}

	switch s.colorMode {
	case "", "auto", "on", "off":
	default:
		return settings{}, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.colorMode)
	}
	if s.maxDiagnostics < 0 {
		return settings{}, fmt.Errorf("--max-diagnostics must not be negative")
	}
	if s.diagFormat, err = diagfmt.ParseFormat(formatName); err != nil {
		return settings{}, err
	}
	s.pathMode = diagfmt.ParsePathMode(pathsName)
	if s.traceLevel, err = trace.ParseLevel(levelName); err != nil {
		return settings{}, err
	}
	if s.traceFormat, err = trace.ParseFormat(traceFormatName); err != nil {
		return settings{}, err
	}
	// --trace без уровня — трассируем фазы
	if s.traceOutput != "" && s.traceLevel == trace.LevelOff && !flags.Changed("trace-level") {
		s.traceLevel = trace.LevelPhase
	}
	return s, nil
}

// useColor resolves auto against whether the target is a terminal.
func (s settings) useColor(tty bool) bool {
	switch s.colorMode {
	case "on":
		return true
	case "off":
		return false
	default:
		return tty
	}
}
