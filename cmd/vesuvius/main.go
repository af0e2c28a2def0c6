package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vesuvius/internal/version"
)

var rootCmd = &cobra.Command{
	Use:               "vesuvius",
	Short:             "Vesuvius language front end",
	Long:              `Vesuvius tokenizes, parses and validates Vesuvius source files`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupSession,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		finishSession(cmd)
	},
}

// errFailed — диагностики уже напечатаны, остаётся только код выхода.
var errFailed = errors.New("vesuvius: fatal diagnostics reported")

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cleanCmd)

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress warnings and non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics kept per file (0 = unlimited)")
	flags.String("diagnostics-format", "banner", "diagnostics output format (banner|short|json)")
	flags.String("paths", "auto", "path display in diagnostics (auto|absolute|relative|basename)")
	flags.String("trace", "", "write trace events to PATH (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.String("log-file", "", "also write JSON logs to PATH")
	flags.Bool("verbose", false, "log debug messages to stderr")
	flags.String("config", "", "configuration file (default: nearest vesuvius.toml or vesuvius.yaml)")
	flags.Bool("no-cache", false, "disable the token cache")
}

func main() {
	err := rootCmd.Execute()
	// PersistentPostRun не вызывается, если команда вернула ошибку
	closeSession()
	if err == nil {
		return
	}
	if !errors.Is(err, errFailed) {
		fmt.Fprintf(os.Stderr, "vesuvius: %v\n", err)
	}
	os.Exit(1)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
