package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vesuvius/internal/diagfmt"
	"vesuvius/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.vs|directory>...",
	Short: "Parse Vesuvius source files",
	Long: `Parse builds the syntax tree of each file and prints it.
Directories are searched recursively for *.vs files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json)")
	parseCmd.Flags().Bool("validate", true, "check top-level names after parsing")
	parseCmd.Flags().Int("jobs", 0, "max parallel files (0 = GOMAXPROCS)")
	parseCmd.Flags().String("ui", "auto", "progress UI for multiple files (auto|on|off)")
}

func runParse(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "tree", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	validate, err := flags.GetBool("validate")
	if err != nil {
		return err
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	files, err := driver.ExpandInputs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", driver.SourceExt)
	}

	sess := current
	opts := sess.driverOptions(validate)
	opts.Jobs = jobs

	var results []driver.FileResult
	if len(files) > 1 && !sess.settings.quiet && shouldUseTUI(mode) {
		lastStage := driver.StageParse
		if validate {
			lastStage = driver.StageValidate
		}
		results, err = runParseWithUI(cmd.Context(), files, lastStage, opts)
	} else {
		_, results, err = driver.ParseFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}
	sess.logger.Debug("parse finished",
		"files", len(results),
		"diagnostics", driver.CollectDiagnostics(results).Len())
	return sess.timer.Measure("print", func() error {
		return printParseResults(cmd.OutOrStdout(), sess, format, results)
	})
}

// printParseResults prints every successfully parsed file, then the fatal
// diagnostics of the failed ones. A failed file prints no tree.
func printParseResults(out io.Writer, sess *session, format string, results []driver.FileResult) error {
	failed := false
	for _, r := range results {
		if r.Err != nil {
			sess.reporter.Report(fatalDiagnostic(r.Err, os.Args))
			failed = true
			continue
		}
		if len(results) > 1 && format != "json" {
			if _, err := fmt.Fprintf(out, "== %s ==\n", r.Result.File.Path); err != nil {
				return err
			}
		}
		if err := printTree(out, format, r.Result); err != nil {
			return err
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func printTree(out io.Writer, format string, res *driver.ParseResult) error {
	nodes := res.Builder.Nodes
	switch format {
	case "tree":
		return diagfmt.FormatASTTree(out, nodes, res.Nodes)
	case "json":
		return diagfmt.FormatASTJSON(out, nodes, res.Nodes)
	default:
		return diagfmt.FormatASTPretty(out, nodes, res.Nodes)
	}
}

type parseOutcome struct {
	results []driver.FileResult
	err     error
}

func runParseWithUI(ctx context.Context, files []string, lastStage driver.Stage, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		_, results, err := driver.ParseFiles(ctx, files, opts)
		outcomeCh <- parseOutcome{results: results, err: err}
		close(events)
	}()

	uiErr := runProgressUI("parsing", files, lastStage, events)
	// UI мог завершиться раньше (Ctrl+C): не даём воркерам застрять на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
