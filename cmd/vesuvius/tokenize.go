package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vesuvius/internal/diagfmt"
	"vesuvius/internal/driver"
	"vesuvius/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.vs",
	Short: "Tokenize a Vesuvius source file",
	Long:  `Tokenize breaks down a Vesuvius source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	sess := current
	result, err := driver.TokenizeFile(cmd.Context(), source.NewFileSet(), args[0], sess.driverOptions(false))
	if err != nil {
		return sess.reportFatal(err)
	}
	sess.logger.Debug("tokenized", "file", result.File.Path, "tokens", len(result.Tokens), "cached", result.Cached)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(out, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(out, result.Tokens)
	}
}
