package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"vesuvius/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|plain|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show vesuvius build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch strings.ToLower(versionFormat) {
		case "json":
			return renderVersionJSON(out)
		case "plain":
			_, err := fmt.Fprintln(out, version.String(false))
			return err
		case "pretty":
			color := true
			if current != nil {
				color = current.settings.useColor(isTerminal(os.Stdout))
			}
			_, err := fmt.Fprintln(out, renderVersionBox(color))
			return err
		default:
			return fmt.Errorf("unsupported format %q (must be pretty, plain or json)", versionFormat)
		}
	},
}

func renderVersionBox(color bool) string {
	lines := []string{version.String(color)}
	if version.GitCommit == "" && version.BuildDate == "" {
		lines = append(lines, "development build")
	}
	if !color {
		return strings.Join(lines, "\n")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("1")).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}

func renderVersionJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(versionPayload{
		Tool:      "vesuvius",
		Version:   version.Version,
		GitCommit: version.GitCommit,
		BuildDate: version.BuildDate,
	})
}
