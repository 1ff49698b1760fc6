package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jjtimmons/gfa/internal/gfa"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Stats is a summary of a GFA file
type Stats struct {
	// File is the path that was read
	File string `json:"file" yaml:"file"`

	// Version from the last header, empty if none declared one
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	Lines        int `json:"lines" yaml:"lines"`
	Skipped      int `json:"skipped" yaml:"skipped"`
	Segments     int `json:"segments" yaml:"segments"`
	Links        int `json:"links" yaml:"links"`
	Containments int `json:"containments" yaml:"containments"`
	Paths        int `json:"paths" yaml:"paths"`

	// Bases is the total length of the segments. LN is used for segments without a sequence
	Bases int64 `json:"bases" yaml:"bases"`

	// MissingSegments are names referenced by other records without a segment
	MissingSegments []string `json:"missingSegments,omitempty" yaml:"missingSegments,omitempty"`
}

// statsCmd is for summarizing the records of a GFA file
var statsCmd = &cobra.Command{
	Use:                        "stats [file]",
	Short:                      "Count the records of a GFA file",
	RunE:                       statsExec,
	Args:                       cobra.ExactArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Count the segments, links, containments and paths of a GFA file,
the total length of its segments and any segment names that are referenced
but never defined. Written as JSON, or YAML with --format yaml.`,
	Aliases: []string{"summary"},
}

// statsExec reads the input and writes its summary
func statsExec(cmd *cobra.Command, args []string) error {
	g, report, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	cfg, _ := kinds(cmd)
	stats := summarize(args[0], g, cfg.Segments)
	stats.Lines = report.Lines
	stats.Skipped = len(report.Skipped)

	format, _ := cmd.Flags().GetString("format")
	var output []byte
	switch format {
	case "json":
		output, err = json.MarshalIndent(stats, "", "  ")
		output = append(output, '\n')
	case "yaml", "yml":
		output, err = yaml.Marshal(stats)
	default:
		return fmt.Errorf("unknown format %q, use json or yaml", format)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize stats: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(output)
	return err
}

// summarize counts the records of g. References are only checked if segments were kept
func summarize(file string, g *gfa.GFA, checkRefs bool) Stats {
	stats := Stats{
		File:         file,
		Segments:     len(g.Segments),
		Links:        len(g.Links),
		Containments: len(g.Containments),
		Paths:        len(g.Paths),
	}
	if g.Version != nil {
		stats.Version = *g.Version
	}

	for _, s := range g.Segments {
		switch {
		case s.Sequence != "*":
			stats.Bases += int64(len(s.Sequence))
		case s.Length != nil:
			stats.Bases += *s.Length
		}
	}

	if checkRefs {
		stats.MissingSegments = gfa.NewSegmentIndex(g).Missing(g)
	}
	return stats
}

// set flags
func init() {
	statsCmd.Flags().StringP("format", "f", "json", "output format, json or yaml")
	statsCmd.Flags().StringP("only", "k", "", onlyHelp)

	RootCmd.AddCommand(statsCmd)
}
