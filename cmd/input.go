package cmd

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/gfa/internal/gfa"
	"github.com/jjtimmons/gfa/internal/io"
	"github.com/spf13/cobra"
)

const onlyHelp = `comma separated record kinds to keep, any of
segments, links, containments and paths (overrides the settings file)`

// parseKinds turns the --only flag into a parsing config. An empty flag keeps the settings
func parseKinds(flag string, settings gfa.ParsingConfig) (gfa.ParsingConfig, error) {
	splitFunc := func(c rune) bool {
		return c == ' ' || c == ',' // space or comma separated
	}

	names := strings.FieldsFunc(strings.ToLower(flag), splitFunc)
	if len(names) == 0 {
		return settings, nil
	}

	cfg := gfa.ParseNone()
	for _, k := range names {
		switch strings.TrimSuffix(k, "s") {
		case "segment":
			cfg.Segments = true
		case "link":
			cfg.Links = true
		case "containment":
			cfg.Containments = true
		case "path":
			cfg.Paths = true
		default:
			return cfg, fmt.Errorf("unknown record kind %q, use segments, links, containments or paths", k)
		}
	}
	return cfg, nil
}

// kinds is the parsing config of a command: the settings, unless it has an --only flag
func kinds(cmd *cobra.Command) (gfa.ParsingConfig, error) {
	if f := cmd.Flags().Lookup("only"); f != nil {
		return parseKinds(f.Value.String(), conf.Parse)
	}
	return conf.Parse, nil
}

// readInput reads the GFA file at path using the settings and the command's --only flag
func readInput(cmd *cobra.Command, path string) (*gfa.GFA, io.Report, error) {
	opts := io.NewOptions(conf, logger)

	cfg, err := kinds(cmd)
	if err != nil {
		return nil, io.Report{}, err
	}
	opts.Parse = cfg

	g, report, err := io.ReadFile(cmd.Context(), path, opts)
	if err != nil {
		return nil, report, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(report.Skipped) > 0 {
		logger.Warnw("skipped malformed lines", "file", path, "count", len(report.Skipped))
	}
	return g, report, nil
}
