package cmd

import (
	"fmt"

	"github.com/jjtimmons/gfa/internal/store"
	"github.com/spf13/cobra"
)

// indexCmd is for loading GFA files into the SQLite index
var indexCmd = &cobra.Command{
	Use:                        "index [file] ... [fileN]",
	Short:                      "Load GFA files into an index database",
	RunE:                       indexExec,
	Args:                       cobra.MinimumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Parse GFA files and load their records into a SQLite database (--db) so
'gfa find' can look segments, paths and links up without reading the files again.`,
	Example: "  gfa index --db graphs.db assembly.gfa",
	Aliases: []string{"load"},
}

// indexExec reads each file and loads it in its own transaction
func indexExec(cmd *cobra.Command, args []string) error {
	return withStore(func(s *store.Store) error {
		for _, path := range args {
			g, _, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			id, err := s.Load(cmd.Context(), path, g)
			if err != nil {
				return fmt.Errorf("failed to index %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d records\n", id, path, g.Len())
		}
		return nil
	})
}

// set flags
func init() {
	indexCmd.Flags().StringP("only", "k", "", onlyHelp)

	RootCmd.AddCommand(indexCmd)
}
