package cmd

import (
	"github.com/jjtimmons/gfa/internal/io"
	"github.com/spf13/cobra"
)

// viewCmd is for parsing a GFA file and writing it back out canonically
var viewCmd = &cobra.Command{
	Use:                        "view [file]",
	Short:                      "Parse a GFA file and write its records back out",
	RunE:                       viewExec,
	Args:                       cobra.ExactArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Parse a GFA file and write its records to stdout (or --out).

The header comes first, then segments, links, containments and paths, each in
file order. Comments are dropped. Use --only to keep some kinds of records.`,
	Example: "  gfa view --only segments,paths assembly.gfa",
	Aliases: []string{"cat"},
}

// viewExec reads the input and writes what was kept
func viewExec(cmd *cobra.Command, args []string) error {
	g, _, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return io.Write(cmd.OutOrStdout(), g)
	}
	return io.WriteFile(out, g)
}

// set flags
func init() {
	viewCmd.Flags().StringP("out", "o", "", "output file name")
	viewCmd.Flags().StringP("only", "k", "", onlyHelp)

	RootCmd.AddCommand(viewCmd)
}
