package cmd

import (
	"fmt"

	"github.com/jjtimmons/gfa/internal/gfa"
	"github.com/jjtimmons/gfa/internal/store"
	"github.com/spf13/cobra"
)

// findCmd is for finding records by their name
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find segments, paths or links by name",
	SuggestionsMinimumDistance: 2,
	Long: `Find records by name, either in a GFA file or in the index built by 'gfa index'.

With two arguments the first is a GFA file that's read and searched. With one
argument the index database (--db) is searched instead.`,
	Aliases: []string{"ls", "get"},
}

// segmentFindCmd is for finding a segment by its name
var segmentFindCmd = &cobra.Command{
	Use:                        "segment [file] [name]",
	Short:                      "Find a segment",
	RunE:                       segmentFindExec,
	Args:                       cobra.RangeArgs(1, 2),
	SuggestionsMinimumDistance: 2,
	Example:                    "  gfa find segment assembly.gfa utg000012l",
	Aliases:                    []string{"seg", "s"},
}

// pathFindCmd is for finding a path by its name
var pathFindCmd = &cobra.Command{
	Use:                        "path [file] [name]",
	Short:                      "Find a path",
	RunE:                       pathFindExec,
	Args:                       cobra.RangeArgs(1, 2),
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"p"},
}

// linkFindCmd is for finding the links on either end of a segment
var linkFindCmd = &cobra.Command{
	Use:                        "links [file] [segment]",
	Short:                      "Find the links leaving or entering a segment",
	RunE:                       linkFindExec,
	Args:                       cobra.RangeArgs(1, 2),
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"link", "l"},
}

func segmentFindExec(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return withStore(func(s *store.Store) error {
			seg, ok, err := s.Segment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("failed to find segment %s in %s", args[0], conf.DB)
			}
			return printRecord(cmd, seg)
		})
	}

	g, _, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	seg, ok := gfa.NewSegmentIndex(g).Lookup(args[1])
	if !ok {
		return fmt.Errorf("failed to find segment %s in %s", args[1], args[0])
	}
	return printRecord(cmd, seg)
}

func pathFindExec(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return withStore(func(s *store.Store) error {
			p, ok, err := s.Path(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("failed to find path %s in %s", args[0], conf.DB)
			}
			return printRecord(cmd, p)
		})
	}

	g, _, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	for _, p := range g.Paths {
		if p.Name == args[1] {
			return printRecord(cmd, p)
		}
	}
	return fmt.Errorf("failed to find path %s in %s", args[1], args[0])
}

func linkFindExec(cmd *cobra.Command, args []string) error {
	var links []gfa.Link
	if len(args) == 1 {
		err := withStore(func(s *store.Store) (err error) {
			links, err = s.Links(cmd.Context(), args[0])
			return err
		})
		if err != nil {
			return err
		}
	} else {
		g, _, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		for _, l := range g.Links {
			if l.From == args[1] || l.To == args[1] {
				links = append(links, l)
			}
		}
	}

	for _, l := range links {
		if err := printRecord(cmd, l); err != nil {
			return err
		}
	}
	return nil
}

// withStore opens the index database for the duration of fn
func withStore(fn func(*store.Store) error) error {
	s, err := store.Open(conf.DB, logger)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// printRecord writes a record's line to the command's output
func printRecord(cmd *cobra.Command, l gfa.Line) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), l.String())
	return err
}

// set flags
func init() {
	findCmd.AddCommand(segmentFindCmd)
	findCmd.AddCommand(pathFindCmd)
	findCmd.AddCommand(linkFindCmd)

	RootCmd.AddCommand(findCmd)
}
