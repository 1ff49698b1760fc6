package io

import (
	"bufio"
	"fmt"
	goio "io"
	"os"

	"github.com/jjtimmons/gfa/internal/gfa"
)

// Write renders every line of g to w, one per line
func Write(w goio.Writer, g *gfa.GFA) error {
	bw := bufio.NewWriter(w)
	for _, l := range g.Lines() {
		if _, err := bw.WriteString(l.String() + "\n"); err != nil {
			return fmt.Errorf("failed to write %s line: %w", l.Kind(), err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write the output: %w", err)
	}
	return nil
}

// WriteFile writes g to the file at filename, replacing it if it exists
func WriteFile(filename string, g *gfa.GFA) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create the output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close the output file: %w", cerr)
		}
	}()

	return Write(f, g)
}
