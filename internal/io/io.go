// Package io reads GFA files into collections and writes them back out.
// It splits files into lines and fields, hands the fields to package gfa
// and, for large files, parses chunks of lines in parallel.
package io

import (
	"bufio"
	"context"
	"fmt"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/gfa/config"
	"github.com/jjtimmons/gfa/internal/gfa"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options control how a file is read
type Options struct {
	// Parse selects the record kinds kept
	Parse gfa.ParsingConfig

	// Strict stops at the first malformed line
	Strict bool

	// Workers is the number of chunks parsed at once
	Workers int

	// ChunkLines is the number of lines per chunk
	ChunkLines int

	Logger *zap.SugaredLogger
}

// NewOptions makes read options from the app settings
func NewOptions(c *config.Config, logger *zap.SugaredLogger) Options {
	return Options{
		Parse:      c.Parse,
		Strict:     c.Strict,
		Workers:    c.Workers,
		ChunkLines: c.ChunkLines,
		Logger:     logger,
	}
}

// LineError is a malformed line and why it couldn't be parsed
type LineError struct {
	// Line is 1-based
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Report describes a finished read
type Report struct {
	// Lines is the number of lines read, blank ones included
	Lines int

	// Skipped are the malformed lines dropped outside of strict mode, in file order
	Skipped []*LineError
}

// chunk is a run of consecutive lines, first is the number of lines[0]
type chunk struct {
	first int
	lines []string

	gfa     *gfa.GFA
	skipped []*LineError
	err     *LineError
}

// ReadFile reads the GFA file at path
func ReadFile(ctx context.Context, path string, opts Options) (*gfa.GFA, Report, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, Report{}, fmt.Errorf("failed to create path to input file: %w", err)
		}
		path = abs
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to read input file: %w", err)
	}
	defer f.Close()

	return Read(ctx, f, opts)
}

// Read parses every line of r. Chunks of lines are parsed concurrently and
// merged back in file order, so the result doesn't depend on Workers
func Read(ctx context.Context, r goio.Reader, opts Options) (*gfa.GFA, Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	workers, chunkLines := max(opts.Workers, 1), max(opts.ChunkLines, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var chunks []*chunk
	dispatch := func(c *chunk) {
		chunks = append(chunks, c)
		g.Go(func() error {
			parseChunk(c, opts.Parse, opts.Strict)
			if c.err != nil {
				return c.err
			}
			return nil
		})
	}

	br := bufio.NewReader(r)
	n := 0
	current := &chunk{first: 1}
	var readErr error
	for {
		if gctx.Err() != nil {
			break
		}

		line, err := br.ReadString('\n')
		if line != "" {
			n++
			current.lines = append(current.lines, line)
			if len(current.lines) == chunkLines {
				dispatch(current)
				current = &chunk{first: n + 1}
			}
		}
		if err == goio.EOF {
			break
		}
		if err != nil {
			readErr = fmt.Errorf("failed to read line %d: %w", n+1, err)
			break
		}
	}
	if len(current.lines) > 0 && gctx.Err() == nil {
		dispatch(current)
	}

	// chunks don't watch the context, so every dispatched chunk is parsed
	// to its end and the first error in file order can be found below
	waitErr := g.Wait()
	report := Report{Lines: n}
	for _, c := range chunks {
		if c.err != nil {
			return nil, report, c.err
		}
		report.Skipped = append(report.Skipped, c.skipped...)
	}
	if readErr != nil {
		return nil, report, readErr
	}
	if waitErr != nil {
		return nil, report, waitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, report, err
	}

	parts := make([]*gfa.GFA, len(chunks))
	for i, c := range chunks {
		parts[i] = c.gfa
	}
	result := Merge(parts...)

	for _, s := range report.Skipped {
		log.Warnw("skipped malformed line", "line", s.Line, "error", s.Err)
	}
	log.Debugw("read gfa",
		"lines", n,
		"chunks", len(chunks),
		"segments", len(result.Segments),
		"links", len(result.Links),
		"containments", len(result.Containments),
		"paths", len(result.Paths),
		"skipped", len(report.Skipped),
	)

	return result, report, nil
}

// parseChunk fills c.gfa from c.lines. In strict mode it stops at the first bad line
func parseChunk(c *chunk, cfg gfa.ParsingConfig, strict bool) {
	c.gfa = gfa.New()
	for i, raw := range c.lines {
		text := strings.TrimRight(raw, "\r\n")
		if text == "" {
			continue
		}

		l, err := gfa.ParseLine(strings.Split(text, "\t"))
		if err != nil {
			lineErr := &LineError{Line: c.first + i, Err: err}
			if strict {
				c.err = lineErr
				return
			}
			c.skipped = append(c.skipped, lineErr)
			continue
		}
		c.gfa.Append(cfg, l)
	}
	c.lines = nil
}

// Merge concatenates the records of parts per kind, in the order given. The
// version is that of the last part with one, as if they were a single file
func Merge(parts ...*gfa.GFA) *gfa.GFA {
	merged := gfa.New()
	for _, p := range parts {
		if p == nil {
			continue
		}
		if p.Version != nil {
			merged.Version = p.Version
		}
		merged.Segments = append(merged.Segments, p.Segments...)
		merged.Links = append(merged.Links, p.Links...)
		merged.Containments = append(merged.Containments, p.Containments...)
		merged.Paths = append(merged.Paths, p.Paths...)
	}
	return merged
}
