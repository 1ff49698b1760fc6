package io

import (
	"bytes"
	"context"
	"errors"
	"path"
	"reflect"
	"strings"
	"testing"

	"github.com/jjtimmons/gfa/internal/gfa"
	"go.uber.org/zap"
)

var (
	example   = path.Join("..", "..", "test", "example.gfa")
	malformed = path.Join("..", "..", "test", "malformed.gfa")
)

func testOptions(workers, chunkLines int, strict bool) Options {
	return Options{
		Parse:      gfa.ParseAll(),
		Strict:     strict,
		Workers:    workers,
		ChunkLines: chunkLines,
		Logger:     zap.NewNop().Sugar(),
	}
}

// Test reading of the example GFA file
func Test_ReadFile(t *testing.T) {
	g, report, err := ReadFile(context.Background(), example, testOptions(1, 100, true))
	if err != nil {
		t.Fatal(err)
	}

	if g.Version == nil || *g.Version != "1.0" {
		t.Errorf("failed to read the version, got %v", g.Version)
	}
	if len(g.Segments) != 4 || len(g.Links) != 3 || len(g.Containments) != 1 || len(g.Paths) != 1 {
		t.Errorf("failed to load records: %d segments, %d links, %d containments, %d paths",
			len(g.Segments), len(g.Links), len(g.Containments), len(g.Paths))
	}
	if report.Lines != 11 || len(report.Skipped) != 0 {
		t.Errorf("report = %+v", report)
	}

	// segments stay in file order even though a link came before the last one
	if g.Segments[3].Name != "14" {
		t.Errorf("last segment = %s, want 14", g.Segments[3].Name)
	}

	p := g.Paths[0]
	wantSteps := []gfa.Step{{Name: "11", Orient: gfa.Forward}, {Name: "12", Orient: gfa.Backward}, {Name: "13", Orient: gfa.Forward}}
	if !reflect.DeepEqual(p.Segments, wantSteps) || !reflect.DeepEqual(p.Overlaps, []string{"4M", "5M"}) {
		t.Errorf("path = %v", p)
	}
}

func Test_Read_workers(t *testing.T) {
	want, _, err := ReadFile(context.Background(), example, testOptions(1, 1000, true))
	if err != nil {
		t.Fatal(err)
	}

	type args struct {
		workers    int
		chunkLines int
	}
	tests := []struct {
		name string
		args args
	}{
		{"one line chunks", args{4, 1}},
		{"uneven chunks", args{2, 3}},
		{"more workers than chunks", args{16, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := ReadFile(context.Background(), example, testOptions(tt.args.workers, tt.args.chunkLines, true))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Read() with %d workers = %v, want %v", tt.args.workers, got, want)
			}
		})
	}
}

func Test_Read_config(t *testing.T) {
	opts := testOptions(2, 2, true)
	opts.Parse = gfa.ParsingConfig{Segments: true}

	g, _, err := ReadFile(context.Background(), example, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Segments) != 4 || g.Len() != 4 || g.Version == nil {
		t.Errorf("segments only read gave %d records", g.Len())
	}
}

func Test_Read_strict(t *testing.T) {
	for _, workers := range []int{1, 3} {
		_, _, err := ReadFile(context.Background(), malformed, testOptions(workers, 2, true))

		var lineErr *LineError
		if !errors.As(err, &lineErr) {
			t.Fatalf("Read() error = %v, want a LineError", err)
		}
		if lineErr.Line != 3 || !errors.Is(err, gfa.ErrInvalidOrientation) {
			t.Errorf("Read() with %d workers failed at line %d (%v), want line 3", workers, lineErr.Line, err)
		}
	}
}

func Test_Read_lenient(t *testing.T) {
	g, report, err := ReadFile(context.Background(), malformed, testOptions(2, 2, false))
	if err != nil {
		t.Fatal(err)
	}

	var lines []int
	for _, s := range report.Skipped {
		lines = append(lines, s.Line)
	}
	if !reflect.DeepEqual(lines, []int{3, 6, 7}) {
		t.Errorf("skipped lines %v, want [3 6 7]", lines)
	}

	if len(g.Segments) != 3 || len(g.Links) != 0 || len(g.Paths) != 0 {
		t.Errorf("read %d segments, %d links, %d paths", len(g.Segments), len(g.Links), len(g.Paths))
	}
	if report.Lines != 8 {
		t.Errorf("report.Lines = %d, want 8", report.Lines)
	}
}

func Test_Read_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := Read(ctx, strings.NewReader("S\t1\tA\n"), testOptions(1, 1, true)); !errors.Is(err, context.Canceled) {
		t.Errorf("Read() error = %v, want context.Canceled", err)
	}
}

func Test_Read_noTrailingNewline(t *testing.T) {
	g, _, err := Read(context.Background(), strings.NewReader("S\t1\tA\r\nS\t2\tC"), testOptions(1, 10, true))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Segments) != 2 || g.Segments[0].Sequence != "A" || g.Segments[1].Sequence != "C" {
		t.Errorf("segments = %v", g.Segments)
	}
}

func Test_Write(t *testing.T) {
	g, _, err := ReadFile(context.Background(), example, testOptions(1, 100, true))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != "H\tVN:Z:1.0" || len(lines) != 10 {
		t.Errorf("wrote %d lines, starting with %q", len(lines), lines[0])
	}
	if lines[3] != "S\t13\tCTTGATT\tSH:H:0a3f\tUR:Z:http://example.org/13.fa" {
		t.Errorf("wrote segment 13 as %q", lines[3])
	}

	// what was written reads back to the same collection
	back, _, err := Read(context.Background(), &buf, testOptions(1, 100, true))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, g) {
		t.Errorf("read back %v, want %v", back, g)
	}
}

func Test_Merge(t *testing.T) {
	v1, v2 := "1.0", "2.0"
	a := &gfa.GFA{Version: &v1, Segments: []gfa.Segment{gfa.NewSegment("a", "")}}
	b := &gfa.GFA{Segments: []gfa.Segment{gfa.NewSegment("b", "")}}
	c := &gfa.GFA{Version: &v2, Links: []gfa.Link{gfa.NewLink("a", gfa.Forward, "b", gfa.Forward, "*")}}

	got := Merge(a, nil, b, c)
	if got.Version == nil || *got.Version != "2.0" {
		t.Errorf("Merge() version = %v, want the last one", got.Version)
	}
	if len(got.Segments) != 2 || got.Segments[0].Name != "a" || got.Segments[1].Name != "b" || len(got.Links) != 1 {
		t.Errorf("Merge() = %v", got)
	}
}
