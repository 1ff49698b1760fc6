// Package gfa is the record and optional field model of the Graphical Fragment
// Assembly format: headers, segments, links, containments and paths, with the
// canonical text encoding of each.
//
// Records are plain values. Every decode returns an error wrapping one of the
// package's sentinel errors; rendering never fails.
package gfa

// ParsingConfig selects which record kinds are kept while a file is read
type ParsingConfig struct {
	Segments     bool `mapstructure:"segments" json:"segments" yaml:"segments"`
	Links        bool `mapstructure:"links" json:"links" yaml:"links"`
	Containments bool `mapstructure:"containments" json:"containments" yaml:"containments"`
	Paths        bool `mapstructure:"paths" json:"paths" yaml:"paths"`
}

// ParseNone keeps no records, only the version
func ParseNone() ParsingConfig {
	return ParsingConfig{}
}

// ParseAll keeps every record
func ParseAll() ParsingConfig {
	return ParsingConfig{
		Segments:     true,
		Links:        true,
		Containments: true,
		Paths:        true,
	}
}

// Wants reports whether lines of kind k are kept. Headers always are, comments never
func (c ParsingConfig) Wants(k Kind) bool {
	switch k {
	case KindHeader:
		return true
	case KindSegment:
		return c.Segments
	case KindLink:
		return c.Links
	case KindContainment:
		return c.Containments
	case KindPath:
		return c.Paths
	default:
		return false
	}
}

// GFA holds the results of parsing a file; it's not a graph. Records are
// kept in file order within each kind
type GFA struct {
	Version      *string
	Segments     []Segment
	Links        []Link
	Containments []Containment
	Paths        []Path
}

// New returns an empty collection
func New() *GFA {
	return &GFA{}
}

// Append adds a parsed line. A header with a version replaces the current one
// (the last one wins) and a header without one leaves it in place. Records are
// appended if cfg keeps their kind and comments are dropped
func (g *GFA) Append(cfg ParsingConfig, l Line) {
	if !cfg.Wants(l.Kind()) {
		return
	}

	switch r := l.(type) {
	case Header:
		if r.Version != nil {
			v := *r.Version
			g.Version = &v
		}
	case Segment:
		g.Segments = append(g.Segments, r)
	case Link:
		g.Links = append(g.Links, r)
	case Containment:
		g.Containments = append(g.Containments, r)
	case Path:
		g.Paths = append(g.Paths, r)
	}
}

// Len is the number of records held, the header excluded
func (g *GFA) Len() int {
	return len(g.Segments) + len(g.Links) + len(g.Containments) + len(g.Paths)
}

// Lines returns the collection as lines for writing: the header if there's
// a version, then segments, links, containments and paths
func (g *GFA) Lines() []Line {
	lines := make([]Line, 0, g.Len()+1)
	if g.Version != nil {
		lines = append(lines, Header{Version: g.Version})
	}
	for _, s := range g.Segments {
		lines = append(lines, s)
	}
	for _, l := range g.Links {
		lines = append(lines, l)
	}
	for _, c := range g.Containments {
		lines = append(lines, c)
	}
	for _, p := range g.Paths {
		lines = append(lines, p)
	}
	return lines
}
