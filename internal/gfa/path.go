package gfa

import (
	"fmt"
	"strings"
)

// Step is one oriented segment visit in a path's walk
type Step struct {
	Name   string
	Orient Orientation
}

func (s Step) String() string {
	return s.Name + s.Orient.String()
}

// Path is a "P" line, an ordered walk through segments. A path built without
// NewPath needs at least one step for its line to read back
type Path struct {
	Name     string
	Segments []Step

	// Overlaps are kept verbatim. Their count isn't checked against Segments
	Overlaps []string

	OptionalFields []Field
}

// ParseStep splits a "<name><+|->" token into its name and orientation
func ParseStep(token string) (Step, error) {
	if len(token) < 2 {
		return Step{}, fmt.Errorf("failed to parse path token %q: %w", token, ErrMalformedPathToken)
	}

	name, mark := token[:len(token)-1], token[len(token)-1:]
	o, err := ParseOrientation(mark)
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse path token %q: %w", token, ErrMalformedPathToken)
	}
	return Step{Name: name, Orient: o}, nil
}

// NewPath makes a path from its segment tokens, like "13-", and its overlaps.
// A path visits at least one segment
func NewPath(name string, tokens []string, overlaps []string) (Path, error) {
	if len(tokens) == 0 {
		return Path{}, fmt.Errorf("path %s has no segments: %w", name, ErrMalformedPathToken)
	}

	steps := make([]Step, 0, len(tokens))
	for _, t := range tokens {
		s, err := ParseStep(t)
		if err != nil {
			return Path{}, err
		}
		steps = append(steps, s)
	}

	return Path{
		Name:     name,
		Segments: steps,
		Overlaps: overlaps,
	}, nil
}

func (p Path) String() string {
	steps := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		steps[i] = s.String()
	}

	overlaps := "*"
	if len(p.Overlaps) > 0 {
		overlaps = strings.Join(p.Overlaps, ",")
	}

	var sb strings.Builder
	sb.WriteString(strings.Join([]string{"P", p.Name, strings.Join(steps, ","), overlaps}, "\t"))
	writeFields(&sb, p.OptionalFields)
	return sb.String()
}

func parsePath(fields []string) (Path, error) {
	if len(fields) < 4 {
		return Path{}, missing("P", 4, len(fields))
	}

	var overlaps []string
	if fields[3] != "*" && fields[3] != "" {
		overlaps = strings.Split(fields[3], ",")
	}

	p, err := NewPath(fields[1], strings.Split(fields[2], ","), overlaps)
	if err != nil {
		return Path{}, err
	}

	if p.OptionalFields, err = parseFields(fields[4:]); err != nil {
		return Path{}, err
	}
	return p, nil
}
