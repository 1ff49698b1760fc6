package gfa

// SegmentIndex resolves segment names to segments of a collection. Records
// refer to each other by name only, so this is how links and paths are followed
type SegmentIndex struct {
	segments []Segment
	byName   map[string]int
}

// NewSegmentIndex indexes the segments of g. If a name is repeated the first segment wins
func NewSegmentIndex(g *GFA) *SegmentIndex {
	idx := &SegmentIndex{
		segments: g.Segments,
		byName:   make(map[string]int, len(g.Segments)),
	}
	for i, s := range g.Segments {
		if _, seen := idx.byName[s.Name]; !seen {
			idx.byName[s.Name] = i
		}
	}
	return idx
}

// Lookup returns the segment with name
func (idx *SegmentIndex) Lookup(name string) (Segment, bool) {
	i, ok := idx.byName[name]
	if !ok {
		return Segment{}, false
	}
	return idx.segments[i], true
}

// Len is the number of distinct segment names
func (idx *SegmentIndex) Len() int {
	return len(idx.byName)
}

// Missing lists the segment names referenced by links, containments and paths
// of g that aren't in the index, in order of first reference
func (idx *SegmentIndex) Missing(g *GFA) []string {
	var missing []string
	seen := make(map[string]bool)
	check := func(name string) {
		if _, ok := idx.byName[name]; ok || seen[name] {
			return
		}
		seen[name] = true
		missing = append(missing, name)
	}

	for _, l := range g.Links {
		check(l.From)
		check(l.To)
	}
	for _, c := range g.Containments {
		check(c.Container)
		check(c.Contained)
	}
	for _, p := range g.Paths {
		for _, s := range p.Segments {
			check(s.Name)
		}
	}
	return missing
}
