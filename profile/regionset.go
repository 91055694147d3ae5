package profile

import (
	"sort"

	"github.com/biogo/store/interval"
)

// regionKey is the duplicate-rejection identity of a set member.  Two
// records with the same key but different copy numbers are still considered
// the same region; the first one wins.
type regionKey struct {
	chrom string
	start PosType
	end   PosType
	name  string
}

// treeEntry adapts a stored region to biogo's interval-tree interface.
type treeEntry struct {
	id  uintptr
	reg *CNVRegion
}

func (e treeEntry) Overlap(b interval.IntRange) bool {
	// Half-open interval indexing.
	return int(e.reg.End) > b.Start && int(e.reg.Start) < b.End
}

func (e treeEntry) ID() uintptr { return e.id }

func (e treeEntry) Range() interval.IntRange {
	return interval.IntRange{Start: int(e.reg.Start), End: int(e.reg.End)}
}

// treeQuery is a payload-free query interval for tree lookups.
type treeQuery struct {
	start, end PosType
}

func (q treeQuery) Overlap(b interval.IntRange) bool {
	return int(q.end) > b.Start && int(q.start) < b.End
}

func (q treeQuery) ID() uintptr { return 0 }

func (q treeQuery) Range() interval.IntRange {
	return interval.IntRange{Start: int(q.start), End: int(q.end)}
}

// RegionSet holds the CNV regions of a single clone.  It rejects exact
// duplicates (same chrom/start/end/name) and answers interval-overlap and
// region-ID queries.  Regions are added one by one and never removed.
//
// A RegionSet is not safe for concurrent mutation; once fully built it may
// be shared freely between readers, since queries do not mutate it.
type RegionSet struct {
	members []*CNVRegion
	keys    map[regionKey]struct{}
	names   map[string][]*CNVRegion
	// chroms maps chromosome name -> interval tree over that chromosome's
	// members, so an overlap query never scans other chromosomes.
	chroms map[string]*interval.IntTree
	nextID uintptr
}

// NewRegionSet returns an empty set.
func NewRegionSet() *RegionSet {
	return &RegionSet{
		keys:   make(map[regionKey]struct{}),
		names:  make(map[string][]*CNVRegion),
		chroms: make(map[string]*interval.IntTree),
	}
}

// Len returns the number of stored regions.
func (s *RegionSet) Len() int {
	return len(s.members)
}

// Add stores reg in the set.  It returns Invalid for bad geometry and
// Duplicate when an identical (chrom, start, end, name) member already
// exists; in both cases the set is left exactly as it was.  The set keeps
// the pointer, so the caller must not modify reg afterwards.
func (s *RegionSet) Add(reg *CNVRegion) AddOutcome {
	if !reg.Valid() {
		return Invalid
	}
	key := regionKey{chrom: reg.Chrom, start: reg.Start, end: reg.End, name: reg.Name}
	if _, found := s.keys[key]; found {
		return Duplicate
	}
	tree := s.chroms[reg.Chrom]
	if tree == nil {
		tree = &interval.IntTree{}
		s.chroms[reg.Chrom] = tree
	}
	if err := tree.Insert(treeEntry{id: s.nextID, reg: reg}, false); err != nil {
		// Geometry was validated above, so the tree cannot reject the range.
		panic(err)
	}
	s.nextID++
	s.keys[key] = struct{}{}
	s.members = append(s.members, reg)
	s.names[reg.Name] = append(s.names[reg.Name], reg)
	return Inserted
}

// Overlaps returns every member whose half-open interval intersects
// [start, end) on chrom.  The result is nil when nothing overlaps, the
// chromosome is absent, or the query interval is empty.  Result order is
// unspecified but stable for a given set state.
func (s *RegionSet) Overlaps(chrom string, start, end PosType) []*CNVRegion {
	if end <= start {
		return nil
	}
	tree := s.chroms[chrom]
	if tree == nil {
		return nil
	}
	var hits []*CNVRegion
	for _, iv := range tree.Get(treeQuery{start: start, end: end}) {
		hits = append(hits, iv.(treeEntry).reg)
	}
	return hits
}

// ByName returns all members whose Name equals name exactly.  nil when
// there is no match.
func (s *RegionSet) ByName(name string) []*CNVRegion {
	return s.names[name]
}

// AllSorted returns every member ordered by (chrom, start) ascending.
// Chromosomes sort lexically on the raw name ("chr10" < "chr2"); this
// ordering feeds file export and must stay put.  Members with equal
// (chrom, start) keep insertion order.
func (s *RegionSet) AllSorted() []*CNVRegion {
	sorted := make([]*CNVRegion, len(s.members))
	copy(sorted, s.members)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Chrom != sorted[j].Chrom {
			return sorted[i].Chrom < sorted[j].Chrom
		}
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}
