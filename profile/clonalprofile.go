package profile

import "sort"

// ClonalProfile maps clone IDs to their CNV region sets.  A clone's set is
// created the first time a record referencing that clone is added, and is
// never removed.  Sets are owned exclusively: identical coordinates added
// under two clones produce two independent records.
//
// The usual lifecycle is one bulk construction pass (ReadProfile) followed
// by read-only queries from the simulation; like RegionSet, a fully built
// ClonalProfile may be shared between concurrent readers.
type ClonalProfile struct {
	clones map[string]*RegionSet
}

// NewClonalProfile returns an empty profile with no clones.
func NewClonalProfile() *ClonalProfile {
	return &ClonalProfile{clones: make(map[string]*RegionSet)}
}

// Add stores one CNV region under cloneID, creating the clone's set if
// this is its first record.  start is 1-based inclusive and end exclusive,
// as in Region.  The outcome semantics are those of RegionSet.Add.
// Geometry is checked before the clone lookup, so a rejected record never
// creates a clone entry.
func (p *ClonalProfile) Add(chrom string, start, end PosType, name string, cnAle0, cnAle1 int, cloneID string) AddOutcome {
	reg := &CNVRegion{
		Region: Region{Chrom: chrom, Start: start, End: end, Name: name},
		CNAle0: cnAle0,
		CNAle1: cnAle1,
	}
	if !reg.Valid() {
		return Invalid
	}
	set := p.clones[cloneID]
	if set == nil {
		set = NewRegionSet()
		p.clones[cloneID] = set
	}
	return set.Add(reg)
}

// Overlaps returns the CNV regions of clone cloneID intersecting the
// half-open interval [start, end) on chrom.  An unknown cloneID yields nil:
// a clone without CNV calls is a valid state, not an error.
func (p *ClonalProfile) Overlaps(chrom string, start, end PosType, cloneID string) []*CNVRegion {
	set := p.clones[cloneID]
	if set == nil {
		return nil
	}
	return set.Overlaps(chrom, start, end)
}

// ByName returns the regions of clone cloneID whose ID equals name.
// Unknown cloneID yields nil, as for Overlaps.
func (p *ClonalProfile) ByName(name, cloneID string) []*CNVRegion {
	set := p.clones[cloneID]
	if set == nil {
		return nil
	}
	return set.ByName(name)
}

// Clone returns the region set of cloneID, or nil if the clone is unknown.
func (p *ClonalProfile) Clone(cloneID string) *RegionSet {
	return p.clones[cloneID]
}

// CloneIDs returns all clone IDs in ascending order.
func (p *ClonalProfile) CloneIDs() []string {
	ids := make([]string, 0, len(p.clones))
	for id := range p.clones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NumRegions returns the total number of regions across all clones.
func (p *ClonalProfile) NumRegions() int {
	n := 0
	for _, set := range p.clones {
		n += set.Len()
	}
	return n
}

// CloneRegion is one entry of a bulk export: a region together with the
// clone that owns it.
type CloneRegion struct {
	CloneID string
	Reg     *CNVRegion
}

// Export dumps the whole profile in its canonical order: clone-major with
// clone IDs ascending, each clone's regions in AllSorted() order.  This is
// the form serialization consumes, so the ordering is deterministic.
func (p *ClonalProfile) Export() []CloneRegion {
	out := make([]CloneRegion, 0, p.NumRegions())
	for _, cloneID := range p.CloneIDs() {
		for _, reg := range p.clones[cloneID].AllSorted() {
			out = append(out, CloneRegion{CloneID: cloneID, Reg: reg})
		}
	}
	return out
}
