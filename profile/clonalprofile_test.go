package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsolation(t *testing.T) {
	p := NewClonalProfile()
	// Identical coordinates and name under two clones are independent
	// records, not duplicates.
	assert.Equal(t, Inserted, p.Add("chr1", 100, 200, "R1", 2, 1, "cloneA"))
	assert.Equal(t, Inserted, p.Add("chr1", 100, 200, "R1", 0, 3, "cloneB"))

	hitsA := p.Overlaps("chr1", 150, 160, "cloneA")
	require.Len(t, hitsA, 1)
	assert.Equal(t, 2, hitsA[0].CNAle0)
	assert.Equal(t, 1, hitsA[0].CNAle1)

	hitsB := p.ByName("R1", "cloneB")
	require.Len(t, hitsB, 1)
	assert.Equal(t, 0, hitsB[0].CNAle0)
	assert.Equal(t, 3, hitsB[0].CNAle1)

	// A per-clone duplicate is still rejected within its own clone.
	assert.Equal(t, Duplicate, p.Add("chr1", 100, 200, "R1", 5, 5, "cloneA"))
	assert.Equal(t, 1, p.Clone("cloneA").Len())
	assert.Equal(t, 1, p.Clone("cloneB").Len())
}

func TestUnknownClone(t *testing.T) {
	p := NewClonalProfile()
	assert.Equal(t, Inserted, p.Add("chr1", 100, 200, "R1", 1, 1, "cloneA"))

	// An unrecognized clone simply has no CNV calls.
	assert.Empty(t, p.Overlaps("chr1", 100, 200, "cloneX"))
	assert.Empty(t, p.ByName("R1", "cloneX"))
	assert.Nil(t, p.Clone("cloneX"))
	assert.Empty(t, p.ByName("R9", "cloneA"))
}

func TestRejectedAddCreatesNoClone(t *testing.T) {
	p := NewClonalProfile()
	assert.Equal(t, Invalid, p.Add("chr1", 100, 100, "R1", 1, 1, "cloneA"))
	assert.Equal(t, Invalid, p.Add("chr1", 0, 100, "R2", 1, 1, "cloneB"))
	assert.Empty(t, p.CloneIDs())
	assert.Equal(t, 0, p.NumRegions())
}

func TestCloneIDs(t *testing.T) {
	p := NewClonalProfile()
	for _, id := range []string{"c3", "c1", "c10", "c2"} {
		assert.Equal(t, Inserted, p.Add("chr1", 100, 200, "R1", 1, 1, id))
	}
	assert.Equal(t, []string{"c1", "c10", "c2", "c3"}, p.CloneIDs())
	assert.Equal(t, 4, p.NumRegions())
}

func TestExportOrder(t *testing.T) {
	p := NewClonalProfile()
	// Unsorted insertion across clones B and A.
	assert.Equal(t, Inserted, p.Add("chr2", 10, 20, "B2", 1, 1, "B"))
	assert.Equal(t, Inserted, p.Add("chr1", 500, 600, "A2", 1, 1, "A"))
	assert.Equal(t, Inserted, p.Add("chr1", 100, 200, "B1", 1, 1, "B"))
	assert.Equal(t, Inserted, p.Add("chr1", 100, 200, "A1", 1, 1, "A"))

	var got []string
	for _, cr := range p.Export() {
		got = append(got, cr.CloneID+"/"+cr.Reg.Name)
	}
	assert.Equal(t, []string{"A/A1", "A/A2", "B/B1", "B/B2"}, got)
}
