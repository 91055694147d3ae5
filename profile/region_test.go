package profile

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		region string
		chrom  string
		start  PosType
		end    PosType
	}{
		{"chr1:100-200", "chr1", 100, 201},
		{"chr1:100-100", "chr1", 100, 101},
		{"chr1:1000", "chr1", 1000, 1001},
		{"chr1", "chr1", 1, posTypeMax - 1},
		{"chrX:1-5", "chrX", 1, 6},
	}
	for _, tt := range tests {
		chrom, start, end, err := ParseRegion(tt.region)
		expect.NoError(t, err)
		expect.EQ(t, chrom, tt.chrom)
		expect.EQ(t, start, tt.start)
		expect.EQ(t, end, tt.end)
	}
}

func TestParseRegionErrors(t *testing.T) {
	for _, region := range []string{
		"",
		":100-200",
		"chr1:",
		"chr1:abc",
		"chr1:0",
		"chr1:0-100",
		"chr1:200-100",
		"chr1:100-",
	} {
		if _, _, _, err := ParseRegion(region); err == nil {
			t.Errorf("ParseRegion(%q): expected error", region)
		}
	}
}

func TestRegionOverlapsHelper(t *testing.T) {
	reg := Region{Chrom: "chr1", Start: 100, End: 200, Name: "R1"}
	expect.True(t, reg.Overlaps("chr1", 150, 250))
	expect.True(t, reg.Overlaps("chr1", 199, 200))
	expect.False(t, reg.Overlaps("chr1", 200, 300))
	expect.False(t, reg.Overlaps("chr1", 50, 100))
	expect.False(t, reg.Overlaps("chr2", 150, 250))
}

func TestAddOutcomeString(t *testing.T) {
	expect.EQ(t, Inserted.String(), "inserted")
	expect.EQ(t, Duplicate.String(), "duplicate")
	expect.EQ(t, Invalid.String(), "invalid")
	expect.EQ(t, AddOutcome(42).String(), "unknown")
}
