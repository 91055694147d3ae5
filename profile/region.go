package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PosType is the genomic coordinate type used throughout this package.
// int32 is enough for any chromosome we care about (BAM has the same limit).
type PosType int32

const posTypeMax = math.MaxInt32

// Region is a named genomic interval.  Start is 1-based and inclusive, End
// is exclusive, so the covered bases are [Start, End).  Name is the region
// ID; it is unique only by convention, several regions may share one.
type Region struct {
	Chrom string
	Start PosType
	End   PosType
	Name  string
}

// Valid reports whether the region geometry is acceptable: a nonempty
// interval with a 1-based start.
func (r *Region) Valid() bool {
	return r.Start >= 1 && r.Start < r.End
}

// Overlaps reports whether the region intersects the half-open query
// interval [start, end) on chrom.
func (r *Region) Overlaps(chrom string, start, end PosType) bool {
	return r.Chrom == chrom && r.Start < end && start < r.End
}

func (r *Region) String() string {
	return fmt.Sprintf("%s:[%d,%d)/%s", r.Chrom, r.Start, r.End, r.Name)
}

// CNVRegion is a Region annotated with allele-specific copy numbers.
// CNAle0 and CNAle1 count the copies of the first and second allele; zero
// means that allele is fully deleted.  Nothing ties the two values together.
type CNVRegion struct {
	Region
	CNAle0 int
	CNAle1 int
}

// AddOutcome is the result of adding a region to a RegionSet.
type AddOutcome int

const (
	// Inserted means the region was stored.
	Inserted AddOutcome = iota
	// Duplicate means a member with the same (chrom, start, end, name) key
	// already exists; the new record was discarded and the set is unchanged.
	// Copy numbers are not part of the key.  This is not an error: adding
	// the same logical region twice is a no-op.
	Duplicate
	// Invalid means the region geometry is bad (start < 1 or start >= end);
	// the set is unchanged.
	Invalid
)

func (o AddOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// ParseRegion parses a query-region string of one of the forms
//   [chrom]:[1-based first pos]-[last pos]
//   [chrom]:[1-based pos]
//   [chrom]
// returning the chromosome name and half-open interval boundaries with the
// same conventions as Region (1-based start, exclusive end).  The interval
// [1, posTypeMax - 1) is returned if there is no positional restriction.
func ParseRegion(region string) (chrom string, start, end PosType, err error) {
	if len(region) == 0 {
		err = fmt.Errorf("profile.ParseRegion: empty region string")
		return
	}
	colonPos := strings.IndexByte(region, ':')
	if colonPos == -1 {
		chrom = region
		start = 1
		end = posTypeMax - 1
		return
	}
	if colonPos == 0 {
		err = fmt.Errorf("profile.ParseRegion: empty chromosome name")
		return
	}
	chrom = region[0:colonPos]
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos1 int64
		if pos1, err = strconv.ParseInt(rangeStr, 10, 32); err != nil {
			return
		}
		if pos1 <= 0 {
			err = fmt.Errorf("profile.ParseRegion: position %v in region string out of range", rangeStr)
			return
		}
		start = PosType(pos1)
		end = PosType(pos1 + 1)
		return
	}
	start1Str := rangeStr[:dashPos]
	endStr := rangeStr[dashPos+1:]
	var start1 int
	if start1, err = strconv.Atoi(start1Str); err != nil {
		return
	}
	if start1 <= 0 {
		err = fmt.Errorf("profile.ParseRegion: position %v in region string out of range", start1Str)
		return
	}
	var last1 int
	if last1, err = strconv.Atoi(endStr); err != nil {
		return
	}
	if last1 < start1 || last1 >= posTypeMax-1 {
		err = fmt.Errorf("profile.ParseRegion: invalid range string %v", rangeStr)
		return
	}
	start = PosType(start1)
	end = PosType(last1 + 1)
	return
}
