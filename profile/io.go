package profile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Record is one row of the clonal CNV profile table.  Unlike Region, both
// Start and End are 1-based and inclusive, matching the text format
// exchanged with other tools; AddRecord and ExportRecords perform the
// translation to/from the internal exclusive end.
type Record struct {
	Chrom   string
	Start   PosType
	End     PosType
	Name    string
	CNAle0  int
	CNAle1  int
	CloneID string
}

// Input rows are <chrom> <start> <end> <region> <cn_ale0> <cn_ale1> <clone>.
const numRecordFields = 7

// LoadOpts defines behavior of this package's profile-loading function(s).
type LoadOpts struct {
	// Sep is the input field delimiter.  Tab when zero.
	Sep byte
}

// AddRecord ingests one external record, converting its inclusive end to
// the internal exclusive bound.
func (p *ClonalProfile) AddRecord(rec Record) AddOutcome {
	return p.Add(rec.Chrom, rec.Start, rec.End+1, rec.Name, rec.CNAle0, rec.CNAle1, rec.CloneID)
}

// ExportRecords flattens the profile into Records in canonical order
// (clone-major, clone IDs ascending, regions sorted by chrom then start),
// with ends reconverted to the inclusive convention.
func (p *ClonalProfile) ExportRecords() []Record {
	all := p.Export()
	recs := make([]Record, 0, len(all))
	for _, cr := range all {
		recs = append(recs, Record{
			Chrom:   cr.Reg.Chrom,
			Start:   cr.Reg.Start,
			End:     cr.Reg.End - 1,
			Name:    cr.Reg.Name,
			CNAle0:  cr.Reg.CNAle0,
			CNAle1:  cr.Reg.CNAle1,
			CloneID: cr.CloneID,
		})
	}
	return recs
}

func parseRecord(curLine string, sep byte, lineIdx int) (rec Record, err error) {
	fields := strings.Split(curLine, string(sep))
	if len(fields) != numRecordFields {
		err = fmt.Errorf("profile.ReadProfile: line %d has %d fields, expected %d", lineIdx, len(fields), numRecordFields)
		return
	}
	rec.Chrom = fields[0]
	var parsedStart, parsedEnd int64
	if parsedStart, err = strconv.ParseInt(fields[1], 10, 32); err != nil {
		err = fmt.Errorf("profile.ReadProfile: bad start %q on line %d", fields[1], lineIdx)
		return
	}
	if parsedEnd, err = strconv.ParseInt(fields[2], 10, 32); err != nil || parsedEnd >= posTypeMax {
		// posTypeMax is excluded so the +1 inclusive->exclusive conversion
		// cannot overflow.
		err = fmt.Errorf("profile.ReadProfile: bad end %q on line %d", fields[2], lineIdx)
		return
	}
	rec.Start = PosType(parsedStart)
	rec.End = PosType(parsedEnd)
	rec.Name = fields[3]
	if rec.CNAle0, err = strconv.Atoi(fields[4]); err != nil || rec.CNAle0 < 0 {
		err = fmt.Errorf("profile.ReadProfile: bad cn_ale0 %q on line %d", fields[4], lineIdx)
		return
	}
	if rec.CNAle1, err = strconv.Atoi(fields[5]); err != nil || rec.CNAle1 < 0 {
		err = fmt.Errorf("profile.ReadProfile: bad cn_ale1 %q on line %d", fields[5], lineIdx)
		return
	}
	rec.CloneID = fields[6]
	return
}

// ReadProfile loads a clonal CNV profile from a headerless delimited text
// stream with rows in Record input order.  The load is all-or-nothing: any
// malformed row or invalid region geometry discards the partial profile and
// returns an error naming the line, so a caller can never mistake a
// half-loaded profile for a valid one.  Duplicate rows are skipped.
func ReadProfile(reader io.Reader, opts LoadOpts) (*ClonalProfile, error) {
	sep := opts.Sep
	if sep == 0 {
		sep = '\t'
	}
	p := NewClonalProfile()
	scanner := bufio.NewScanner(reader)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := strings.TrimRight(scanner.Text(), "\r")
		if len(curLine) == 0 {
			continue
		}
		rec, err := parseRecord(curLine, sep, lineIdx)
		if err != nil {
			return nil, err
		}
		switch p.AddRecord(rec) {
		case Invalid:
			return nil, fmt.Errorf("profile.ReadProfile: invalid region %s:%d-%d on line %d", rec.Chrom, rec.Start, rec.End, lineIdx)
		case Duplicate:
			log.Debug.Printf("profile.ReadProfile: line %d: duplicate region %s in clone %s, skipped", lineIdx, rec.Name, rec.CloneID)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read CNV profile data")
	}
	return p, nil
}

// LoadProfile is a wrapper for ReadProfile that takes a path instead of an
// io.Reader.  Gzipped input is decompressed transparently.
func LoadProfile(ctx context.Context, path string, opts LoadOpts) (p *ClonalProfile, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, infile, &err)
	reader, _ := compress.NewReader(infile.Reader(ctx))
	defer func() {
		if e := reader.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return ReadProfile(reader, opts)
}

// WriteProfile writes the profile as headerless TSV, one record per line
// with fields <chrom> <start> <end> <name> <clone> <cn_ale0> <cn_ale1>,
// coordinates 1-based inclusive.  The row order is the canonical export
// order, so output is deterministic.
func WriteProfile(w io.Writer, p *ClonalProfile) error {
	tsvw := tsv.NewWriter(w)
	for _, rec := range p.ExportRecords() {
		tsvw.WriteString(rec.Chrom)
		tsvw.WriteInt64(int64(rec.Start))
		tsvw.WriteInt64(int64(rec.End))
		tsvw.WriteString(rec.Name)
		tsvw.WriteString(rec.CloneID)
		tsvw.WriteInt64(int64(rec.CNAle0))
		tsvw.WriteInt64(int64(rec.CNAle1))
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

// SaveProfile is a wrapper for WriteProfile that takes a path instead of an
// io.Writer, gzip-compressing when the path ends in .gz.
func SaveProfile(ctx context.Context, path string, p *ClonalProfile) (err error) {
	var outfile file.File
	if outfile, err = file.Create(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, outfile, &err)
	w := io.Writer(outfile.Writer(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		gzw := gzip.NewWriter(w)
		defer func() {
			if e := gzw.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = gzw
	}
	return WriteProfile(w, p)
}
