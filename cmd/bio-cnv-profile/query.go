// Copyright 2019 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/cnv/profile"
)

type queryFlags struct {
	clone  *string
	region *string
	name   *string
	sep    *string
}

func loadOpts(sep string) (profile.LoadOpts, error) {
	if len(sep) != 1 {
		return profile.LoadOpts{}, fmt.Errorf("-sep must be a single character, got %q", sep)
	}
	return profile.LoadOpts{Sep: sep[0]}, nil
}

// writeRegions prints hits of one clone in the profile TSV record layout.
func writeRegions(w io.Writer, cloneID string, hits []*profile.CNVRegion) error {
	tsvw := tsv.NewWriter(w)
	for _, reg := range hits {
		tsvw.WriteString(reg.Chrom)
		tsvw.WriteInt64(int64(reg.Start))
		tsvw.WriteInt64(int64(reg.End - 1)) // inclusive in text
		tsvw.WriteString(reg.Name)
		tsvw.WriteString(cloneID)
		tsvw.WriteInt64(int64(reg.CNAle0))
		tsvw.WriteInt64(int64(reg.CNAle1))
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

func query(flags queryFlags, path string) error {
	if *flags.clone == "" {
		return fmt.Errorf("-clone is required")
	}
	if (*flags.region == "") == (*flags.name == "") {
		return fmt.Errorf("exactly one of -region and -name must be given")
	}
	opts, err := loadOpts(*flags.sep)
	if err != nil {
		return err
	}
	ctx := vcontext.Background()
	p, err := profile.LoadProfile(ctx, path, opts)
	if err != nil {
		return err
	}
	var hits []*profile.CNVRegion
	if *flags.region != "" {
		chrom, start, end, err := profile.ParseRegion(*flags.region)
		if err != nil {
			return err
		}
		hits = p.Overlaps(chrom, start, end, *flags.clone)
	} else {
		hits = p.ByName(*flags.name, *flags.clone)
	}
	return writeRegions(os.Stdout, *flags.clone, hits)
}

func clones(sep, path string) error {
	opts, err := loadOpts(sep)
	if err != nil {
		return err
	}
	ctx := vcontext.Background()
	p, err := profile.LoadProfile(ctx, path, opts)
	if err != nil {
		return err
	}
	for _, id := range p.CloneIDs() {
		fmt.Println(id)
	}
	return nil
}

func stats(sep, path string) error {
	opts, err := loadOpts(sep)
	if err != nil {
		return err
	}
	ctx := vcontext.Background()
	p, err := profile.LoadProfile(ctx, path, opts)
	if err != nil {
		return err
	}
	tsvw := tsv.NewWriter(os.Stdout)
	for _, id := range p.CloneIDs() {
		tsvw.WriteString(id)
		tsvw.WriteInt64(int64(p.Clone(id).Len()))
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

func export(sep, srcPath, destPath string) error {
	opts, err := loadOpts(sep)
	if err != nil {
		return err
	}
	ctx := vcontext.Background()
	p, err := profile.LoadProfile(ctx, srcPath, opts)
	if err != nil {
		return err
	}
	return profile.SaveProfile(ctx, destPath, p)
}
