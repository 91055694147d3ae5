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
	"bytes"
	"testing"

	"github.com/grailbio/cnv/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOpts(t *testing.T) {
	opts, err := loadOpts("\t")
	require.NoError(t, err)
	assert.Equal(t, byte('\t'), opts.Sep)

	opts, err = loadOpts(",")
	require.NoError(t, err)
	assert.Equal(t, byte(','), opts.Sep)

	_, err = loadOpts("")
	assert.Error(t, err)
	_, err = loadOpts("ab")
	assert.Error(t, err)
}

func TestWriteRegions(t *testing.T) {
	hits := []*profile.CNVRegion{
		{
			Region: profile.Region{Chrom: "chr1", Start: 100, End: 201, Name: "R1"},
			CNAle0: 2,
			CNAle1: 1,
		},
		{
			Region: profile.Region{Chrom: "chr2", Start: 5, End: 6, Name: "R2"},
			CNAle0: 0,
			CNAle1: 3,
		},
	}
	var buf bytes.Buffer
	require.NoError(t, writeRegions(&buf, "cloneA", hits))
	// Internal exclusive ends come out inclusive.
	assert.Equal(t,
		"chr1\t100\t200\tR1\tcloneA\t2\t1\n"+
			"chr2\t5\t5\tR2\tcloneA\t0\t3\n",
		buf.String())
}
