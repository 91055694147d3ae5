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

/*
bio-cnv-profile inspects clonal CNV profile files: headerless TSVs with one
CNV region per row (chrom, start, end, region ID, allele copy numbers, clone
ID; coordinates 1-based and inclusive).

Sample usage:

List the clones in a profile:
bio-cnv-profile clones profile.tsv

Show the CNV calls of clone c2 overlapping a region:
bio-cnv-profile query -clone c2 -region chr1:1000000-2000000 profile.tsv

Show the CNV calls of clone c2 with a given region ID:
bio-cnv-profile query -clone c2 -name gain_chr1_q21 profile.tsv

Rewrite a profile in canonical sorted order, dropping repeated rows:
bio-cnv-profile export profile.tsv profile.sorted.tsv.gz
*/
package main
