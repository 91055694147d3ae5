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
	"log"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdQuery() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "query",
		Short:    "Show the CNV calls of one clone for a query region",
		ArgsName: "path",
	}
	flags := queryFlags{
		clone: cmd.Flags.String("clone", "", "Clone ID to query (required)"),
		region: cmd.Flags.String("region", "", `Query region, format <chrom>:<1-based first pos>-<last pos>,
<chrom>:<1-based pos>, or just <chrom>.  All calls overlapping the region are
shown.  Exactly one of -region and -name is required.`),
		name: cmd.Flags.String("name", "", "Region ID to look up (exact match)"),
		sep:  cmd.Flags.String("sep", "\t", "Input field delimiter, a single character"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("query takes one pathname argument, but got %v", argv)
		}
		return query(flags, argv[0])
	})
	return cmd
}

func newCmdClones() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "clones",
		Short:    "List the clone IDs present in a profile",
		ArgsName: "path",
	}
	sepFlag := cmd.Flags.String("sep", "\t", "Input field delimiter, a single character")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("clones takes one pathname argument, but got %v", argv)
		}
		return clones(*sepFlag, argv[0])
	})
	return cmd
}

func newCmdStats() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "stats",
		Short:    "Show per-clone CNV region counts",
		ArgsName: "path",
	}
	sepFlag := cmd.Flags.String("sep", "\t", "Input field delimiter, a single character")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("stats takes one pathname argument, but got %v", argv)
		}
		return stats(*sepFlag, argv[0])
	})
	return cmd
}

func newCmdExport() *cmdline.Command {
	cmd := &cmdline.Command{
		Name: "export",
		Short: `Rewrite a profile in canonical order.
Rows are sorted clone-major (clone IDs ascending, then chromosome and start)
and exact repeated rows are dropped.  An output path ending in .gz is
gzip-compressed.`,
		ArgsName: "srcpath destpath",
	}
	sepFlag := cmd.Flags.String("sep", "\t", "Input field delimiter, a single character")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("export takes srcpath destpath, but got %v", argv)
		}
		return export(*sepFlag, argv[0], argv[1])
	})
	return cmd
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-cnv-profile",
			Short:    "Tools for working with clonal CNV profile files",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdQuery(),
				newCmdClones(),
				newCmdStats(),
				newCmdExport(),
			},
		})
}
