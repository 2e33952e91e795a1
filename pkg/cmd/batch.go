// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/consensys/go-jackrom/pkg/jack"
	"github.com/consensys/go-jackrom/pkg/util/file"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Convert each of the given ROMs into its own class, named after the ROM file
// (e.g. space_invaders.ch8 becomes SpaceInvaders.jack).
func runBatchCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(cmd.OutOrStdout(), "Not enough arguments")
		return
	}
	//
	configureLogging(cmd)
	//
	opts := getConvertOptions(cmd)
	dir := GetString(cmd, "dir")
	jobs := GetInt(cmd, "jobs")
	//
	if err := convertBatch(args, dir, jobs, opts); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// batchItem identifies a single conversion within a batch.
type batchItem struct {
	input  string
	output string
	opts   convertOptions
}

// Convert a set of ROMs into a given directory, using at most the given number
// of concurrent jobs (or unbounded, if this is not positive).  Every ROM gets
// its own class (or function, for go format) named after its file.
func convertBatch(roms []string, dir string, jobs int, opts convertOptions) error {
	var (
		g       errgroup.Group
		items   = make([]batchItem, len(roms))
		outputs = make(map[string]string)
	)
	// Plan everything before touching anything
	for i, r := range roms {
		item := batchItem{r, "", opts}
		item.opts.config.Class = jack.ClassName(file.Uncompressed(r))
		//
		if opts.format == goFormat {
			item.opts.config.Function = fmt.Sprintf("Load%s", item.opts.config.Class)
			item.output = filepath.Join(dir, fmt.Sprintf("%s.go", strings.ToLower(item.opts.config.Class)))
		} else {
			item.output = filepath.Join(dir, fmt.Sprintf("%s.jack", item.opts.config.Class))
		}
		//
		if err := item.opts.validate(); err != nil {
			return fmt.Errorf("%s: %w", r, err)
		} else if other, ok := outputs[item.output]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", other, r, item.output)
		}
		//
		outputs[item.output] = r
		items[i] = item
	}
	//
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	//
	if jobs < 1 {
		jobs = -1
	}
	//
	g.SetLimit(jobs)
	//
	for _, item := range items {
		g.Go(func() error {
			_, err := convertRom(item.input, item.output, item.opts)
			return err
		})
	}
	//
	if err := g.Wait(); err != nil {
		return err
	}
	//
	log.Debugf("Converted %d ROM(s) into %s", len(roms), dir)
	//
	return nil
}

//nolint:errcheck
func init() {
	rootCmd.Flags().Bool("batch", false, "convert every ROM given into its own class within --dir.")
	rootCmd.Flags().StringP("dir", "d", ".", "specify output directory (batch only).")
	rootCmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "specify maximum number of concurrent conversions (batch only).")
}
