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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/consensys/go-jackrom/pkg/golang"
	"github.com/consensys/go-jackrom/pkg/jack"
	"github.com/consensys/go-jackrom/pkg/rom"
	"github.com/consensys/go-jackrom/pkg/util"
	"github.com/consensys/go-jackrom/pkg/util/collection/iter"
	"github.com/consensys/go-jackrom/pkg/util/file"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	jackFormat = "jack"
	goFormat   = "go"
)

// convertOptions captures everything needed to convert a single ROM, other
// than its input and output files.
type convertOptions struct {
	// Shape of the generated loader
	config jack.Config
	// Output format (jack or go)
	format string
	// Package name, for the go format.
	pkgname string
	// Whether to fail (rather than warn) when a ROM does not fit in memory.
	strict bool
}

func (p *convertOptions) validate() error {
	if p.format != jackFormat && p.format != goFormat {
		return fmt.Errorf("unknown output format \"%s\"", p.format)
	}
	//
	return p.config.Validate()
}

func runConvertCmd(cmd *cobra.Command, args []string) {
	// Sanity check a ROM was given
	if len(args) < 1 {
		fmt.Fprintln(cmd.OutOrStdout(), "Not enough arguments")
		return
	}
	//
	configureLogging(cmd)
	//
	opts := getConvertOptions(cmd)
	opts.config.Class = GetString(cmd, "class")
	output := GetString(cmd, "output")
	// Go sources are conventionally lowercase
	if opts.format == goFormat && !cmd.Flags().Changed("output") {
		output = "rom.go"
	}
	//
	if len(args) > 1 {
		log.Warnf("ignoring %d additional argument(s)", len(args)-1)
	}
	//
	if err := opts.validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	} else if _, err := convertRom(args[0], output, opts); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func getConvertOptions(cmd *cobra.Command) convertOptions {
	config := jack.DefaultConfig()
	config.Function = GetString(cmd, "function")
	config.Parameter = GetString(cmd, "param")
	config.Base = GetUint(cmd, "base")
	//
	return convertOptions{
		config:  config,
		format:  GetString(cmd, "format"),
		pkgname: GetString(cmd, "package"),
		strict:  GetFlag(cmd, "strict"),
	}
}

// Convert a given ROM file into a loader written to a given output file (or
// stdout, if this is "-").  The output is only replaced once conversion has
// succeeded.  This returns the number of bytes converted.
func convertRom(input string, output string, opts convertOptions) (uint, error) {
	stats := util.NewPerfStats()
	// Open ROM
	name, reader, err := file.OpenAndUncompress(input)
	if err != nil {
		return 0, err
	}
	//
	defer reader.Close()
	//
	log.Debugf("converting %s (%s) into %s", name, opts.format, output)
	//
	var n uint
	//
	switch opts.format {
	case goFormat:
		n, err = writeGoLoader(name, output, reader, opts)
	default:
		n, err = writeOutput(output, func(w io.Writer) (uint, error) {
			n, err := opts.config.Write(w, iter.NewReaderEnumerator(reader))
			if err == nil {
				err = checkFits(name, n, opts)
			}
			//
			return n, err
		})
	}
	// Check for errors
	if err != nil {
		return n, err
	}
	//
	stats.Log(fmt.Sprintf("Converting %s", name), n)
	//
	if output != "-" {
		log.Debugf("Wrote %s (%d bytes)", output, n)
	}
	//
	return n, nil
}

// Generate a Go loader.  Since this is rendered from a template, the entire ROM
// must be read up front.
func writeGoLoader(name string, output string, reader io.Reader, opts convertOptions) (uint, error) {
	data, err := io.ReadAll(reader)
	//
	if err != nil {
		return 0, err
	} else if err = checkFits(name, uint(len(data)), opts); err != nil {
		return 0, err
	}
	// Generate into a scratch directory
	dir, err := os.MkdirTemp("", "jackrom")
	if err != nil {
		return 0, err
	}
	//
	defer os.RemoveAll(dir)
	//
	scratch := filepath.Join(dir, filepath.Base(output))
	//
	if err := golang.Generate(scratch, opts.pkgname, opts.config, data); err != nil {
		return 0, err
	}
	//
	source, err := os.ReadFile(scratch)
	if err != nil {
		return 0, err
	}
	//
	return writeOutput(output, func(w io.Writer) (uint, error) {
		_, err := w.Write(source)
		return uint(len(data)), err
	})
}

// Check whether a ROM of n bytes fits within memory.  If not, this is either an
// error (in strict mode) or a warning.
func checkFits(name string, n uint, opts convertOptions) error {
	if rom.Fits(opts.config.Base, n) {
		return nil
	}
	//
	msg := fmt.Sprintf("%s: %d bytes loaded at address %d exceeds memory (%d bytes)", name, n,
		opts.config.Base, rom.MemorySize)
	//
	if opts.strict {
		return errors.New(msg)
	}
	//
	log.Warn(msg)
	//
	return nil
}

// Write output via a given function.  Unless writing to stdout, output is
// staged in a temporary file, and the target is only created (or truncated)
// once the function has succeeded.
func writeOutput(output string, fn func(io.Writer) (uint, error)) (uint, error) {
	if output == "-" {
		return fn(os.Stdout)
	}
	//
	tmp, err := os.CreateTemp("", "jackrom")
	if err != nil {
		return 0, err
	}
	//
	defer os.Remove(tmp.Name())
	defer tmp.Close()
	//
	n, err := fn(tmp)
	// Rewind staged output
	if err == nil {
		_, err = tmp.Seek(0, io.SeekStart)
	}
	//
	if err == nil {
		err = copyInto(output, tmp)
	}
	//
	return n, err
}

// Copy the contents of a reader into a given file.  The file is opened as for
// os.Create, hence new files respect the umask, existing files keep their
// permissions and symbolic links are written through.
func copyInto(output string, src io.Reader) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	//
	_, err = io.Copy(f, src)
	//
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	//
	return err
}
