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
package jack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/consensys/go-jackrom/pkg/rom"
	"github.com/consensys/go-jackrom/pkg/util/collection/iter"
)

// Config determines the shape of the generated Jack class.
type Config struct {
	// Name of the generated class.
	Class string
	// Name of the generated (static) function.
	Function string
	// Name of the array parameter into which the ROM is loaded.
	Parameter string
	// Address at which the first byte of the ROM is stored.
	Base uint
}

// DefaultConfig returns the configuration for the standard loader, which is a
// class Rom with a function loadRom(Array mem) storing bytes from address 512.
func DefaultConfig() Config {
	return Config{"Rom", "loadRom", "mem", rom.ProgramStart}
}

// Validate checks that all names in this configuration are legal Jack
// identifiers.
func (c Config) Validate() error {
	var errs []error
	//
	for _, name := range []struct{ kind, value string }{
		{"class", c.Class}, {"function", c.Function}, {"parameter", c.Parameter}} {
		if !IsIdentifier(name.value) {
			errs = append(errs, fmt.Errorf("invalid %s name \"%s\"", name.kind, name.value))
		}
	}
	//
	return errors.Join(errs...)
}

// Convert a ROM image into a Jack class which loads it, using the default
// configuration.
func Convert(bytes []byte) string {
	var builder strings.Builder
	//
	if _, err := DefaultConfig().Write(&builder, iter.NewArrayEnumerator(bytes)); err != nil {
		// Writing to a strings.Builder cannot fail.
		panic(err)
	}
	//
	return builder.String()
}

// Lines lazily generates the lines of the Jack class which loads the bytes of a
// given ROM image.  Every line, except the last, includes its terminating
// newline.
func (c Config) Lines(src iter.Enumerator[byte]) iter.Enumerator[string] {
	header := iter.NewArrayEnumerator(c.header())
	body := iter.NewProjectEnumerator(rom.Assignments(src, c.Base), c.assignment)
	tail := iter.NewArrayEnumerator(footer)
	//
	return iter.NewAppendEnumerator(header, iter.NewAppendEnumerator(body, tail))
}

// Write the Jack class which loads the bytes of a given ROM image to a given
// writer, returning the number of assignments written.  If the source reports
// read errors (e.g. it is an iter.ReaderEnumerator), these are returned as
// well.
func (c Config) Write(w io.Writer, src iter.Enumerator[byte]) (uint, error) {
	var (
		out = bufio.NewWriter(w)
		n   uint
	)
	//
	for _, line := range c.header() {
		out.WriteString(line)
	}
	//
	for it := rom.Assignments(src, c.Base); it.HasNext(); n++ {
		out.WriteString(c.assignment(it.Next()))
	}
	// Check whether source was truncated by a failure
	if s, ok := src.(interface{ Err() error }); ok && s.Err() != nil {
		return n, fmt.Errorf("reading rom: %w", s.Err())
	}
	//
	for _, line := range footer {
		out.WriteString(line)
	}
	// Errors are sticky, hence only need checking here.
	return n, out.Flush()
}

func (c Config) header() []string {
	return []string{
		fmt.Sprintf("class %s {\n", c.Class),
		fmt.Sprintf("function void %s(Array %s) {\n", c.Function, c.Parameter),
	}
}

func (c Config) assignment(a rom.Assignment) string {
	var builder strings.Builder
	//
	builder.WriteString("let ")
	builder.WriteString(c.Parameter)
	builder.WriteString("[")
	builder.WriteString(strconv.FormatUint(uint64(a.Address), 10))
	builder.WriteString("] = ")
	builder.WriteString(strconv.FormatUint(uint64(a.Value), 10))
	builder.WriteString(";\n")
	//
	return builder.String()
}

// NOTE: the final brace is not followed by a newline.
var footer = []string{"return;\n", "}\n", "}"}
