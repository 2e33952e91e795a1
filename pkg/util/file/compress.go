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
package file

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
)

// OpenAndUncompress opens a given file for reading, decompressing it on the fly
// if its extension indicates a known compression format (".gz" or ".bz2").  The
// returned filename has any such extension removed.
func OpenAndUncompress(filename string) (string, io.ReadCloser, error) {
	file, err := os.Open(filename)
	//
	if err != nil {
		return filename, nil, err
	}
	//
	name := Uncompressed(filename)
	//
	switch filepath.Ext(filename) {
	case ".bz2":
		return name, &uncompressed{bzip2.NewReader(file), []io.Closer{file}}, nil
	case ".gz":
		reader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return filename, nil, err
		}
		//
		return name, &uncompressed{reader, []io.Closer{reader, file}}, nil
	default:
		return filename, file, nil
	}
}

// uncompressed reads from a decompressor, whilst ensuring closing it releases
// the underlying file (and the decompressor, if it needs closing).
type uncompressed struct {
	io.Reader
	closers []io.Closer
}

// Close all closers, returning the first error (if any).
func (p *uncompressed) Close() error {
	var err error
	//
	for _, c := range p.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	//
	return err
}
