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
package iter

import (
	"bufio"
	"errors"
	"io"
)

// ReaderEnumerator enumerates the bytes of an underlying reader, one at a time.
// Bytes are read lazily (though buffered) and the enumeration can be made only
// once.  Since reading can fail part way through, any such failure is retained
// and should be checked via Err once the enumeration is complete.
type ReaderEnumerator struct {
	reader *bufio.Reader
	// Next byte to return (if any)
	next byte
	// Indicates whether next holds a byte which has not yet been returned.
	ready bool
	// Set when the underlying reader is exhausted, or failed.
	done bool
	// Any error (other than EOF) encountered whilst reading.
	err error
}

// NewReaderEnumerator constructs an enumerator over the bytes of a given
// reader.
func NewReaderEnumerator(reader io.Reader) *ReaderEnumerator {
	return &ReaderEnumerator{reader: bufio.NewReader(reader)}
}

// HasNext checks whether or not there are any bytes remaining to visit.  This
// may block reading from the underlying reader.
func (p *ReaderEnumerator) HasNext() bool {
	if !p.ready && !p.done {
		p.fill()
	}
	//
	return p.ready
}

// Next returns the next byte, and advance the enumerator.
func (p *ReaderEnumerator) Next() byte {
	if !p.HasNext() {
		panic("enumerator out-of-bounds")
	}
	//
	p.ready = false
	//
	return p.next
}

// Err returns the first error (other than EOF) encountered whilst reading, or
// nil if there was none.
func (p *ReaderEnumerator) Err() error {
	return p.err
}

func (p *ReaderEnumerator) fill() {
	b, err := p.reader.ReadByte()
	//
	switch {
	case err == nil:
		p.next, p.ready = b, true
	case errors.Is(err, io.EOF):
		p.done = true
	default:
		p.done, p.err = true, err
	}
}
