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
package rom

import (
	"fmt"

	"github.com/consensys/go-jackrom/pkg/util/collection/iter"
)

// ProgramStart is the address at which CHIP-8 programs are loaded, and hence
// the default address of the first byte of a ROM image.
const ProgramStart uint = 0x200

// MemorySize is the number of addressable bytes of a CHIP-8 machine.
const MemorySize uint = 4096

// Assignment represents the store of a single ROM byte into memory.
type Assignment struct {
	// Memory address being written.
	Address uint
	// Unsigned value of the byte being written.
	Value uint8
}

func (p Assignment) String() string {
	return fmt.Sprintf("[%d]=%d", p.Address, p.Value)
}

// Assignments lazily pairs each byte of a ROM image with the address it should
// be stored at.  Addresses start at base and increase by one for each byte,
// without gaps.
func Assignments(src iter.Enumerator[byte], base uint) iter.Enumerator[Assignment] {
	address := base
	//
	return iter.NewProjectEnumerator(src, func(b byte) Assignment {
		ith := Assignment{address, b}
		address++
		//
		return ith
	})
}

// Fits determines whether an image of n bytes loaded at base fits within the
// addressable memory.
func Fits(base uint, n uint) bool {
	return base <= MemorySize && n <= MemorySize-base
}
