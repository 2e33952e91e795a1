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
	"bytes"
	"errors"
	"io"
	"testing"
)

func Test_Enumerator_Array_01(t *testing.T) {
	checkEnumerator(t, NewArrayEnumerator([]uint{}), []uint{})
}

func Test_Enumerator_Array_02(t *testing.T) {
	checkEnumerator(t, NewArrayEnumerator([]uint{0, 1, 2}), []uint{0, 1, 2})
}

func Test_Enumerator_Append_01(t *testing.T) {
	enumerator := NewAppendEnumerator(NewArrayEnumerator([]uint{0}), NewArrayEnumerator([]uint{1, 2}))
	checkEnumerator(t, enumerator, []uint{0, 1, 2})
}

func Test_Enumerator_Append_02(t *testing.T) {
	enumerator := NewAppendEnumerator(NewArrayEnumerator([]uint{}), NewArrayEnumerator([]uint{}))
	checkEnumerator(t, enumerator, []uint{})
}

func Test_Enumerator_Project_01(t *testing.T) {
	enumerator := NewProjectEnumerator(NewArrayEnumerator([]uint{1, 2, 3}), func(x uint) uint { return x * 2 })
	checkEnumerator(t, enumerator, []uint{2, 4, 6})
}

func Test_Enumerator_Count_01(t *testing.T) {
	if n := Count(NewArrayEnumerator([]byte{1, 2, 3, 4})); n != 4 {
		t.Errorf("expected 4 items, got %d", n)
	}
}

func Test_Enumerator_Reader_01(t *testing.T) {
	enumerator := NewReaderEnumerator(bytes.NewReader(nil))
	checkEnumerator[byte](t, enumerator, []byte{})
	// Sanity check no error
	if enumerator.Err() != nil {
		t.Errorf("unexpected error: %s", enumerator.Err())
	}
}

func Test_Enumerator_Reader_02(t *testing.T) {
	enumerator := NewReaderEnumerator(bytes.NewReader([]byte{0x00, 0xff, 0x10}))
	checkEnumerator[byte](t, enumerator, []byte{0x00, 0xff, 0x10})
}

func Test_Enumerator_Reader_03(t *testing.T) {
	data := make([]byte, 10000)
	//
	for i := range data {
		data[i] = byte(i * 7)
	}
	// Larger than the read buffer
	checkEnumerator[byte](t, NewReaderEnumerator(bytes.NewReader(data)), data)
}

func Test_Enumerator_Reader_04(t *testing.T) {
	failure := errors.New("device unplugged")
	reader := io.MultiReader(bytes.NewReader([]byte{1, 2}), &failingReader{failure})
	enumerator := NewReaderEnumerator(reader)
	// Bytes before the failure are still visited
	checkEnumerator[byte](t, enumerator, []byte{1, 2})
	//
	if !errors.Is(enumerator.Err(), failure) {
		t.Errorf("expected error %q, got %v", failure, enumerator.Err())
	}
}

func Test_Enumerator_Reader_05(t *testing.T) {
	enumerator := NewReaderEnumerator(bytes.NewReader([]byte{42}))
	// HasNext must be idempotent
	for i := 0; i < 3; i++ {
		if !enumerator.HasNext() {
			t.Fatalf("expected item remaining")
		}
	}
	//
	checkEnumerator[byte](t, enumerator, []byte{42})
}

// ===================================================================
// Test Helpers
// ===================================================================

type failingReader struct {
	err error
}

func (p *failingReader) Read([]byte) (int, error) {
	return 0, p.err
}

func checkEnumerator[E comparable](t *testing.T, enumerator Enumerator[E], expected []E) {
	for i := 0; i < len(expected); i++ {
		if !enumerator.HasNext() {
			t.Fatalf("expected %d elements, got %d", len(expected), i)
		}
		//
		ith := enumerator.Next()
		if ith != expected[i] {
			t.Errorf("expected %v, got %v", any(expected[i]), any(ith))
		}
	}
	// Sanity check lengths match
	if enumerator.HasNext() {
		t.Errorf("expected %d elements, got more", len(expected))
	}
}
