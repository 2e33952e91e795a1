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
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_OpenAndUncompress_01(t *testing.T) {
	data := []byte{0x00, 0xff, 0x10}
	filename := filepath.Join(t.TempDir(), "pong.ch8")
	require.NoError(t, os.WriteFile(filename, data, 0644))
	//
	checkOpenAndUncompress(t, filename, filename, data)
}

func Test_OpenAndUncompress_02(t *testing.T) {
	data := []byte("not really a rom")
	filename := filepath.Join(t.TempDir(), "pong.ch8.gz")
	// Write compressed file
	f, err := os.Create(filename)
	require.NoError(t, err)
	//
	w := gzip.NewWriter(f)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	//
	checkOpenAndUncompress(t, filename, filepath.Join(filepath.Dir(filename), "pong.ch8"), data)
}

func Test_OpenAndUncompress_03(t *testing.T) {
	_, _, err := OpenAndUncompress(filepath.Join(t.TempDir(), "missing.ch8"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func Test_OpenAndUncompress_04(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "broken.gz")
	require.NoError(t, os.WriteFile(filename, []byte{1, 2, 3}, 0644))
	//
	_, _, err := OpenAndUncompress(filename)
	require.Error(t, err)
}

func checkOpenAndUncompress(t *testing.T, filename string, expectedName string, expected []byte) {
	name, reader, err := OpenAndUncompress(filename)
	require.NoError(t, err)
	require.Equal(t, expectedName, name)
	//
	actual, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, expected, actual)
	require.NoError(t, reader.Close())
}

func Test_Uncompressed_01(t *testing.T) {
	require.Equal(t, "pong.ch8", Uncompressed("pong.ch8"))
	require.Equal(t, "pong.ch8", Uncompressed("pong.ch8.gz"))
	require.Equal(t, "roms/pong.ch8", Uncompressed("roms/pong.ch8.bz2"))
}
