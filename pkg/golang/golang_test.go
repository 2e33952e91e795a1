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
package golang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-jackrom/pkg/jack"
	"github.com/stretchr/testify/require"
)

func Test_Generate_01(t *testing.T) {
	contents := checkGenerate(t, "roms", jack.DefaultConfig(), []byte{0x00, 0xff, 0x10})
	//
	require.Contains(t, contents, "package roms")
	require.Contains(t, contents, "func LoadRom(mem []byte)")
	require.Contains(t, contents, "mem[512] = 0\n")
	require.Contains(t, contents, "mem[513] = 255\n")
	require.Contains(t, contents, "mem[514] = 16\n")
	require.Contains(t, contents, "LoadRomSize = 3")
}

func Test_Generate_02(t *testing.T) {
	contents := checkGenerate(t, "chip8", jack.Config{Class: "Rom", Function: "boot", Parameter: "mem", Base: 0}, nil)
	//
	require.Contains(t, contents, "func Boot(mem []byte)")
	require.NotContains(t, contents, "mem[")
}

func Test_Generate_03(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "rom.go")
	require.Error(t, Generate(filename, "not-a-package", jack.DefaultConfig(), nil))
	require.Error(t, Generate(filename, "roms", jack.Config{Function: "1st"}, nil))
	// Nothing should have been written
	_, err := os.Stat(filename)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Exported_01(t *testing.T) {
	require.Equal(t, "LoadRom", exported("loadRom"))
	require.Equal(t, "LoadRom", exported("LoadRom"))
	require.Equal(t, "_load", exported("_load"))
	require.Equal(t, "", exported(""))
}

func checkGenerate(t *testing.T, pkgname string, cfg jack.Config, data []byte) string {
	filename := filepath.Join(t.TempDir(), "rom.go")
	require.NoError(t, Generate(filename, pkgname, cfg, data))
	//
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	//
	return string(bytes)
}
