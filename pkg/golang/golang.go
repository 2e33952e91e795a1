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
	_ "embed"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/go-jackrom/pkg/jack"
	"github.com/consensys/go-jackrom/pkg/rom"
	"github.com/consensys/go-jackrom/pkg/util/collection/iter"
)

const copyrightHolder = "Consensys Software Inc."

const copyrightYear = 2025

const templateName = "loader.go.tmpl"

//go:embed templates/loader.go.tmpl
var loaderTemplate string

// loader is the data against which the template is instantiated.
type loader struct {
	Function    string
	Base        uint
	Size        uint
	Assignments []rom.Assignment
}

// Generate writes a Go source file which, like the equivalent Jack class, loads
// a given ROM image into memory.  The generated function is named after the
// (exported form of) the configured function, and takes the memory as a byte
// slice.
func Generate(filename string, pkgname string, cfg jack.Config, data []byte) error {
	var (
		fn    = exported(cfg.Function)
		store = iter.Collect(rom.Assignments(iter.NewArrayEnumerator(data), cfg.Base))
	)
	// Sanity checks
	if !token.IsIdentifier(pkgname) {
		return fmt.Errorf("invalid Go package name \"%s\"", pkgname)
	} else if !token.IsIdentifier(fn) {
		return fmt.Errorf("invalid Go function name \"%s\"", fn)
	}
	// Templates are read from disk, hence must be staged somewhere.
	dir, err := os.MkdirTemp("", "jackrom")
	if err != nil {
		return err
	}
	//
	defer os.RemoveAll(dir)
	//
	if err := os.WriteFile(filepath.Join(dir, templateName), []byte(loaderTemplate), 0644); err != nil {
		return err
	}
	//
	bgen := bavard.NewBatchGenerator(copyrightHolder, copyrightYear, "go-jackrom")
	//
	return bgen.Generate(loader{fn, cfg.Base, uint(len(data)), store}, pkgname, dir,
		bavard.Entry{File: filename, Templates: []string{templateName}})
}

// Capitalise the first letter of a name, thereby exporting it.
func exported(name string) string {
	if name == "" {
		return name
	}
	//
	return strings.ToUpper(name[:1]) + name[1:]
}
