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
	"path/filepath"
	"strings"
)

// Uncompressed returns the name a file would have after decompression.  That
// is, the given filename with any known compression extension removed.
func Uncompressed(filename string) string {
	ext := filepath.Ext(filename)
	//
	switch ext {
	case ".bz2", ".gz":
		return strings.TrimSuffix(filename, ext)
	default:
		return filename
	}
}
