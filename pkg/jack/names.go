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
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// Keywords of the Jack language, none of which can be used as an identifier.
var keywords = []string{
	"class", "constructor", "function", "method", "field", "static", "var", "int", "char", "boolean", "void",
	"true", "false", "null", "this", "let", "do", "if", "else", "while", "return",
}

// IsIdentifier checks whether a given name is a legal Jack identifier.  That
// is, a non-empty sequence of letters, digits and underscores which does not
// begin with a digit and is not a keyword.
func IsIdentifier(name string) bool {
	if name == "" || slices.Contains(keywords, name) {
		return false
	}
	//
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		} else if i == 0 && unicode.IsDigit(r) {
			return false
		} else if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	//
	return true
}

// ClassName derives a suitable Jack class name from the filename of a ROM.  For
// example, "space_invaders.ch8" gives "SpaceInvaders".  Names which would
// otherwise not be legal identifiers are prefixed with "Rom".
func ClassName(filename string) string {
	var (
		builder  strings.Builder
		basename = filepath.Base(filename)
	)
	// Strip extension
	basename = strings.TrimSuffix(basename, filepath.Ext(basename))
	//
	for _, w := range splitWords(basename) {
		builder.WriteString(camelify(w, true))
	}
	//
	name := builder.String()
	//
	if !IsIdentifier(name) {
		return "Rom" + name
	}
	//
	return name
}

// Make all letters lowercase, and optionally capitalise the first letter.
func camelify(name string, first bool) string {
	letters := strings.Split(name, "")
	for i := range letters {
		if first && i == 0 {
			letters[i] = strings.ToUpper(letters[i])
		} else {
			letters[i] = strings.ToLower(letters[i])
		}
	}
	//
	return strings.Join(letters, "")
}

// Split a name into words, where words are separated by any symbol other than
// a letter or digit, or by a change from lower to upper case.
func splitWords(name string) []string {
	var words []string
	//
	separator := func(r rune) bool {
		return r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r))
	}
	//
	for _, w := range strings.FieldsFunc(name, separator) {
		words = append(words, splitCaseChange(w)...)
	}
	//
	return words
}

func splitCaseChange(word string) []string {
	var (
		runes = []rune(word)
		words []string
		last  bool = true
		start int
	)
	//
	for i, r := range runes {
		ith := unicode.IsUpper(r)
		if !last && ith {
			// case change
			words = append(words, string(runes[start:i]))
			start = i
		}

		last = ith
	}
	// Append whatever is left
	words = append(words, string(runes[start:]))
	//
	return words
}
