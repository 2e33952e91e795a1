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

type projectEnumerator[S, T any] struct {
	iter       Enumerator[S]
	projection func(S) T
}

// NewProjectEnumerator construct an enumerator that is the projection of
// another.  Items are projected lazily, as they are visited.
func NewProjectEnumerator[S, T any](iter Enumerator[S], projection func(S) T) Enumerator[T] {
	return &projectEnumerator[S, T]{iter, projection}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *projectEnumerator[S, T]) HasNext() bool {
	return p.iter.HasNext()
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *projectEnumerator[S, T]) Next() T {
	return p.projection(p.iter.Next())
}
