// Copyright 2024 The sgtree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sgtree

// nilIdx marks an absent child or parent link.  All inter-node relationships
// are arena indices, never pointers, so node records stay fixed-size and the
// structure has no ownership cycles.
const nilIdx = -1

// node is a single tree entry held in an arena slot.
//
// size caches the node count of the subtree rooted here.  It is kept exact
// across insertions, removals and rebuilds, and is what makes the scapegoat
// weight-balance check an O(path) walk instead of an O(subtree) recount.
type node[K, V any] struct {
	key   K
	value V
	left  int
	right int
	size  int
}

// rebuildSpan is one pending range of a balanced reconstruction: the sorted
// index slice [lo, hi] still to be linked under parent.
type rebuildSpan struct {
	lo, hi int
	parent int
	right  bool
}
