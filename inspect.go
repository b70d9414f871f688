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

// Deterministic, side-effect-free inspection operations.  These exist so an
// external differential or fuzzing harness can compare this structure against
// a reference ordered-collection implementation step by step.

// Height returns the number of nodes on the longest root-to-leaf path, or 0
// for an empty tree.
func (t *Tree[K, V]) Height() int {
	if t.root == nilIdx {
		return 0
	}
	type frame struct {
		idx   int
		depth int
	}
	max := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		n := t.arena.at(f.idx)
		if n.left != nilIdx {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != nilIdx {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return max
}

// SubtreeSize returns the number of nodes in the subtree rooted at key,
// including key itself, or 0 if key is absent.
func (t *Tree[K, V]) SubtreeSize(key K) int {
	idx := t.find(key)
	if idx == nilIdx {
		return 0
	}
	return t.arena.at(idx).size
}

// InOrderKeys returns all keys in ascending order.
func (t *Tree[K, V]) InOrderKeys() []K {
	keys := make([]K, 0, t.length)
	t.Ascend(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
