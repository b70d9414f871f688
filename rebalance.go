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

import "math"

// The balance factor alpha is expressed as a numerator/denominator pair.
// The default, 2/3, rebalances often enough for height to stay close to
// optimal without paying for a rebuild on most insertions.
const (
	defaultAlphaNum   = 2.0
	defaultAlphaDenom = 3.0
)

// SetBalanceFactor tunes alpha = num/denom, the trade-off between rebuild
// frequency and height guarantee.  Alpha can be chosen in [0.5, 1.0): toward
// 0.5 the tree rebuilds aggressively and stays near-perfectly balanced,
// toward 1.0 it rebuilds rarely and tolerates taller shapes.  Values outside
// the range fail with ErrBalanceFactorOutOfRange.
func (t *Tree[K, V]) SetBalanceFactor(num, denom float64) error {
	a := num / denom
	if !(a >= 0.5 && a < 1.0) {
		return ErrBalanceFactorOutOfRange
	}
	t.alphaNum, t.alphaDenom = num, denom
	return nil
}

// BalanceFactor returns the current alpha as a (numerator, denominator) pair.
func (t *Tree[K, V]) BalanceFactor() (num, denom float64) {
	return t.alphaNum, t.alphaDenom
}

// RebalanceCount returns how many times the tree has rebuilt a subtree, for
// testing and performance engineering.
func (t *Tree[K, V]) RebalanceCount() uint64 { return t.rebalances }

// alphaDepth is floor(log base 1/alpha of n), the maximum depth a node may
// sit at before an insertion triggers a scapegoat search.
func (t *Tree[K, V]) alphaDepth(n int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Floor(math.Log(float64(n)) / math.Log(t.alphaDenom/t.alphaNum)))
}

// findScapegoat walks the recorded insertion path from the new node's parent
// up to the root and returns the highest ancestor whose heavier child subtree
// exceeds alpha times its own size.  Rebuilding the highest such ancestor
// restores the alpha bound for the whole path in one pass.  Returns nilIdx
// when no ancestor violates weight balance.
func (t *Tree[K, V]) findScapegoat() (sg, parent int, onRight bool) {
	sg, parent = nilIdx, nilIdx
	for i := len(t.path) - 1; i >= 0; i-- {
		n := t.arena.at(t.path[i])
		heavy := 0
		if n.left != nilIdx {
			heavy = t.arena.at(n.left).size
		}
		if n.right != nilIdx {
			if s := t.arena.at(n.right).size; s > heavy {
				heavy = s
			}
		}
		if float64(heavy)*t.alphaDenom > float64(n.size)*t.alphaNum {
			sg = t.path[i]
			if i > 0 {
				parent = t.path[i-1]
				onRight = t.arena.at(parent).right == sg
			} else {
				parent, onRight = nilIdx, false
			}
		}
	}
	return sg, parent, onRight
}

// maybeRebuildAfterRemove applies the removal-side trigger: once the live
// count decays to alpha times the post-rebuild high-water mark, the whole
// tree is rebuilt and the mark reset.  This is what makes the height bound
// amortized across deletions, which never rebalance individually.
func (t *Tree[K, V]) maybeRebuildAfterRemove() {
	if t.root == nilIdx {
		return
	}
	if float64(t.length)*t.alphaDenom <= float64(t.maxSize)*t.alphaNum {
		t.rebuild(t.root, nilIdx, false)
		t.maxSize = t.length
	}
}

// rebuild replaces the subtree rooted at idx with a perfectly balanced
// arrangement of the same nodes: flatten to a sorted index sequence, then
// relink around medians.  Arena slots are reused in place; only child links
// and cached sizes change, so the operation cannot fail.
func (t *Tree[K, V]) rebuild(idx, parent int, onRight bool) {
	t.flattenInOrder(idx)
	newRoot := t.relinkBalanced()
	switch {
	case parent == nilIdx:
		t.root = newRoot
	case onRight:
		t.arena.at(parent).right = newRoot
	default:
		t.arena.at(parent).left = newRoot
	}
	t.rebalances++
}

// flattenInOrder fills t.flat with the subtree's arena indices in ascending
// key order, using an explicit traversal stack.
func (t *Tree[K, V]) flattenInOrder(idx int) {
	t.flat = t.flat[:0]
	t.stack = t.stack[:0]
	curr := idx
	for curr != nilIdx || len(t.stack) > 0 {
		for curr != nilIdx {
			t.stack = append(t.stack, curr)
			curr = t.arena.at(curr).left
		}
		curr = t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.flat = append(t.flat, curr)
		curr = t.arena.at(curr).right
	}
}

// relinkBalanced rebuilds a balanced subtree from the sorted indices in
// t.flat via an iterative worklist of index ranges, and returns the new
// subtree root.  Each node's cached size is the width of its range.
func (t *Tree[K, V]) relinkBalanced() int {
	last := len(t.flat) - 1
	newRoot := t.flat[last/2]

	t.spans = t.spans[:0]
	t.spans = append(t.spans, rebuildSpan{lo: 0, hi: last, parent: nilIdx})
	for len(t.spans) > 0 {
		sp := t.spans[len(t.spans)-1]
		t.spans = t.spans[:len(t.spans)-1]

		mid := sp.lo + (sp.hi-sp.lo)/2
		idx := t.flat[mid]
		n := t.arena.at(idx)
		n.left, n.right = nilIdx, nilIdx
		n.size = sp.hi - sp.lo + 1
		if sp.parent != nilIdx {
			p := t.arena.at(sp.parent)
			if sp.right {
				p.right = idx
			} else {
				p.left = idx
			}
		}
		if sp.lo < mid {
			t.spans = append(t.spans, rebuildSpan{lo: sp.lo, hi: mid - 1, parent: idx, right: false})
		}
		if mid < sp.hi {
			t.spans = append(t.spans, rebuildSpan{lo: mid + 1, hi: sp.hi, parent: idx, right: true})
		}
	}
	return newRoot
}
