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

// ItemIterator allows callers of the Ascend*/Descend* family to iterate
// in-order over portions of the tree.  When this function returns false,
// iteration stops and the associated method returns immediately.
type ItemIterator[K, V any] func(key K, value V) bool

type optionalKey[K any] struct {
	key   K
	valid bool
}

func optional[K any](key K) optionalKey[K] {
	return optionalKey[K]{key: key, valid: true}
}

func empty[K any]() optionalKey[K] {
	return optionalKey[K]{}
}

// Ascend calls the iterator for every entry in the tree within the range
// [first, last], until iterator returns false.
func (t *Tree[K, V]) Ascend(iterator ItemIterator[K, V]) {
	t.ascend(t.root, empty[K](), empty[K](), iterator)
}

// AscendRange calls the iterator for every entry in the tree within the range
// [greaterOrEqual, lessThan), until iterator returns false.
func (t *Tree[K, V]) AscendRange(greaterOrEqual, lessThan K, iterator ItemIterator[K, V]) {
	t.ascend(t.root, optional(greaterOrEqual), optional(lessThan), iterator)
}

// AscendGreaterOrEqual calls the iterator for every entry in the tree within
// the range [pivot, last], until iterator returns false.
func (t *Tree[K, V]) AscendGreaterOrEqual(pivot K, iterator ItemIterator[K, V]) {
	t.ascend(t.root, optional(pivot), empty[K](), iterator)
}

// AscendLessThan calls the iterator for every entry in the tree within the
// range [first, pivot), until iterator returns false.
func (t *Tree[K, V]) AscendLessThan(pivot K, iterator ItemIterator[K, V]) {
	t.ascend(t.root, empty[K](), optional(pivot), iterator)
}

// Descend calls the iterator for every entry in the tree within the range
// [last, first], until iterator returns false.
func (t *Tree[K, V]) Descend(iterator ItemIterator[K, V]) {
	t.descend(t.root, empty[K](), empty[K](), iterator)
}

// DescendRange calls the iterator for every entry in the tree within the
// range [lessOrEqual, greaterThan), until iterator returns false.
func (t *Tree[K, V]) DescendRange(lessOrEqual, greaterThan K, iterator ItemIterator[K, V]) {
	t.descend(t.root, optional(lessOrEqual), optional(greaterThan), iterator)
}

// DescendLessOrEqual calls the iterator for every entry in the tree within
// the range [pivot, first], until iterator returns false.
func (t *Tree[K, V]) DescendLessOrEqual(pivot K, iterator ItemIterator[K, V]) {
	t.descend(t.root, optional(pivot), empty[K](), iterator)
}

// DescendGreaterThan calls the iterator for every entry in the tree within
// the range [last, pivot), until iterator returns false.
func (t *Tree[K, V]) DescendGreaterThan(pivot K, iterator ItemIterator[K, V]) {
	t.descend(t.root, empty[K](), optional(pivot), iterator)
}

// ascend visits the subtree at idx in increasing key order, emitting keys in
// [start, stop).  Subtrees that cannot intersect the range are pruned.
// Returns false once the iterator has asked to stop.
func (t *Tree[K, V]) ascend(idx int, start, stop optionalKey[K], iterator ItemIterator[K, V]) bool {
	if idx == nilIdx {
		return true
	}
	n := t.arena.at(idx)
	if !start.valid || t.less(start.key, n.key) {
		if !t.ascend(n.left, start, stop, iterator) {
			return false
		}
	}
	if stop.valid && !t.less(n.key, stop.key) {
		return false
	}
	if !start.valid || !t.less(n.key, start.key) {
		if !iterator(n.key, n.value) {
			return false
		}
	}
	return t.ascend(n.right, start, stop, iterator)
}

// descend mirrors ascend in decreasing key order, emitting keys in
// (stop, start].
func (t *Tree[K, V]) descend(idx int, start, stop optionalKey[K], iterator ItemIterator[K, V]) bool {
	if idx == nilIdx {
		return true
	}
	n := t.arena.at(idx)
	if !start.valid || t.less(n.key, start.key) {
		if !t.descend(n.right, start, stop, iterator) {
			return false
		}
	}
	if !start.valid || !t.less(start.key, n.key) {
		if stop.valid && !t.less(stop.key, n.key) {
			return false
		}
		if !iterator(n.key, n.value) {
			return false
		}
	}
	return t.descend(n.left, start, stop, iterator)
}

// Iterator is a lazy in-order cursor over the tree.  The typical use is:
//
//	it := t.Iter()
//	for it.Next() {
//		k, v := it.Key(), it.Value()
//		// ...
//	}
//
// Each call to Iter returns a fresh cursor positioned before the first entry.
// The tree must not be mutated while an Iterator is in use.
type Iterator[K, V any] struct {
	t     *Tree[K, V]
	stack []int
	curr  int
}

// Iter returns a new iterator positioned before the minimum key.
func (t *Tree[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{
		t:     t,
		stack: make([]int, 0, t.alphaDepth(t.maxSize)+2),
		curr:  nilIdx,
	}
	it.pushLeftSpine(t.root)
	return it
}

func (it *Iterator[K, V]) pushLeftSpine(idx int) {
	for idx != nilIdx {
		it.stack = append(it.stack, idx)
		idx = it.t.arena.at(idx).left
	}
}

// Next advances to the next entry and reports whether one exists.
func (it *Iterator[K, V]) Next() bool {
	if len(it.stack) == 0 {
		it.curr = nilIdx
		return false
	}
	it.curr = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(it.t.arena.at(it.curr).right)
	return true
}

// Key returns the key at the current position.  Only valid after a call to
// Next has returned true.
func (it *Iterator[K, V]) Key() K {
	return it.t.arena.at(it.curr).key
}

// Value returns the value at the current position.  Only valid after a call
// to Next has returned true.
func (it *Iterator[K, V]) Value() V {
	return it.t.arena.at(it.curr).value
}
