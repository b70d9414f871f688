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

import "fmt"

// arena is a fixed-capacity pool of node slots.  Every slice it owns is
// allocated once at construction and never grown, so a tree performs no
// dynamic allocation after New returns.
//
// Allocation and release are both O(1): released slot indices go onto a LIFO
// free list and are handed back out before the high-water mark advances.
type arena[K, V any] struct {
	slots []node[K, V]
	used  []bool
	free  []int // reclaimed indices, LIFO
	next  int   // high-water mark: slots[next:] have never been handed out
	live  int
}

func newArena[K, V any](capacity int) arena[K, V] {
	if capacity < 0 {
		panic("sgtree: negative arena capacity")
	}
	return arena[K, V]{
		slots: make([]node[K, V], capacity),
		used:  make([]bool, capacity),
		free:  make([]int, 0, capacity),
	}
}

// alloc claims a slot for a new node and returns its index.  The index stays
// valid until the slot is released.
func (a *arena[K, V]) alloc(key K, value V) (int, error) {
	var idx int
	switch {
	case len(a.free) > 0:
		idx = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
	case a.next < len(a.slots):
		idx = a.next
		a.next++
	default:
		return nilIdx, ErrCapacityExceeded
	}
	a.slots[idx] = node[K, V]{key: key, value: value, left: nilIdx, right: nilIdx, size: 1}
	a.used[idx] = true
	a.live++
	return idx, nil
}

// release returns a slot to the free list.  Releasing a slot that is not
// live is corruption of the arena invariants, not a recoverable condition,
// and panics.
func (a *arena[K, V]) release(idx int) {
	if idx < 0 || idx >= len(a.slots) || !a.used[idx] {
		panic(fmt.Sprintf("sgtree: release of invalid arena index %d", idx))
	}
	var zero node[K, V]
	a.slots[idx] = zero // drop key/value references
	a.used[idx] = false
	a.free = append(a.free, idx)
	a.live--
}

// at returns the node held at idx.  Indexing a free or out-of-range slot is
// a programmer error and panics.
func (a *arena[K, V]) at(idx int) *node[K, V] {
	if idx < 0 || idx >= len(a.slots) || !a.used[idx] {
		panic(fmt.Sprintf("sgtree: access of invalid arena index %d", idx))
	}
	return &a.slots[idx]
}

func (a *arena[K, V]) occupied(idx int) bool {
	return idx >= 0 && idx < len(a.slots) && a.used[idx]
}

func (a *arena[K, V]) len() int      { return a.live }
func (a *arena[K, V]) capacity() int { return len(a.slots) }
func (a *arena[K, V]) full() bool    { return a.live == len(a.slots) }

// reset frees every slot without shrinking any backing storage.
func (a *arena[K, V]) reset() {
	var zero node[K, V]
	for i := 0; i < a.next; i++ {
		a.slots[i] = zero
		a.used[i] = false
	}
	a.free = a.free[:0]
	a.next = 0
	a.live = 0
}
