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

// Package sgtree implements an ordered map and set backed by a self-balancing
// binary search tree with all nodes held in a fixed-capacity arena.
//
// The tree is a scapegoat tree: instead of per-operation rotations it bounds
// its height with occasional partial rebuilds, controlled by a tunable balance
// factor alpha.  Nodes reference each other by arena index, never by pointer,
// and every slice the structure needs is allocated once at construction.
// After New returns, no operation allocates, which makes the structure usable
// where dynamic allocation is unwelcome and out-of-memory must be a handled
// error rather than a crash: inserting into a full tree fails with
// ErrCapacityExceeded and leaves the tree untouched.
//
// Write operations are not safe for concurrent use, and readers (including
// iterators) must not interleave with a mutation.  Callers embedding the
// structure in a concurrent host must provide their own mutual exclusion.
package sgtree

// LessFunc determines how to order a key type K.  It should implement a
// strict ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[K any] func(a, b K) bool

// Ordered represents the set of types for which the '<' operator works.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Less returns a default LessFunc that uses the '<' operator for types that support it.
func Less[K Ordered]() LessFunc[K] {
	return func(a, b K) bool { return a < b }
}

// Tree is the low-level arena-backed scapegoat tree.  Most callers want the
// Map or Set facade instead; Tree is exported for embedders that need direct
// access to the inspection surface (Height, SubtreeSize, InOrderKeys).
type Tree[K, V any] struct {
	arena arena[K, V]
	less  LessFunc[K]

	root   int
	minIdx int // cached index of the minimum key, nilIdx when empty
	maxIdx int // cached index of the maximum key, nilIdx when empty
	length int

	// Balance control.
	alphaNum   float64
	alphaDenom float64
	maxSize    int // high-water node count since the last full rebuild
	rebalances uint64

	// Scratch storage, sized at construction so steady-state operations
	// perform no allocation.
	path  []int
	flat  []int
	stack []int
	spans []rebuildSpan
}

// New creates an empty tree holding at most capacity entries, ordered by less.
func New[K, V any](capacity int, less LessFunc[K]) *Tree[K, V] {
	if less == nil {
		panic("sgtree: nil less function")
	}
	return &Tree[K, V]{
		arena:      newArena[K, V](capacity),
		less:       less,
		root:       nilIdx,
		minIdx:     nilIdx,
		maxIdx:     nilIdx,
		alphaNum:   defaultAlphaNum,
		alphaDenom: defaultAlphaDenom,
		path:       make([]int, 0, capacity),
		flat:       make([]int, 0, capacity),
		stack:      make([]int, 0, capacity),
		spans:      make([]rebuildSpan, 0, capacity),
	}
}

// NewOrdered creates an empty tree for keys with a natural '<' ordering.
func NewOrdered[K Ordered, V any](capacity int) *Tree[K, V] {
	return New[K, V](capacity, Less[K]())
}

// Insert adds key/value to the tree.  If the key is already present its value
// is replaced and the old value is returned with replaced == true.  Inserting
// a new key into a full tree fails with ErrCapacityExceeded; the tree is left
// in its prior state.
func (t *Tree[K, V]) Insert(key K, value V) (old V, replaced bool, err error) {
	if t.root == nilIdx {
		idx, aerr := t.arena.alloc(key, value)
		if aerr != nil {
			return old, false, aerr
		}
		t.root, t.minIdx, t.maxIdx = idx, idx, idx
		t.length = 1
		if t.length > t.maxSize {
			t.maxSize = t.length
		}
		return old, false, nil
	}

	t.path = t.path[:0]
	curr := t.root
	var idx int
	var onRight bool
	for {
		n := t.arena.at(curr)
		switch {
		case t.less(key, n.key):
			if n.left != nilIdx {
				t.path = append(t.path, curr)
				curr = n.left
				continue
			}
			onRight = false
		case t.less(n.key, key):
			if n.right != nilIdx {
				t.path = append(t.path, curr)
				curr = n.right
				continue
			}
			onRight = true
		default:
			// Replace in place.  The key is overwritten too: a caller's
			// ordering may consider keys equal without them being identical.
			old, replaced = n.value, true
			n.key = key
			n.value = value
			return old, replaced, nil
		}
		t.path = append(t.path, curr)
		idx, err = t.arena.alloc(key, value)
		if err != nil {
			// Nothing has been linked or counted yet.
			return old, false, err
		}
		if onRight {
			n.right = idx
		} else {
			n.left = idx
		}
		break
	}

	for _, p := range t.path {
		t.arena.at(p).size++
	}
	t.length++
	if t.length > t.maxSize {
		t.maxSize = t.length
	}
	if t.less(key, t.arena.at(t.minIdx).key) {
		t.minIdx = idx
	}
	if t.less(t.arena.at(t.maxIdx).key, key) {
		t.maxIdx = idx
	}

	// The new node sits at depth len(path).  If that exceeds the alpha
	// height bound the tree has drifted out of shape somewhere along the
	// insertion path; find the scapegoat and rebuild its subtree.
	if len(t.path) > t.alphaDepth(t.maxSize) {
		if sg, sgParent, sgRight := t.findScapegoat(); sg != nilIdx {
			t.rebuild(sg, sgParent, sgRight)
		}
	}
	return old, false, nil
}

// Get returns the value stored for key, if any.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	idx := t.find(key)
	if idx == nilIdx {
		var zero V
		return zero, false
	}
	return t.arena.at(idx).value, true
}

// GetKeyValue returns the stored key and value for key, if any.
func (t *Tree[K, V]) GetKeyValue(key K) (K, V, bool) {
	idx := t.find(key)
	if idx == nilIdx {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := t.arena.at(idx)
	return n.key, n.value, true
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nilIdx
}

// Delete removes key and returns its value.  Removing an absent key returns
// (zero, false) and leaves the tree unchanged.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	_, v, ok := t.removeKey(key)
	if ok {
		t.maybeRebuildAfterRemove()
	}
	return v, ok
}

// DeleteMin removes and returns the entry with the minimum key.
func (t *Tree[K, V]) DeleteMin() (K, V, bool) {
	if t.root == nilIdx {
		var zk K
		var zv V
		return zk, zv, false
	}
	k, v, ok := t.removeKey(t.arena.at(t.minIdx).key)
	if ok {
		t.maybeRebuildAfterRemove()
	}
	return k, v, ok
}

// DeleteMax removes and returns the entry with the maximum key.
func (t *Tree[K, V]) DeleteMax() (K, V, bool) {
	if t.root == nilIdx {
		var zk K
		var zv V
		return zk, zv, false
	}
	k, v, ok := t.removeKey(t.arena.at(t.maxIdx).key)
	if ok {
		t.maybeRebuildAfterRemove()
	}
	return k, v, ok
}

// Min returns the entry with the minimum key, or (zero, zero, false) if the
// tree is empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.minIdx == nilIdx {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := t.arena.at(t.minIdx)
	return n.key, n.value, true
}

// Max returns the entry with the maximum key, or (zero, zero, false) if the
// tree is empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.maxIdx == nilIdx {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := t.arena.at(t.maxIdx)
	return n.key, n.value, true
}

// Len returns the number of entries currently in the tree.
func (t *Tree[K, V]) Len() int { return t.length }

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.length == 0 }

// IsFull reports whether the tree has reached its fixed capacity.
func (t *Tree[K, V]) IsFull() bool { return t.length == t.arena.capacity() }

// Capacity returns the maximum number of entries the tree can hold.
func (t *Tree[K, V]) Capacity() int { return t.arena.capacity() }

// Clear removes all entries.  The rebalance counter is preserved.
func (t *Tree[K, V]) Clear() {
	t.arena.reset()
	t.root, t.minIdx, t.maxIdx = nilIdx, nilIdx, nilIdx
	t.length = 0
	t.maxSize = 0
}

// find descends by comparison and returns the arena index of key, or nilIdx.
func (t *Tree[K, V]) find(key K) int {
	curr := t.root
	for curr != nilIdx {
		n := t.arena.at(curr)
		switch {
		case t.less(key, n.key):
			curr = n.left
		case t.less(n.key, key):
			curr = n.right
		default:
			return curr
		}
	}
	return nilIdx
}

// removeKey unlinks and releases the node holding key.  The two-child case
// splices the in-order successor (minimum of the right subtree) into the
// removed node's place, relinking indices only; no entry is copied.
func (t *Tree[K, V]) removeKey(key K) (k K, v V, ok bool) {
	t.path = t.path[:0]
	curr := t.root
	parent := nilIdx
	onRight := false
	for curr != nilIdx {
		n := t.arena.at(curr)
		if t.less(key, n.key) {
			t.path = append(t.path, curr)
			parent, onRight = curr, false
			curr = n.left
			continue
		}
		if t.less(n.key, key) {
			t.path = append(t.path, curr)
			parent, onRight = curr, true
			curr = n.right
			continue
		}
		break
	}
	if curr == nilIdx {
		return k, v, false
	}

	n := t.arena.at(curr)
	k, v = n.key, n.value

	// Every strict ancestor loses one node.
	for _, p := range t.path {
		t.arena.at(p).size--
	}

	var newChild int
	switch {
	case n.left == nilIdx && n.right == nilIdx:
		newChild = nilIdx
	case n.right == nilIdx:
		newChild = n.left
	case n.left == nilIdx:
		newChild = n.right
	default:
		succParent, succ := curr, n.right
		for t.arena.at(succ).left != nilIdx {
			succParent = succ
			succ = t.arena.at(succ).left
		}
		if succ != n.right {
			// Nodes between the right child and the successor's parent
			// each lose the successor from their subtree.
			for walk := n.right; walk != succ; walk = t.arena.at(walk).left {
				t.arena.at(walk).size--
			}
			t.arena.at(succParent).left = t.arena.at(succ).right
			t.arena.at(succ).right = n.right
		}
		s := t.arena.at(succ)
		s.left = n.left
		s.size = n.size - 1
		newChild = succ
	}

	switch {
	case parent == nilIdx:
		t.root = newChild
	case onRight:
		t.arena.at(parent).right = newChild
	default:
		t.arena.at(parent).left = newChild
	}

	t.arena.release(curr)
	t.length--

	if t.length == 0 {
		t.minIdx, t.maxIdx = nilIdx, nilIdx
		t.maxSize = 0
		return k, v, true
	}
	if curr == t.minIdx {
		t.minIdx = t.leftmost(t.root)
	}
	if curr == t.maxIdx {
		t.maxIdx = t.rightmost(t.root)
	}
	return k, v, true
}

func (t *Tree[K, V]) leftmost(idx int) int {
	for {
		n := t.arena.at(idx)
		if n.left == nilIdx {
			return idx
		}
		idx = n.left
	}
}

func (t *Tree[K, V]) rightmost(idx int) int {
	for {
		n := t.arena.at(idx)
		if n.right == nilIdx {
			return idx
		}
		idx = n.right
	}
}
