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

// Map is an ordered map with a fixed capacity chosen at construction.
// It is a thin facade over Tree that hides arena and index details.
//
// Write operations are not safe for concurrent use.
type Map[K, V any] struct {
	t *Tree[K, V]
}

// NewMap creates an empty map holding at most capacity entries, ordered by less.
func NewMap[K, V any](capacity int, less LessFunc[K]) *Map[K, V] {
	return &Map[K, V]{t: New[K, V](capacity, less)}
}

// NewOrderedMap creates an empty map for keys with a natural '<' ordering.
func NewOrderedMap[K Ordered, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{t: NewOrdered[K, V](capacity)}
}

// Insert adds key/value.  If the key was present its old value is returned
// with replaced == true.  Inserting a new key into a full map fails with
// ErrCapacityExceeded and leaves the map unchanged.
func (m *Map[K, V]) Insert(key K, value V) (old V, replaced bool, err error) {
	return m.t.Insert(key, value)
}

// GetOrInsert returns the value stored for key, inserting value first if key
// was absent.
func (m *Map[K, V]) GetOrInsert(key K, value V) (V, error) {
	if v, ok := m.t.Get(key); ok {
		return v, nil
	}
	if _, _, err := m.t.Insert(key, value); err != nil {
		var zero V
		return zero, err
	}
	return value, nil
}

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) { return m.t.Get(key) }

// GetKeyValue returns the stored key and value for key, if any.
func (m *Map[K, V]) GetKeyValue(key K) (K, V, bool) { return m.t.GetKeyValue(key) }

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m.t.Contains(key) }

// Delete removes key and returns its value, or (zero, false) if absent.
func (m *Map[K, V]) Delete(key K) (V, bool) { return m.t.Delete(key) }

// DeleteMin removes and returns the entry with the minimum key.
func (m *Map[K, V]) DeleteMin() (K, V, bool) { return m.t.DeleteMin() }

// DeleteMax removes and returns the entry with the maximum key.
func (m *Map[K, V]) DeleteMax() (K, V, bool) { return m.t.DeleteMax() }

// Min returns the entry with the minimum key.
func (m *Map[K, V]) Min() (K, V, bool) { return m.t.Min() }

// Max returns the entry with the maximum key.
func (m *Map[K, V]) Max() (K, V, bool) { return m.t.Max() }

// Len returns the number of entries currently in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.t.IsEmpty() }

// IsFull reports whether the map has reached its fixed capacity.
func (m *Map[K, V]) IsFull() bool { return m.t.IsFull() }

// Capacity returns the maximum number of entries the map can hold.
func (m *Map[K, V]) Capacity() int { return m.t.Capacity() }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K { return m.t.InOrderKeys() }

// Values returns all values in ascending key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.t.Len())
	m.t.Ascend(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Ascend calls the iterator for every entry in ascending key order, until
// iterator returns false.
func (m *Map[K, V]) Ascend(iterator ItemIterator[K, V]) { m.t.Ascend(iterator) }

// AscendRange calls the iterator for every entry with key in
// [greaterOrEqual, lessThan), in ascending order, until iterator returns false.
func (m *Map[K, V]) AscendRange(greaterOrEqual, lessThan K, iterator ItemIterator[K, V]) {
	m.t.AscendRange(greaterOrEqual, lessThan, iterator)
}

// AscendGreaterOrEqual calls the iterator for every entry with key >= pivot,
// in ascending order, until iterator returns false.
func (m *Map[K, V]) AscendGreaterOrEqual(pivot K, iterator ItemIterator[K, V]) {
	m.t.AscendGreaterOrEqual(pivot, iterator)
}

// AscendLessThan calls the iterator for every entry with key < pivot, in
// ascending order, until iterator returns false.
func (m *Map[K, V]) AscendLessThan(pivot K, iterator ItemIterator[K, V]) {
	m.t.AscendLessThan(pivot, iterator)
}

// Descend calls the iterator for every entry in descending key order, until
// iterator returns false.
func (m *Map[K, V]) Descend(iterator ItemIterator[K, V]) { m.t.Descend(iterator) }

// Iter returns a fresh in-order cursor.
func (m *Map[K, V]) Iter() *Iterator[K, V] { return m.t.Iter() }

// SetBalanceFactor tunes the rebalance alpha; see Tree.SetBalanceFactor.
func (m *Map[K, V]) SetBalanceFactor(num, denom float64) error {
	return m.t.SetBalanceFactor(num, denom)
}

// BalanceFactor returns the current alpha as a (numerator, denominator) pair.
func (m *Map[K, V]) BalanceFactor() (num, denom float64) { return m.t.BalanceFactor() }

// Height returns the current tree height; see Tree.Height.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// RebalanceCount returns how many subtree rebuilds the map has performed.
func (m *Map[K, V]) RebalanceCount() uint64 { return m.t.RebalanceCount() }
