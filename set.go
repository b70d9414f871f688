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

// Set is an ordered set with a fixed capacity chosen at construction.  It is
// a Map with no values, sharing all of the tree machinery.
//
// The algebra methods (Union, Intersection, ...) return ascending slices
// rather than new Sets, since a result may not fit either operand's capacity.
type Set[T any] struct {
	t *Tree[T, struct{}]
}

// NewSet creates an empty set holding at most capacity elements, ordered by less.
func NewSet[T any](capacity int, less LessFunc[T]) *Set[T] {
	return &Set[T]{t: New[T, struct{}](capacity, less)}
}

// NewOrderedSet creates an empty set for element types with a natural '<' ordering.
func NewOrderedSet[T Ordered](capacity int) *Set[T] {
	return &Set[T]{t: NewOrdered[T, struct{}](capacity)}
}

// Insert adds value to the set, reporting whether it was newly added.
// Inserting a new element into a full set fails with ErrCapacityExceeded.
func (s *Set[T]) Insert(value T) (added bool, err error) {
	_, replaced, err := s.t.Insert(value, struct{}{})
	if err != nil {
		return false, err
	}
	return !replaced, nil
}

// Contains reports whether value is an element of the set.
func (s *Set[T]) Contains(value T) bool { return s.t.Contains(value) }

// Delete removes value, reporting whether it was present.
func (s *Set[T]) Delete(value T) bool {
	_, ok := s.t.Delete(value)
	return ok
}

// DeleteMin removes and returns the minimum element.
func (s *Set[T]) DeleteMin() (T, bool) {
	v, _, ok := s.t.DeleteMin()
	return v, ok
}

// DeleteMax removes and returns the maximum element.
func (s *Set[T]) DeleteMax() (T, bool) {
	v, _, ok := s.t.DeleteMax()
	return v, ok
}

// Min returns the minimum element.
func (s *Set[T]) Min() (T, bool) {
	v, _, ok := s.t.Min()
	return v, ok
}

// Max returns the maximum element.
func (s *Set[T]) Max() (T, bool) {
	v, _, ok := s.t.Max()
	return v, ok
}

// Len returns the number of elements currently in the set.
func (s *Set[T]) Len() int { return s.t.Len() }

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool { return s.t.IsEmpty() }

// IsFull reports whether the set has reached its fixed capacity.
func (s *Set[T]) IsFull() bool { return s.t.IsFull() }

// Capacity returns the maximum number of elements the set can hold.
func (s *Set[T]) Capacity() int { return s.t.Capacity() }

// Clear removes all elements.
func (s *Set[T]) Clear() { s.t.Clear() }

// Slice returns all elements in ascending order.
func (s *Set[T]) Slice() []T { return s.t.InOrderKeys() }

// Ascend calls the iterator for every element in ascending order, until
// iterator returns false.
func (s *Set[T]) Ascend(iterator func(value T) bool) {
	s.t.Ascend(func(k T, _ struct{}) bool { return iterator(k) })
}

// Descend calls the iterator for every element in descending order, until
// iterator returns false.
func (s *Set[T]) Descend(iterator func(value T) bool) {
	s.t.Descend(func(k T, _ struct{}) bool { return iterator(k) })
}

// Height returns the current tree height; see Tree.Height.
func (s *Set[T]) Height() int { return s.t.Height() }

// RebalanceCount returns how many subtree rebuilds the set has performed.
func (s *Set[T]) RebalanceCount() uint64 { return s.t.RebalanceCount() }

// SetBalanceFactor tunes the rebalance alpha; see Tree.SetBalanceFactor.
func (s *Set[T]) SetBalanceFactor(num, denom float64) error {
	return s.t.SetBalanceFactor(num, denom)
}

// Union returns the elements present in s, other, or both, ascending.
func (s *Set[T]) Union(other *Set[T]) []T {
	out := make([]T, 0, s.Len()+other.Len())
	a, b := s.t.Iter(), other.t.Iter()
	aOK, bOK := a.Next(), b.Next()
	for aOK && bOK {
		switch {
		case s.t.less(a.Key(), b.Key()):
			out = append(out, a.Key())
			aOK = a.Next()
		case s.t.less(b.Key(), a.Key()):
			out = append(out, b.Key())
			bOK = b.Next()
		default:
			out = append(out, a.Key())
			aOK, bOK = a.Next(), b.Next()
		}
	}
	for aOK {
		out = append(out, a.Key())
		aOK = a.Next()
	}
	for bOK {
		out = append(out, b.Key())
		bOK = b.Next()
	}
	return out
}

// Intersection returns the elements present in both s and other, ascending.
func (s *Set[T]) Intersection(other *Set[T]) []T {
	var out []T
	s.Ascend(func(v T) bool {
		if other.Contains(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Difference returns the elements of s not present in other, ascending.
func (s *Set[T]) Difference(other *Set[T]) []T {
	var out []T
	s.Ascend(func(v T) bool {
		if !other.Contains(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// SymmetricDifference returns the elements present in exactly one of s and
// other, ascending.
func (s *Set[T]) SymmetricDifference(other *Set[T]) []T {
	var out []T
	a, b := s.t.Iter(), other.t.Iter()
	aOK, bOK := a.Next(), b.Next()
	for aOK && bOK {
		switch {
		case s.t.less(a.Key(), b.Key()):
			out = append(out, a.Key())
			aOK = a.Next()
		case s.t.less(b.Key(), a.Key()):
			out = append(out, b.Key())
			bOK = b.Next()
		default:
			aOK, bOK = a.Next(), b.Next()
		}
	}
	for aOK {
		out = append(out, a.Key())
		aOK = a.Next()
	}
	for bOK {
		out = append(out, b.Key())
		bOK = b.Next()
	}
	return out
}

// IsSubset reports whether every element of s is an element of other.
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	subset := true
	s.Ascend(func(v T) bool {
		if !other.Contains(v) {
			subset = false
			return false
		}
		return true
	})
	return subset
}

// IsSuperset reports whether every element of other is an element of s.
func (s *Set[T]) IsSuperset(other *Set[T]) bool {
	return other.IsSubset(s)
}

// IsDisjoint reports whether s and other share no elements.
func (s *Set[T]) IsDisjoint(other *Set[T]) bool {
	disjoint := true
	s.Ascend(func(v T) bool {
		if other.Contains(v) {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint
}
