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

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestIterator(t *testing.T) {
	tr := NewOrdered[int, int](128)
	for _, k := range rand.Perm(100) {
		mustInsert(t, tr, k, k*2)
	}
	var keys, values []int
	for it := tr.Iter(); it.Next(); {
		keys = append(keys, it.Key())
		values = append(values, it.Value())
	}
	if want := intRange(100, false); !reflect.DeepEqual(keys, want) {
		t.Fatalf("iterator keys:\n got: %v\nwant: %v", keys, want)
	}
	for i, v := range values {
		if v != keys[i]*2 {
			t.Fatalf("iterator value at %d: got %d", i, v)
		}
	}
}

func TestIteratorEmpty(t *testing.T) {
	tr := NewOrdered[int, int](8)
	if tr.Iter().Next() {
		t.Fatal("empty iterator yielded an element")
	}
}

// Cursors are independent: advancing one must not move another.
func TestIteratorIndependent(t *testing.T) {
	tr := NewOrdered[int, int](16)
	for i := 0; i < 10; i++ {
		mustInsert(t, tr, i, i)
	}
	a, b := tr.Iter(), tr.Iter()
	a.Next()
	a.Next()
	a.Next()
	if !b.Next() || b.Key() != 0 {
		t.Fatalf("second cursor disturbed: got %d", b.Key())
	}
	if a.Key() != 2 {
		t.Fatalf("first cursor: got %d", a.Key())
	}
}

func TestIteratorExhaustion(t *testing.T) {
	tr := NewOrdered[int, int](8)
	mustInsert(t, tr, 1, 1)
	it := tr.Iter()
	if !it.Next() || it.Next() {
		t.Fatal("single-element cursor misbehaved")
	}
	// Next past exhaustion stays false.
	if it.Next() {
		t.Fatal("exhausted cursor yielded again")
	}
}

func TestAscendEarlyStop(t *testing.T) {
	tr := NewOrdered[int, int](64)
	for _, k := range rand.Perm(50) {
		mustInsert(t, tr, k, k)
	}
	var got []int
	tr.Ascend(func(k, _ int) bool {
		got = append(got, k)
		return len(got) < 7
	})
	if want := intRange(7, false); !reflect.DeepEqual(got, want) {
		t.Fatalf("early stop:\n got: %v\nwant: %v", got, want)
	}
}

func TestDescendEarlyStop(t *testing.T) {
	tr := NewOrdered[int, int](64)
	for _, k := range rand.Perm(50) {
		mustInsert(t, tr, k, k)
	}
	var got []int
	tr.Descend(func(k, _ int) bool {
		got = append(got, k)
		return len(got) < 3
	})
	if want := []int{49, 48, 47}; !reflect.DeepEqual(got, want) {
		t.Fatalf("early stop:\n got: %v\nwant: %v", got, want)
	}
}

func TestAscendRangeEmptyRange(t *testing.T) {
	tr := NewOrdered[int, int](64)
	for i := 0; i < 50; i++ {
		mustInsert(t, tr, i, i)
	}
	count := 0
	tr.AscendRange(30, 30, func(_, _ int) bool {
		count++
		return true
	})
	if count != 0 {
		t.Fatalf("empty range yielded %d keys", count)
	}
	tr.AscendRange(40, 30, func(_, _ int) bool {
		count++
		return true
	})
	if count != 0 {
		t.Fatalf("inverted range yielded %d keys", count)
	}
}
