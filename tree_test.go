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
	"flag"
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

var treeCapacity = flag.Int("capacity", 512, "tree capacity used by tests")

func intRange(s int, reverse bool) []int {
	out := make([]int, s)
	for i := 0; i < s; i++ {
		v := i
		if reverse {
			v = s - i - 1
		}
		out[i] = v
	}
	return out
}

func allKeys(t *Tree[int, int]) (out []int) {
	t.Ascend(func(k, _ int) bool {
		out = append(out, k)
		return true
	})
	return
}

func allKeysRev(t *Tree[int, int]) (out []int) {
	t.Descend(func(k, _ int) bool {
		out = append(out, k)
		return true
	})
	return
}

func mustInsert(t *testing.T, tr *Tree[int, int], key, value int) (int, bool) {
	t.Helper()
	old, replaced, err := tr.Insert(key, value)
	if err != nil {
		t.Fatalf("insert %d: %v", key, err)
	}
	return old, replaced
}

func TestTree(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	const treeSize = 100
	for i := 0; i < 10; i++ {
		if _, _, ok := tr.Min(); ok {
			t.Fatalf("empty min, got ok")
		}
		if _, _, ok := tr.Max(); ok {
			t.Fatalf("empty max, got ok")
		}
		for _, item := range rand.Perm(treeSize) {
			if _, replaced := mustInsert(t, tr, item, item); replaced {
				t.Fatal("insert found item", item)
			}
		}
		for _, item := range rand.Perm(treeSize) {
			old, replaced := mustInsert(t, tr, item, item*10)
			if !replaced || old != item {
				t.Fatal("insert didn't find item", item)
			}
		}
		if k, v, ok := tr.Min(); !ok || k != 0 || v != 0 {
			t.Fatalf("min: ok %v got %v/%v", ok, k, v)
		}
		if k, v, ok := tr.Max(); !ok || k != treeSize-1 || v != (treeSize-1)*10 {
			t.Fatalf("max: ok %v got %v/%v", ok, k, v)
		}
		got := allKeys(tr)
		want := intRange(treeSize, false)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
		}
		gotrev := allKeysRev(tr)
		wantrev := intRange(treeSize, true)
		if !reflect.DeepEqual(gotrev, wantrev) {
			t.Fatalf("mismatch:\n got: %v\nwant: %v", gotrev, wantrev)
		}
		for _, item := range rand.Perm(treeSize) {
			if v, ok := tr.Delete(item); !ok || v != item*10 {
				t.Fatalf("didn't find %v", item)
			}
		}
		if got = allKeys(tr); len(got) > 0 {
			t.Fatalf("some left!: %v", got)
		}
		if tr.Len() != 0 {
			t.Fatalf("len: want 0 got %d", tr.Len())
		}
	}
}

func ExampleMap() {
	m := NewOrderedMap[int, string](8)
	for i := 0; i < 5; i++ {
		m.Insert(i, fmt.Sprint("v", i))
	}
	fmt.Println("len: ", m.Len())
	v, ok := m.Get(3)
	fmt.Println("get3:", v, ok)
	v, ok = m.Delete(4)
	fmt.Println("del4:", v, ok)
	_, ok = m.Get(4)
	fmt.Println("get4:", ok)
	k, v, ok := m.Min()
	fmt.Println("min: ", k, v, ok)
	k, v, ok = m.DeleteMax()
	fmt.Println("max: ", k, v, ok)
	fmt.Println("len: ", m.Len())
	// Output:
	// len:  5
	// get3: v3 true
	// del4: v4 true
	// get4: false
	// min:  0 v0 true
	// max:  3 v3 true
	// len:  3
}

func TestDeleteMin(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	var got []int
	for k, _, ok := tr.DeleteMin(); ok; k, _, ok = tr.DeleteMin() {
		got = append(got, k)
	}
	if want := intRange(100, false); !reflect.DeepEqual(got, want) {
		t.Fatalf("deletemin:\n got: %v\nwant: %v", got, want)
	}
}

func TestDeleteMax(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	var got []int
	for k, _, ok := tr.DeleteMax(); ok; k, _, ok = tr.DeleteMax() {
		got = append(got, k)
	}
	if want := intRange(100, true); !reflect.DeepEqual(got, want) {
		t.Fatalf("deletemax:\n got: %v\nwant: %v", got, want)
	}
}

func TestAscendRange(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	var got []int
	tr.AscendRange(40, 60, func(k, _ int) bool {
		got = append(got, k)
		return true
	})
	if want := intRange(100, false)[40:60]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	tr.AscendRange(40, 60, func(k, _ int) bool {
		if k > 50 {
			return false
		}
		got = append(got, k)
		return true
	})
	if want := intRange(100, false)[40:51]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendrange:\n got: %v\nwant: %v", got, want)
	}
}

func TestDescendRange(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	var got []int
	tr.DescendRange(60, 40, func(k, _ int) bool {
		got = append(got, k)
		return true
	})
	if want := intRange(100, true)[39:59]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendrange:\n got: %v\nwant: %v", got, want)
	}
	got = got[:0]
	tr.DescendRange(60, 40, func(k, _ int) bool {
		if k < 50 {
			return false
		}
		got = append(got, k)
		return true
	})
	if want := intRange(100, true)[39:50]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendrange:\n got: %v\nwant: %v", got, want)
	}
}

func TestAscendLessThan(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	var got []int
	tr.AscendLessThan(60, func(k, _ int) bool {
		got = append(got, k)
		return true
	})
	if want := intRange(100, false)[:60]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendlessthan:\n got: %v\nwant: %v", got, want)
	}
}

func TestDescendLessOrEqual(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	var got []int
	tr.DescendLessOrEqual(40, func(k, _ int) bool {
		got = append(got, k)
		return true
	})
	if want := intRange(100, true)[59:]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendlessorequal:\n got: %v\nwant: %v", got, want)
	}
}

func TestAscendGreaterOrEqual(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	var got []int
	tr.AscendGreaterOrEqual(40, func(k, _ int) bool {
		got = append(got, k)
		return true
	})
	if want := intRange(100, false)[40:]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascendgreaterorequal:\n got: %v\nwant: %v", got, want)
	}
}

func TestDescendGreaterThan(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	var got []int
	tr.DescendGreaterThan(40, func(k, _ int) bool {
		got = append(got, k)
		return true
	})
	if want := intRange(100, true)[:59]; !reflect.DeepEqual(got, want) {
		t.Fatalf("descendgreaterthan:\n got: %v\nwant: %v", got, want)
	}
}

func TestClear(t *testing.T) {
	tr := NewOrdered[int, int](*treeCapacity)
	for _, v := range rand.Perm(100) {
		mustInsert(t, tr, v, v)
	}
	tr.Clear()
	if tr.Len() != 0 || !tr.IsEmpty() {
		t.Fatalf("clear left %d entries", tr.Len())
	}
	// Capacity must be fully reusable after a clear.
	for _, v := range rand.Perm(*treeCapacity) {
		mustInsert(t, tr, v, v)
	}
	if !tr.IsFull() {
		t.Fatalf("want full after %d inserts, len %d", *treeCapacity, tr.Len())
	}
}

func TestCustomLess(t *testing.T) {
	// Reverse ordering: iteration ascends by the supplied less, so keys
	// come out descending numerically.
	tr := New[int, int](64, func(a, b int) bool { return a > b })
	for _, v := range rand.Perm(50) {
		mustInsert(t, tr, v, v)
	}
	got := allKeys(tr)
	if want := intRange(50, true); !reflect.DeepEqual(got, want) {
		t.Fatalf("custom less:\n got: %v\nwant: %v", got, want)
	}
	if k, _, ok := tr.Min(); !ok || k != 49 {
		t.Fatalf("min under reverse ordering: got %d", k)
	}
}

const benchmarkTreeSize = 10000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tr := NewOrdered[int, int](benchmarkTreeSize)
		for _, item := range insertP {
			tr.Insert(item, item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkGet(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	probeP := rand.Perm(benchmarkTreeSize)
	tr := NewOrdered[int, int](benchmarkTreeSize)
	for _, v := range insertP {
		tr.Insert(v, v)
	}
	b.StartTimer()
	i := 0
	for i < b.N {
		for _, item := range probeP {
			tr.Get(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	tr := NewOrdered[int, int](benchmarkTreeSize)
	for _, item := range insertP {
		tr.Insert(item, item)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Delete(insertP[i%benchmarkTreeSize])
		tr.Insert(insertP[i%benchmarkTreeSize], i)
	}
}

func BenchmarkAscend(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	tr := NewOrdered[int, int](benchmarkTreeSize)
	for _, v := range arr {
		tr.Insert(v, v)
	}
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		tr.Ascend(func(k, _ int) bool {
			if k != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], k)
			}
			j++
			return true
		})
	}
}
