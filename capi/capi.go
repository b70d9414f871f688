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

// C-callable entry points over the ordered map, for cross-language embedding.
// Build with:
//
//	go build -buildmode=c-shared -o libsgtree.so ./capi
//
// Only fixed-size primitives and opaque handles cross the boundary: a caller
// holds a uint64 handle from sg_map_new and threads it through every call.
// Raw internal pointers are never exposed, so the arena invariants cannot be
// violated from foreign code.  Handles are registry-backed; there is no
// hidden global tree state beyond the registry itself.
//
// Every function returns a status code: 0 on success, SG_ERR_FULL when the
// fixed capacity is exhausted, SG_ERR_NOT_FOUND for absent keys, and
// SG_ERR_BAD_HANDLE for a stale or unknown handle.
package main

/*
#include <stdint.h>

#define SG_OK             0
#define SG_ERR_FULL      -1
#define SG_ERR_NOT_FOUND -2
#define SG_ERR_BAD_HANDLE -3
*/
import "C"

import (
	"errors"
	"math"
	"sync"

	"github.com/tnballo/sgtree"
)

const (
	sgOK           = 0
	sgErrFull      = -1
	sgErrNotFound  = -2
	sgErrBadHandle = -3
)

var registry = struct {
	sync.Mutex
	next uint64
	maps map[uint64]*sgtree.Map[int64, int64]
}{maps: make(map[uint64]*sgtree.Map[int64, int64])}

func lookup(handle C.uint64_t) *sgtree.Map[int64, int64] {
	registry.Lock()
	defer registry.Unlock()
	return registry.maps[uint64(handle)]
}

// sg_map_new creates an ordered map with the given fixed capacity and
// returns its handle.  A handle of 0 is never issued.
//
//export sg_map_new
func sg_map_new(capacity C.uint64_t) C.uint64_t {
	m := sgtree.NewOrderedMap[int64, int64](int(capacity))
	registry.Lock()
	defer registry.Unlock()
	registry.next++
	registry.maps[registry.next] = m
	return C.uint64_t(registry.next)
}

// sg_map_destroy releases the map behind handle.  The handle is invalid
// afterwards.
//
//export sg_map_destroy
func sg_map_destroy(handle C.uint64_t) C.int32_t {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.maps[uint64(handle)]; !ok {
		return sgErrBadHandle
	}
	delete(registry.maps, uint64(handle))
	return sgOK
}

// sg_map_insert adds or replaces key/value.
//
//export sg_map_insert
func sg_map_insert(handle C.uint64_t, key, value C.int64_t) C.int32_t {
	m := lookup(handle)
	if m == nil {
		return sgErrBadHandle
	}
	if _, _, err := m.Insert(int64(key), int64(value)); err != nil {
		if errors.Is(err, sgtree.ErrCapacityExceeded) {
			return sgErrFull
		}
		return sgErrBadHandle
	}
	return sgOK
}

// sg_map_get writes the value stored for key to *value_out.
//
//export sg_map_get
func sg_map_get(handle C.uint64_t, key C.int64_t, valueOut *C.int64_t) C.int32_t {
	m := lookup(handle)
	if m == nil {
		return sgErrBadHandle
	}
	v, ok := m.Get(int64(key))
	if !ok {
		return sgErrNotFound
	}
	*valueOut = C.int64_t(v)
	return sgOK
}

// sg_map_remove deletes key, writing the removed value to *value_out.
//
//export sg_map_remove
func sg_map_remove(handle C.uint64_t, key C.int64_t, valueOut *C.int64_t) C.int32_t {
	m := lookup(handle)
	if m == nil {
		return sgErrBadHandle
	}
	v, ok := m.Delete(int64(key))
	if !ok {
		return sgErrNotFound
	}
	*valueOut = C.int64_t(v)
	return sgOK
}

// sg_map_len writes the current entry count to *len_out.
//
//export sg_map_len
func sg_map_len(handle C.uint64_t, lenOut *C.uint64_t) C.int32_t {
	m := lookup(handle)
	if m == nil {
		return sgErrBadHandle
	}
	*lenOut = C.uint64_t(m.Len())
	return sgOK
}

// sg_map_first writes the minimum key and its value to the out parameters.
//
//export sg_map_first
func sg_map_first(handle C.uint64_t, keyOut, valueOut *C.int64_t) C.int32_t {
	m := lookup(handle)
	if m == nil {
		return sgErrBadHandle
	}
	k, v, ok := m.Min()
	if !ok {
		return sgErrNotFound
	}
	*keyOut = C.int64_t(k)
	*valueOut = C.int64_t(v)
	return sgOK
}

// sg_map_next writes the smallest entry with key strictly greater than prev
// to the out parameters.  Stepping sg_map_first/sg_map_next to SG_ERR_NOT_FOUND
// iterates the map in ascending order without an iterator handle whose
// lifetime would have to be managed across the boundary.
//
//export sg_map_next
func sg_map_next(handle C.uint64_t, prev C.int64_t, keyOut, valueOut *C.int64_t) C.int32_t {
	m := lookup(handle)
	if m == nil {
		return sgErrBadHandle
	}
	if int64(prev) == math.MaxInt64 {
		return sgErrNotFound
	}
	found := false
	var fk, fv int64
	m.AscendGreaterOrEqual(int64(prev)+1, func(k, v int64) bool {
		fk, fv = k, v
		found = true
		return false
	})
	if !found {
		return sgErrNotFound
	}
	*keyOut = C.int64_t(fk)
	*valueOut = C.int64_t(fv)
	return sgOK
}

func main() {}
