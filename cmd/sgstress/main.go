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

// Command sgstress drives randomized insert/remove/find interleavings
// against both an sgtree.Map and a reference ordered tree (GoLLRB), and
// fails loudly on the first observable divergence: membership, stored
// value, length, or full in-order dump.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/petar/GoLLRB/llrb"

	"github.com/tnballo/sgtree"
)

var (
	ops        = flag.Int("ops", 100000, "number of random operations to run")
	capacity   = flag.Int("capacity", 4096, "fixed sgtree capacity")
	keySpace   = flag.Int64("keyspace", 1024, "keys are drawn from [0, keyspace)")
	seed       = flag.Int64("seed", 1, "random seed")
	checkEvery = flag.Int("check-every", 256, "full in-order comparison interval")
)

type pair struct {
	key, value int64
}

func (p pair) Less(than llrb.Item) bool {
	return p.key < than.(pair).key
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	subject := sgtree.NewOrderedMap[int64, int64](*capacity)
	reference := llrb.New()

	for i := 0; i < *ops; i++ {
		key := rng.Int63n(*keySpace)
		switch rng.Intn(3) {
		case 0: // insert
			value := rng.Int63()
			_, _, err := subject.Insert(key, value)
			if err != nil {
				if subject.Len() != *capacity {
					log.Fatalf("op %d: capacity error at len %d (capacity %d)", i, subject.Len(), *capacity)
				}
				continue // reference untouched, subject untouched
			}
			reference.ReplaceOrInsert(pair{key, value})
		case 1: // remove
			gotV, gotOK := subject.Delete(key)
			ref := reference.Delete(pair{key: key})
			if gotOK != (ref != nil) {
				log.Fatalf("op %d: delete(%d) presence mismatch: subject %v, reference %v", i, key, gotOK, ref != nil)
			}
			if ref != nil && gotV != ref.(pair).value {
				log.Fatalf("op %d: delete(%d) value mismatch: subject %d, reference %d", i, key, gotV, ref.(pair).value)
			}
		case 2: // find
			gotV, gotOK := subject.Get(key)
			ref := reference.Get(pair{key: key})
			if gotOK != (ref != nil) {
				log.Fatalf("op %d: get(%d) presence mismatch: subject %v, reference %v", i, key, gotOK, ref != nil)
			}
			if ref != nil && gotV != ref.(pair).value {
				log.Fatalf("op %d: get(%d) value mismatch: subject %d, reference %d", i, key, gotV, ref.(pair).value)
			}
		}

		if subject.Len() != reference.Len() {
			log.Fatalf("op %d: length mismatch: subject %d, reference %d", i, subject.Len(), reference.Len())
		}
		if (i+1)%*checkEvery == 0 {
			compareDump(i, subject, reference)
		}
	}
	compareDump(*ops, subject, reference)

	fmt.Fprintf(os.Stdout, "ok: %d ops, final len %d, height %d, %d rebuilds\n",
		*ops, subject.Len(), subject.Height(), subject.RebalanceCount())
}

func compareDump(op int, subject *sgtree.Map[int64, int64], reference *llrb.LLRB) {
	got := make([]pair, 0, subject.Len())
	subject.Ascend(func(k, v int64) bool {
		got = append(got, pair{k, v})
		return true
	})
	want := make([]pair, 0, reference.Len())
	reference.AscendGreaterOrEqual(pair{key: -1 << 62}, func(i llrb.Item) bool {
		want = append(want, i.(pair))
		return true
	})
	if len(got) != len(want) {
		log.Fatalf("op %d: dump length mismatch: subject %d, reference %d", op, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			log.Fatalf("op %d: dump mismatch at %d: subject %+v, reference %+v", op, i, got[i], want[i])
		}
	}
}
