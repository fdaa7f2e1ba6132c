package sim

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/ivlev/note2video/internal/extract"
)

// HashBuckets is the fixed bucket count of the hash table model.
const HashBuckets = 7

// HashState is a chained hash table with a fixed bucket array. Collisions
// counts inserts that landed in an already occupied bucket.
type HashState struct {
	Buckets    [HashBuckets][]string
	Collisions int
}

func (h *HashState) Kind() extract.Kind { return extract.KindHash }

func (h *HashState) Clone() State {
	next := &HashState{Collisions: h.Collisions}
	for i := range h.Buckets {
		next.Buckets[i] = cloneStrings(h.Buckets[i])
	}
	return next
}

func (h *HashState) Summary() string {
	return fmt.Sprintf("%d keys in %d buckets, %d collisions", h.Size(), HashBuckets, h.Collisions)
}

// Size returns the total key count across buckets.
func (h *HashState) Size() int {
	n := 0
	for i := range h.Buckets {
		n += len(h.Buckets[i])
	}
	return n
}

// LoadFactor returns keys per bucket.
func (h *HashState) LoadFactor() float64 {
	return float64(h.Size()) / HashBuckets
}

// BucketFor maps a key to its bucket: numeric keys use the value modulo the
// bucket count (the formula shown on screen), other keys hash with FNV-32a
// so the same key always lands in the same bucket.
func BucketFor(key string) int {
	if n, err := strconv.Atoi(key); err == nil {
		return ((n % HashBuckets) + HashBuckets) % HashBuckets
	}
	f := fnv.New32a()
	f.Write([]byte(key))
	return int(f.Sum32() % HashBuckets)
}

func bucketContains(bucket []string, key string) bool {
	for _, k := range bucket {
		if k == key {
			return true
		}
	}
	return false
}

type hashSim struct{}

func (hashSim) Kind() extract.Kind { return extract.KindHash }

func (hashSim) Initial() State { return &HashState{} }

func (hashSim) Apply(st State, op extract.Operation) (State, string, string) {
	cur := st.(*HashState)
	next := cur.Clone().(*HashState)
	b := BucketFor(op.Value)

	switch op.Code {
	case extract.OpHashInsert:
		if bucketContains(next.Buckets[b], op.Value) {
			return next, op.Value, fmt.Sprintf("key %s already in bucket %d", op.Value, b)
		}
		collision := len(next.Buckets[b]) > 0
		next.Buckets[b] = append(next.Buckets[b], op.Value)
		if collision {
			next.Collisions++
			return next, op.Value, fmt.Sprintf("inserted %s at bucket %d (collision)", op.Value, b)
		}
		return next, op.Value, fmt.Sprintf("inserted %s at bucket %d", op.Value, b)

	case extract.OpHashSearch:
		if bucketContains(next.Buckets[b], op.Value) {
			return next, op.Value, fmt.Sprintf("found %s in bucket %d", op.Value, b)
		}
		return next, "", fmt.Sprintf("key %s not found (bucket %d)", op.Value, b)

	case extract.OpHashDelete:
		for i, k := range next.Buckets[b] {
			if k == op.Value {
				next.Buckets[b] = append(next.Buckets[b][:i], next.Buckets[b][i+1:]...)
				return next, op.Value, fmt.Sprintf("deleted %s from bucket %d", op.Value, b)
			}
		}
		return next, "", fmt.Sprintf("delete of missing key %s ignored (bucket %d)", op.Value, b)
	}
	return next, "", fmt.Sprintf("unsupported hash operation %s ignored", op)
}
