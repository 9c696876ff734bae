// Copyright 2025 Naren Yellavula
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

package structures

import (
	"crypto/sha256"
	"math/big"

	"github.com/willf/bloom"
)

const (
	DefaultCapacity = 10

	// sizing of the negative-lookup filter; it only has to be roughly right
	bloomExpectedKeys  = 1024
	bloomFalsePositive = 0.01
)

// Entry is one key/value pair in a bucket chain.
type Entry struct {
	Key   string
	Value string
}

// HashTable maps string keys to string values. The bucket of a key is its
// SHA-256 digest, read as a big-endian integer, modulo the capacity.
// Collisions are chained in insertion order.
type HashTable struct {
	buckets  [][]Entry
	size     int
	seen     *bloom.BloomFilter // every key inserted since the last Clear
	capacity *big.Int
}

// NewHashTable returns a table with the given number of buckets. A
// non-positive capacity falls back to DefaultCapacity.
func NewHashTable(capacity int) *HashTable {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &HashTable{
		buckets:  make([][]Entry, capacity),
		seen:     bloom.NewWithEstimates(bloomExpectedKeys, bloomFalsePositive),
		capacity: big.NewInt(int64(capacity)),
	}
}

// Index returns the bucket key hashes to.
func (h *HashTable) Index(key string) int {
	sum := sha256.Sum256([]byte(key))
	n := new(big.Int).SetBytes(sum[:])
	return int(n.Mod(n, h.capacity).Int64())
}

// Insert stores value under key, replacing the value of an existing key in
// place.
func (h *HashTable) Insert(key, value string) {
	idx := h.Index(key)
	for i, e := range h.buckets[idx] {
		if e.Key == key {
			h.buckets[idx][i].Value = value
			return
		}
	}
	h.buckets[idx] = append(h.buckets[idx], Entry{Key: key, Value: value})
	h.seen.AddString(key)
	h.size++
}

// Search returns the value stored under key together with its bucket and
// its position inside the bucket chain.
func (h *HashTable) Search(key string) (value string, bucket, slot int, ok bool) {
	if !h.seen.TestString(key) {
		return "", -1, -1, false
	}
	idx := h.Index(key)
	for i, e := range h.buckets[idx] {
		if e.Key == key {
			return e.Value, idx, i, true
		}
	}
	return "", -1, -1, false
}

// Remove deletes key and reports whether it was present.
func (h *HashTable) Remove(key string) bool {
	if !h.seen.TestString(key) {
		return false
	}
	idx := h.Index(key)
	chain := h.buckets[idx]
	for i, e := range chain {
		if e.Key == key {
			h.buckets[idx] = append(chain[:i], chain[i+1:]...)
			h.size--
			return true
		}
	}
	return false
}

func (h *HashTable) Len() int      { return h.size }
func (h *HashTable) Capacity() int { return len(h.buckets) }

// Clear empties every bucket and resets the lookup filter.
func (h *HashTable) Clear() {
	h.buckets = make([][]Entry, len(h.buckets))
	h.seen.ClearAll()
	h.size = 0
}

// Buckets returns a copy of every chain, indexed by bucket.
func (h *HashTable) Buckets() [][]Entry {
	out := make([][]Entry, len(h.buckets))
	for i, chain := range h.buckets {
		out[i] = append([]Entry(nil), chain...)
	}
	return out
}
