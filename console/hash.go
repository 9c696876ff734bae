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

package console

import (
	"fmt"

	"github.com/cybrota/arbor/structures"
)

// HashHandler drives a chained hash table. insert stores Value(<key>) under
// the key.
type HashHandler struct {
	table    *structures.HashTable
	selected *string
}

func NewHashHandler(capacity int) *HashHandler {
	return &HashHandler{table: structures.NewHashTable(capacity)}
}

func (h *HashHandler) Name() string  { return "hash" }
func (h *HashHandler) Title() string { return "Hash Table" }

func (h *HashHandler) Table() *structures.HashTable { return h.table }

func (h *HashHandler) Verbs() []Verb {
	return []Verb{
		{"insert", "<key>", "store Value(<key>) in the key's bucket"},
		{"search", "<key>", "find a key and highlight its slot"},
		{"remove", "<key>", "unlink a key from its chain"},
		{"clear", "", "empty every bucket"},
	}
}

func (h *HashHandler) Handle(cmd *Command) Result {
	switch cmd.Verb {
	case "insert", "add", "put":
		key, err := requireText(cmd, "key")
		if err != nil {
			return fail(err)
		}
		h.table.Insert(key, valueFor(key))
		return ok("Inserted %q into bucket %d", key, h.table.Index(key))
	case "search", "find", "get":
		key, err := requireText(cmd, "key")
		if err != nil {
			return fail(err)
		}
		value, bucket, slot, found := h.table.Search(key)
		if !found {
			h.selected = nil
			return notFound(fmt.Sprintf("%q (bucket %d)", key, h.table.Index(key)))
		}
		h.selected = &key
		return ok("Found %q = %q at bucket %d, slot %d", key, value, bucket, slot)
	case "remove", "delete", "rm":
		key, err := requireText(cmd, "key")
		if err != nil {
			return fail(err)
		}
		if !h.table.Remove(key) {
			return notFound(fmt.Sprintf("%q", key))
		}
		return ok("Removed %q from bucket %d", key, h.table.Index(key))
	case "clear":
		h.table.Clear()
		h.selected = nil
		return ok("Cleared hash table")
	}
	return unknownVerb(h, cmd.Verb)
}

func valueFor(key string) string {
	return fmt.Sprintf("Value(%s)", key)
}

func (h *HashHandler) Snapshot() Snapshot {
	snap := TableSnapshot{Buckets: h.table.Buckets(), SelectedBucket: -1, SelectedSlot: -1}
	if h.selected != nil {
		if _, bucket, slot, found := h.table.Search(*h.selected); found {
			snap.SelectedBucket, snap.SelectedSlot = bucket, slot
		} else {
			h.selected = nil
		}
	}
	return snap
}
