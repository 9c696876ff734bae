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

package main

import (
	"fmt"
	"strings"

	"github.com/cybrota/arbor/console"
)

var structureNotes = map[string]string{
	"avl": `A self-balancing binary search tree. After every insert or delete the
heights of the two subtrees of any node differ by at most one, restored with
single or double rotations. Search, insert and delete run in O(log n).
Equal values go to the right subtree. Each node shows its height as h=N.`,
	"bintree": `A complete binary tree: every level is full except possibly the last,
which fills from the left. Insert takes the first free slot in level order.
Delete copies the deepest node's value over the deleted one and removes the
deepest node, so the tree stays complete. Search is breadth first, O(n).`,
	"stack": `Last in, first out. push and pop work on the top in O(1).`,
	"queue": `First in, first out. enqueue adds at the back and dequeue takes from
the front, both in O(1).`,
	"list": `A singly linked list. prepend is O(1); append, remove and search walk
the chain.`,
	"hash": `A fixed number of buckets with separate chaining. A key's bucket is its
SHA-256 digest, read as a big-endian integer, modulo the bucket count.
Inserting an existing key replaces its value.`,
}

// getStructureHelp builds the markdown help page for a structure.
func getStructureHelp(h console.Handler) (string, error) {
	if h == nil {
		return "", fmt.Errorf("no structure selected")
	}

	var b strings.Builder
	b.WriteString(console.Markdown(h))
	if note, ok := structureNotes[h.Name()]; ok {
		fmt.Fprintf(&b, "\n## About\n\n%s\n", note)
	}
	b.WriteString("\n## Keys\n\n")
	b.WriteString("* **enter** run the command line\n")
	b.WriteString("* **tab / shift+tab** next or previous structure\n")
	b.WriteString("* **up / down** recall earlier command lines\n")
	b.WriteString("* **ctrl+y** copy the status line\n")
	b.WriteString("* **f1** toggle this help\n")
	b.WriteString("* **esc** quit\n")
	return b.String(), nil
}
