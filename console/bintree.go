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
	"strconv"

	"github.com/cybrota/arbor/structures"
)

// BinaryTreeHandler drives a complete binary tree of int64 values.
type BinaryTreeHandler struct {
	tree     *structures.BinaryTree[int64]
	seed     *int64
	selected *int64
}

// NewBinaryTreeHandler starts from seed as the root when it is not nil.
// clear brings the seed back.
func NewBinaryTreeHandler(seed *int64) *BinaryTreeHandler {
	h := &BinaryTreeHandler{seed: seed}
	h.reset()
	return h
}

func (h *BinaryTreeHandler) reset() {
	if h.seed != nil {
		h.tree = structures.NewBinaryTree(*h.seed)
	} else {
		h.tree = structures.NewBinaryTree[int64]()
	}
	h.selected = nil
}

func (h *BinaryTreeHandler) Name() string  { return "bintree" }
func (h *BinaryTreeHandler) Title() string { return "Binary Tree" }

func (h *BinaryTreeHandler) Tree() *structures.BinaryTree[int64] { return h.tree }

func (h *BinaryTreeHandler) Verbs() []Verb {
	return []Verb{
		{"insert", "<int>...", "fill the next free slot, left to right"},
		{"delete", "<int>", "replace a value with the deepest node's value"},
		{"search", "<int>", "find a value breadth first"},
		{"clear", "", "reset to the configured root"},
		{"inorder", "", "list values left, root, right"},
		{"preorder", "", "list values root, left, right"},
		{"postorder", "", "list values left, right, root"},
		{"levelorder", "", "list values top to bottom"},
	}
}

func (h *BinaryTreeHandler) Handle(cmd *Command) Result {
	switch cmd.Verb {
	case "insert", "add":
		values, err := parseInts(cmd.Args)
		if err != nil {
			return fail(err)
		}
		for _, v := range values {
			h.tree.Insert(v)
		}
		return ok("Inserted %s (%d nodes)", formatValues(values), h.tree.Len())

	case "delete", "del", "rm":
		v, err := singleInt(cmd)
		if err != nil {
			return fail(err)
		}
		if !h.tree.Delete(v) {
			return notFound(strconv.FormatInt(v, 10))
		}
		return ok("Deleted %d (%d nodes)", v, h.tree.Len())

	case "search", "find":
		v, err := singleInt(cmd)
		if err != nil {
			return fail(err)
		}
		pos, found := h.tree.Search(v)
		if !found {
			h.selected = nil
			return notFound(strconv.FormatInt(v, 10))
		}
		h.selected = &v
		return ok("Found %d at level-order position %d", v, pos)

	case "clear":
		h.reset()
		return ok("Cleared binary tree")

	case "inorder", "in-order":
		return ok("in-order: %s", formatValues(h.tree.InOrder()))
	case "preorder", "pre-order":
		return ok("pre-order: %s", formatValues(h.tree.PreOrder()))
	case "postorder", "post-order":
		return ok("post-order: %s", formatValues(h.tree.PostOrder()))
	case "levelorder", "level-order", "bfs":
		return ok("level-order: %s", formatValues(h.tree.LevelOrder()))
	}
	return unknownVerb(h, cmd.Verb)
}

func (h *BinaryTreeHandler) Snapshot() Snapshot {
	selected := -1
	if h.selected != nil {
		if pos, found := h.tree.Search(*h.selected); found {
			selected = pos
		} else {
			h.selected = nil
		}
	}

	levels := h.tree.Levels()
	rows := make([][]*Cell, len(levels))
	pos := 0
	for d, level := range levels {
		rows[d] = make([]*Cell, 1<<d)
		for i, v := range level {
			rows[d][i] = &Cell{
				Label:    strconv.FormatInt(v, 10),
				Selected: pos == selected,
			}
			pos++
		}
	}
	return TreeSnapshot{Rows: rows}
}
