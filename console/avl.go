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
	"strconv"
	"strings"

	"github.com/cybrota/arbor/avl"
)

// AVLHandler drives an AVL tree of int64 values.
//
// The highlighted node is remembered by value and looked up again on every
// snapshot, so rotations and deletions can never leave it dangling.
type AVLHandler struct {
	tree     *avl.Tree[int64]
	selected *int64
}

func NewAVLHandler() *AVLHandler {
	return &AVLHandler{tree: avl.New[int64]()}
}

func (h *AVLHandler) Name() string  { return "avl" }
func (h *AVLHandler) Title() string { return "AVL Tree" }

func (h *AVLHandler) Tree() *avl.Tree[int64] { return h.tree }

func (h *AVLHandler) Verbs() []Verb {
	return []Verb{
		{"insert", "<int>...", "insert one or more values and rebalance"},
		{"delete", "<int>", "delete one occurrence of a value"},
		{"search", "<int>", "find a value and highlight its node"},
		{"clear", "", "remove every node"},
		{"inorder", "", "list values left, root, right"},
		{"preorder", "", "list values root, left, right"},
		{"postorder", "", "list values left, right, root"},
		{"levelorder", "", "list values top to bottom"},
		{"validate", "", "check order, balance and heights"},
	}
}

func (h *AVLHandler) Handle(cmd *Command) Result {
	switch cmd.Verb {
	case "insert", "add":
		values, err := parseInts(cmd.Args)
		if err != nil {
			return fail(err)
		}
		for _, v := range values {
			h.tree.Insert(v)
		}
		return ok("Inserted %s (%d nodes, height %d)", formatValues(values), h.tree.Len(), h.tree.Height())

	case "delete", "del", "rm":
		v, err := singleInt(cmd)
		if err != nil {
			return fail(err)
		}
		if !h.tree.Delete(v) {
			return notFound(strconv.FormatInt(v, 10))
		}
		return ok("Deleted %d (%d nodes, height %d)", v, h.tree.Len(), h.tree.Height())

	case "search", "find":
		v, err := singleInt(cmd)
		if err != nil {
			return fail(err)
		}
		visited, found := h.tree.Probe(v)
		if !found {
			h.selected = nil
			return notFound(fmt.Sprintf("%d (checked %d nodes)", v, visited))
		}
		h.selected = &v
		view, _ := h.tree.Search(v)
		return ok("Found %d at depth %d (height %d, balance %d)", v, view.Depth, view.Height, view.Balance)

	case "clear":
		h.tree.Clear()
		h.selected = nil
		return ok("Cleared AVL tree")

	case "validate", "check":
		if err := h.tree.Validate(); err != nil {
			return fail(err)
		}
		return ok("AVL invariants hold (%d nodes, height %d)", h.tree.Len(), h.tree.Height())

	case "traverse":
		if !cmd.HasArgs(1) {
			return fail(fmt.Errorf("%w: traverse needs an order", ErrInvalidInput))
		}
		return h.traverse(cmd.Arg(0))
	}

	if strings.HasSuffix(cmd.Verb, "order") || cmd.Verb == "bfs" {
		return h.traverse(cmd.Verb)
	}
	return unknownVerb(h, cmd.Verb)
}

func (h *AVLHandler) traverse(name string) Result {
	order, err := avl.ParseOrder(name)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}
	return ok("%s: %s", order, formatValues(h.tree.Traverse(order)))
}

// Selected reports the highlighted node, resolved against the current tree.
func (h *AVLHandler) Selected() (avl.NodeView[int64], bool) {
	if h.selected == nil {
		return avl.NodeView[int64]{}, false
	}
	view, found := h.tree.Search(*h.selected)
	if !found {
		h.selected = nil
	}
	return view, found
}

// Snapshot lays the tree out in slots. Trees taller than MaxSlotDepth
// are returned level by level with no empty positions, since the slot
// rows grow as 2^depth.
func (h *AVLHandler) Snapshot() Snapshot {
	sel, hasSel := h.Selected()
	marked := false
	cell := func(v avl.NodeView[int64]) *Cell {
		c := &Cell{
			Label: strconv.FormatInt(v.Value, 10),
			Note:  fmt.Sprintf("h=%d", v.Height),
		}
		if hasSel && !marked && v.Depth == sel.Depth && v.Value == sel.Value {
			c.Selected, marked = true, true
		}
		return c
	}

	if h.tree.Height() > MaxSlotDepth {
		levels := h.tree.Levels()
		rows := make([][]*Cell, len(levels))
		for d, level := range levels {
			rows[d] = make([]*Cell, len(level))
			for i, v := range level {
				rows[d][i] = cell(v)
			}
		}
		return TreeSnapshot{Rows: rows}
	}

	slots := h.tree.Slots()
	rows := make([][]*Cell, len(slots))
	for d, row := range slots {
		rows[d] = make([]*Cell, len(row))
		for i, v := range row {
			if v != nil {
				rows[d][i] = cell(*v)
			}
		}
	}
	return TreeSnapshot{Rows: rows}
}
