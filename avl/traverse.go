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

package avl

import (
	"cmp"
	"fmt"
	"strings"
)

// Order selects a traversal order.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
	LevelOrder
)

var orderNames = map[Order]string{
	InOrder:    "in-order",
	PreOrder:   "pre-order",
	PostOrder:  "post-order",
	LevelOrder: "level-order",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "in", "inorder", "in-order" and the same spellings for
// the other three orders.
func ParseOrder(s string) (Order, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(strings.ReplaceAll(key, "-", ""), "order")
	switch key {
	case "in":
		return InOrder, nil
	case "pre":
		return PreOrder, nil
	case "post":
		return PostOrder, nil
	case "level", "bfs":
		return LevelOrder, nil
	}
	return InOrder, fmt.Errorf("unknown traversal order %q", s)
}

// Walk calls fn for every value in the given order until fn returns false.
// None of the orders recurse, so very deep trees cannot exhaust the stack.
func (t *Tree[T]) Walk(order Order, fn func(T) bool) {
	switch order {
	case PreOrder:
		walkPre(t.root, fn)
	case PostOrder:
		walkPost(t.root, fn)
	case LevelOrder:
		walkLevel(t.root, fn)
	default:
		walkIn(t.root, fn)
	}
}

// Traverse collects the values in the given order.
func (t *Tree[T]) Traverse(order Order) []T {
	out := make([]T, 0, t.size)
	t.Walk(order, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// InOrder returns values left-root-right, i.e. sorted ascending.
func (t *Tree[T]) InOrder() []T { return t.Traverse(InOrder) }

// PreOrder returns values root-left-right.
func (t *Tree[T]) PreOrder() []T { return t.Traverse(PreOrder) }

// PostOrder returns values left-right-root.
func (t *Tree[T]) PostOrder() []T { return t.Traverse(PostOrder) }

// LevelOrder returns values top to bottom, left to right.
func (t *Tree[T]) LevelOrder() []T { return t.Traverse(LevelOrder) }

func walkIn[T cmp.Ordered](root *node[T], fn func(T) bool) {
	var stack []*node[T]
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.value) {
			return
		}
		n = n.right
	}
}

func walkPre[T cmp.Ordered](root *node[T], fn func(T) bool) {
	if root == nil {
		return
	}
	stack := []*node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.value) {
			return
		}
		// right first so that left is popped first
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func walkPost[T cmp.Ordered](root *node[T], fn func(T) bool) {
	var stack []*node[T]
	var last *node[T]
	n := root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		if !fn(top.value) {
			return
		}
		last = top
		stack = stack[:len(stack)-1]
	}
}

// walkLevel enqueues both children of every node, empty or not, and only
// emits values for nodes that are present.
func walkLevel[T cmp.Ordered](root *node[T], fn func(T) bool) {
	queue := []*node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			continue
		}
		if !fn(n.value) {
			return
		}
		queue = append(queue, n.left, n.right)
	}
}

// Levels returns the nodes grouped by depth, each level left to right.
// It is the snapshot the presentation layer lays out and draws.
func (t *Tree[T]) Levels() [][]NodeView[T] {
	if t.root == nil {
		return nil
	}

	var levels [][]NodeView[T]
	current := []*node[T]{t.root}
	for depth := 0; len(current) > 0; depth++ {
		row := make([]NodeView[T], 0, len(current))
		var next []*node[T]
		for _, n := range current {
			row = append(row, n.view(depth))
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		levels = append(levels, row)
		current = next
	}
	return levels
}

// Slots is like Levels but keeps a position for every empty child down to
// the deepest level, so slot i of level d has children 2i and 2i+1 on level
// d+1. A nil entry marks an empty position.
func (t *Tree[T]) Slots() [][]*NodeView[T] {
	h := height(t.root)
	if h == 0 {
		return nil
	}

	slots := make([][]*NodeView[T], h)
	current := []*node[T]{t.root}
	for depth := 0; depth < h; depth++ {
		row := make([]*NodeView[T], len(current))
		next := make([]*node[T], 0, 2*len(current))
		for i, n := range current {
			if n != nil {
				v := n.view(depth)
				row[i] = &v
				next = append(next, n.left, n.right)
			} else {
				next = append(next, nil, nil)
			}
		}
		slots[depth] = row
		current = next
	}
	return slots
}
