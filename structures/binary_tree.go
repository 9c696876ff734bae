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

type treeNode[T comparable] struct {
	value       T
	left, right *treeNode[T]
}

// BinaryTree is an unordered binary tree kept complete: values fill the
// first free slot in level order, and deletes backfill from the deepest,
// right-most node. Searches are breadth-first.
type BinaryTree[T comparable] struct {
	root *treeNode[T]
	size int
}

// NewBinaryTree returns a tree holding seed in level order.
func NewBinaryTree[T comparable](seed ...T) *BinaryTree[T] {
	t := &BinaryTree[T]{}
	for _, v := range seed {
		t.Insert(v)
	}
	return t
}

// Insert puts v into the first vacant position in level order.
func (t *BinaryTree[T]) Insert(v T) {
	t.size++
	n := &treeNode[T]{value: v}
	if t.root == nil {
		t.root = n
		return
	}

	queue := []*treeNode[T]{t.root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.left == nil {
			cur.left = n
			return
		}
		queue = append(queue, cur.left)
		if cur.right == nil {
			cur.right = n
			return
		}
		queue = append(queue, cur.right)
	}
}

// Delete overwrites the last node (in level order) holding v with the
// deepest node's value, then unlinks the deepest node.
func (t *BinaryTree[T]) Delete(v T) bool {
	if t.root == nil {
		return false
	}

	var target, deepest, deepestParent *treeNode[T]
	type entry struct{ node, parent *treeNode[T] }
	queue := []entry{{t.root, nil}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e.node.value == v {
			target = e.node
		}
		deepest, deepestParent = e.node, e.parent
		if e.node.left != nil {
			queue = append(queue, entry{e.node.left, e.node})
		}
		if e.node.right != nil {
			queue = append(queue, entry{e.node.right, e.node})
		}
	}
	if target == nil {
		return false
	}

	target.value = deepest.value
	switch {
	case deepestParent == nil:
		t.root = nil
	case deepestParent.right == deepest:
		deepestParent.right = nil
	default:
		deepestParent.left = nil
	}
	t.size--
	return true
}

// Search reports whether v is stored and its position in level order.
func (t *BinaryTree[T]) Search(v T) (int, bool) {
	i := 0
	found := -1
	t.walkLevel(func(x T) bool {
		if x == v {
			found = i
			return false
		}
		i++
		return true
	})
	return found, found >= 0
}

func (t *BinaryTree[T]) Len() int    { return t.size }
func (t *BinaryTree[T]) Empty() bool { return t.root == nil }

func (t *BinaryTree[T]) Clear() {
	t.root = nil
	t.size = 0
}

func (t *BinaryTree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*treeNode[T])
	walk = func(n *treeNode[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)
	return out
}

func (t *BinaryTree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*treeNode[T])
	walk = func(n *treeNode[T]) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

func (t *BinaryTree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*treeNode[T])
	walk = func(n *treeNode[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.value)
	}
	walk(t.root)
	return out
}

func (t *BinaryTree[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	t.walkLevel(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func (t *BinaryTree[T]) walkLevel(fn func(T) bool) {
	if t.root == nil {
		return
	}
	queue := []*treeNode[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !fn(n.value) {
			return
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}

// Levels groups the values by depth. The tree is always complete, so level
// d holds positions 2^d-1 .. 2^(d+1)-2 of the level-order sequence.
func (t *BinaryTree[T]) Levels() [][]T {
	values := t.LevelOrder()
	var levels [][]T
	for width := 1; len(values) > 0; width *= 2 {
		n := min(width, len(values))
		levels = append(levels, values[:n])
		values = values[n:]
	}
	return levels
}
