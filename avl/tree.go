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

/*
Package avl implements a self-balancing binary search tree.

Every insert and delete rebalances bottom-up along the path it touched, so
after any public call returns the tree satisfies:

  - order: left subtree values are smaller than the node, right subtree
    values are greater or equal (equal values are inserted to the right)
  - balance: child heights differ by at most one at every node
  - cached heights match the real subtree heights

A Tree is not safe for concurrent use; wrap it in a SyncTree for that.
*/
package avl

import "cmp"

// Tree is an AVL tree over any ordered value type.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New returns an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// From builds a tree by inserting values in the given order.
func From[T cmp.Ordered](values ...T) *Tree[T] {
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert adds v to the tree. Duplicates are kept and go to the right.
func (t *Tree[T]) Insert(v T) {
	t.root = insert(t.root, v)
	t.size++
}

func insert[T cmp.Ordered](n *node[T], v T) *node[T] {
	if n == nil {
		return newLeaf(v)
	}

	if v < n.value {
		n.left = insert(n.left, v)
	} else {
		n.right = insert(n.right, v)
	}

	return balance(n)
}

// Delete removes one occurrence of v and reports whether it was present.
// A missing value leaves the tree untouched.
func (t *Tree[T]) Delete(v T) bool {
	var removed bool
	t.root = remove(t.root, v, &removed)
	if removed {
		t.size--
	}
	return removed
}

func remove[T cmp.Ordered](n *node[T], v T, removed *bool) *node[T] {
	if n == nil {
		return nil
	}

	switch {
	case v < n.value:
		n.left = remove(n.left, v, removed)
	case v > n.value:
		n.right = remove(n.right, v, removed)
	default:
		*removed = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: the successor's value moves up and the successor's
		// own node is the one that gets unlinked below.
		successor := minNode(n.right)
		n.value = successor.value
		var ignored bool
		n.right = remove(n.right, successor.value, &ignored)
	}

	return balance(n)
}

// Search returns a view of the first node holding v on the descent path.
func (t *Tree[T]) Search(v T) (NodeView[T], bool) {
	n, depth := t.root, 0
	for n != nil {
		switch {
		case v == n.value:
			return n.view(depth), true
		case v < n.value:
			n = n.left
		default:
			n = n.right
		}
		depth++
	}
	return NodeView[T]{}, false
}

// Contains reports whether v is stored in the tree.
func (t *Tree[T]) Contains(v T) bool {
	_, ok := t.Search(v)
	return ok
}

// Probe walks the same path as Search and reports how many nodes it
// visited before finding v or running off the tree.
func (t *Tree[T]) Probe(v T) (visited int, found bool) {
	n := t.root
	for n != nil {
		visited++
		if v == n.value {
			return visited, true
		}
		if v < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}
	return visited, false
}

// Len returns the number of stored values, duplicates included.
func (t *Tree[T]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Height returns the height of the whole tree; 0 when empty.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Clear drops every node.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Root returns a view of the root node.
func (t *Tree[T]) Root() (NodeView[T], bool) {
	if t.root == nil {
		return NodeView[T]{}, false
	}
	return t.root.view(0), true
}

// Min returns the smallest stored value.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return minNode(t.root).value, true
}

// Max returns the largest stored value.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return maxNode(t.root).value, true
}
