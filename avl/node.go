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

import "cmp"

// node owns its two subtrees outright. Nothing outside the tree ever holds
// a *node across calls; callers get NodeView copies instead.
type node[T cmp.Ordered] struct {
	value  T
	height int
	left   *node[T]
	right  *node[T]
}

func newLeaf[T cmp.Ordered](v T) *node[T] {
	return &node[T]{value: v, height: 1}
}

// NodeView is a read-only copy of a node's state at the time it was taken.
type NodeView[T cmp.Ordered] struct {
	Value   T
	Height  int
	Balance int // height(left) - height(right)
	Depth   int // 0 for the root
}

func (n *node[T]) view(depth int) NodeView[T] {
	return NodeView[T]{
		Value:   n.value,
		Height:  n.height,
		Balance: balanceFactor(n),
		Depth:   depth,
	}
}

func height[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[T cmp.Ordered](n *node[T]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func minNode[T cmp.Ordered](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[T cmp.Ordered](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
