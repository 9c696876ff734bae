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

// rotateRight lifts z.left into z's place and returns it as the new
// subtree root. The caller must store the result in its own child pointer.
func rotateRight[T cmp.Ordered](z *node[T]) *node[T] {
	pivot := z.left

	z.left = pivot.right
	pivot.right = z

	// z is now below pivot, so its height has to be settled first
	updateHeight(z)
	updateHeight(pivot)

	return pivot
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[T cmp.Ordered](z *node[T]) *node[T] {
	pivot := z.right

	z.right = pivot.left
	pivot.left = z

	updateHeight(z)
	updateHeight(pivot)

	return pivot
}

// balance refreshes n's height and applies at most one single or double
// rotation. It returns the root of the subtree after rebalancing.
func balance[T cmp.Ordered](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}

	updateHeight(n)
	bf := balanceFactor(n)

	switch {
	// Left-Left
	case bf > 1 && balanceFactor(n.left) >= 0:
		return rotateRight(n)
	// Right-Right
	case bf < -1 && balanceFactor(n.right) <= 0:
		return rotateLeft(n)
	// Left-Right
	case bf > 1 && balanceFactor(n.left) < 0:
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	// Right-Left
	case bf < -1 && balanceFactor(n.right) > 0:
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}
