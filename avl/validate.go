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
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("order invariant violated")
	ErrBalance = errors.New("balance invariant violated")
	ErrHeight  = errors.New("stale cached height")
	ErrSize    = errors.New("size counter out of sync")
)

// Validate walks the whole tree and checks ordering, balance, cached
// heights and the node count. It returns nil for a well-formed tree.
//
// Rotations may lift a duplicate above an equal value, so ordering is
// checked as lo <= value <= hi along each path.
func (t *Tree[T]) Validate() error {
	count := 0
	if _, err := validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrSize, count, t.size)
	}
	return nil
}

func validate[T cmp.Ordered](n *node[T], lo, hi *T, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	if lo != nil && n.value < *lo {
		return 0, fmt.Errorf("%w: %v is below its lower bound %v", ErrOrder, n.value, *lo)
	}
	if hi != nil && n.value > *hi {
		return 0, fmt.Errorf("%w: %v is above its upper bound %v", ErrOrder, n.value, *hi)
	}

	lh, err := validate(n.left, lo, &n.value, count)
	if err != nil {
		return 0, err
	}
	rh, err := validate(n.right, &n.value, hi, count)
	if err != nil {
		return 0, err
	}

	if d := lh - rh; d > 1 || d < -1 {
		return 0, fmt.Errorf("%w: node %v has balance %d", ErrBalance, n.value, d)
	}
	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("%w: node %v caches %d, real height %d", ErrHeight, n.value, n.height, h)
	}
	return h, nil
}
