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
	"sync"
)

// SyncTree guards a Tree with a single RWMutex. Rotations rewrite several
// child pointers at once, so every mutation holds the write lock for its
// whole duration; readers share the read lock.
type SyncTree[T cmp.Ordered] struct {
	mu   sync.RWMutex
	tree *Tree[T]
}

func NewSync[T cmp.Ordered]() *SyncTree[T] {
	return &SyncTree[T]{tree: New[T]()}
}

func (s *SyncTree[T]) Insert(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Insert(v)
}

func (s *SyncTree[T]) Delete(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Delete(v)
}

func (s *SyncTree[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear()
}

func (s *SyncTree[T]) Search(v T) (NodeView[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Search(v)
}

func (s *SyncTree[T]) Traverse(order Order) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Traverse(order)
}

func (s *SyncTree[T]) Levels() [][]NodeView[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Levels()
}

func (s *SyncTree[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

func (s *SyncTree[T]) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Validate()
}

func (s *SyncTree[T]) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Height()
}
