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

type listNode[T comparable] struct {
	value T
	next  *listNode[T]
}

// LinkedList is a singly linked list that only tracks its head, like the
// classroom version it models: Append walks to the end.
type LinkedList[T comparable] struct {
	head *listNode[T]
	size int
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Prepend inserts v at the start.
func (l *LinkedList[T]) Prepend(v T) {
	l.head = &listNode[T]{value: v, next: l.head}
	l.size++
}

// Append inserts v at the end.
func (l *LinkedList[T]) Append(v T) {
	n := &listNode[T]{value: v}
	l.size++
	if l.head == nil {
		l.head = n
		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// Remove unlinks the first node holding v.
func (l *LinkedList[T]) Remove(v T) bool {
	if l.head == nil {
		return false
	}
	if l.head.value == v {
		l.head = l.head.next
		l.size--
		return true
	}
	for cur := l.head; cur.next != nil; cur = cur.next {
		if cur.next.value == v {
			cur.next = cur.next.next
			l.size--
			return true
		}
	}
	return false
}

// Search returns the position of the first node holding v.
func (l *LinkedList[T]) Search(v T) (int, bool) {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return i, true
		}
		i++
	}
	return -1, false
}

func (l *LinkedList[T]) Len() int    { return l.size }
func (l *LinkedList[T]) Empty() bool { return l.head == nil }

func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.size = 0
}

// Items returns the values head first.
func (l *LinkedList[T]) Items() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	return out
}
