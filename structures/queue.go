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

type queueNode[T any] struct {
	value T
	next  *queueNode[T]
}

// Queue is a FIFO container. It keeps both ends of a singly linked chain so
// Enqueue and Dequeue are O(1).
type Queue[T any] struct {
	head, tail *queueNode[T]
	size       int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) {
	n := &queueNode[T]{value: v}
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, &EmptyError{Kind: "queue", Op: "dequeue"}
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return n.value, nil
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, &EmptyError{Kind: "queue", Op: "peek"}
	}
	return q.head.value, nil
}

func (q *Queue[T]) Len() int    { return q.size }
func (q *Queue[T]) Empty() bool { return q.size == 0 }

func (q *Queue[T]) Clear() {
	q.head, q.tail = nil, nil
	q.size = 0
}

// Items returns the elements front to back.
func (q *Queue[T]) Items() []T {
	out := make([]T, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
