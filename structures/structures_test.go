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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack[string]()
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = s.Top()
	require.EqualError(t, err, "stack is empty: cannot top")

	s.Push("a")
	s.Push("b")
	s.Push("c")
	require.Equal(t, 3, s.Len())
	require.Equal(t, []string{"a", "b", "c"}, s.Items())

	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, "c", top)

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, "c", v)
	require.Equal(t, []string{"a", "b"}, s.Items())

	s.Clear()
	require.True(t, s.Empty())
}

func TestQueue(t *testing.T) {
	q := NewQueue[string]()
	_, err := q.Dequeue()
	var emptyErr *EmptyError
	require.True(t, errors.As(err, &emptyErr))
	require.Equal(t, "queue", emptyErr.Kind)

	for _, v := range []string{"x", "y", "z"} {
		q.Enqueue(v)
	}
	require.Equal(t, []string{"x", "y", "z"}, q.Items())

	front, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "x", front)

	v, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "x", v)
	require.Equal(t, 2, q.Len())

	// drain and reuse: the tail must be reset when the queue empties
	_, _ = q.Dequeue()
	_, _ = q.Dequeue()
	require.True(t, q.Empty())
	q.Enqueue("again")
	require.Equal(t, []string{"again"}, q.Items())

	q.Clear()
	_, err = q.Peek()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLinkedList(t *testing.T) {
	l := NewLinkedList[string]()
	require.False(t, l.Remove("nope"))

	l.Append("b")
	l.Prepend("a")
	l.Append("c")
	l.Append("b")
	require.Equal(t, []string{"a", "b", "c", "b"}, l.Items())

	pos, ok := l.Search("c")
	require.True(t, ok)
	require.Equal(t, 2, pos)
	_, ok = l.Search("zzz")
	require.False(t, ok)

	require.True(t, l.Remove("b"))
	require.Equal(t, []string{"a", "c", "b"}, l.Items())
	require.True(t, l.Remove("a"))
	require.Equal(t, []string{"c", "b"}, l.Items())
	require.False(t, l.Remove("a"))
	require.Equal(t, 2, l.Len())

	l.Clear()
	require.True(t, l.Empty())
	require.Empty(t, l.Items())
}

func TestBinaryTreeFillsLevelOrder(t *testing.T) {
	bt := NewBinaryTree[int64](45)
	for _, v := range []int64{10, 20, 30, 40, 50} {
		bt.Insert(v)
	}

	assert.Equal(t, []int64{45, 10, 20, 30, 40, 50}, bt.LevelOrder())
	assert.Equal(t, [][]int64{{45}, {10, 20}, {30, 40, 50}}, bt.Levels())
	assert.Equal(t, []int64{30, 10, 40, 45, 50, 20}, bt.InOrder())
	assert.Equal(t, []int64{45, 10, 30, 40, 20, 50}, bt.PreOrder())
	assert.Equal(t, []int64{30, 40, 10, 50, 20, 45}, bt.PostOrder())

	pos, ok := bt.Search(40)
	assert.True(t, ok)
	assert.Equal(t, 4, pos)
}

func TestBinaryTreeDeleteBackfillsFromDeepest(t *testing.T) {
	tests := []struct {
		name     string
		seed     []int64
		remove   int64
		found    bool
		expected []int64
	}{
		{"root replaced by deepest", []int64{1, 2, 3, 4}, 1, true, []int64{4, 2, 3}},
		{"deepest itself", []int64{1, 2, 3, 4}, 4, true, []int64{1, 2, 3}},
		{"right child unlinked", []int64{1, 2, 3}, 2, true, []int64{1, 3}},
		{"single node", []int64{7}, 7, true, []int64{}},
		{"absent", []int64{1, 2}, 9, false, []int64{1, 2}},
		{"last duplicate wins", []int64{5, 1, 5, 2}, 5, true, []int64{5, 1, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bt := NewBinaryTree(tc.seed...)
			require.Equal(t, tc.found, bt.Delete(tc.remove))
			require.Equal(t, tc.expected, bt.LevelOrder())
			require.Equal(t, len(tc.expected), bt.Len())
		})
	}
}

func TestHashTableBucketsMatchSHA256(t *testing.T) {
	h := NewHashTable(10)

	for key, bucket := range map[string]int{"apple": 7, "banana": 0, "cherry": 6, "42": 3, "": 9} {
		assert.Equal(t, bucket, h.Index(key), "bucket of %q", key)
	}
}

func TestHashTableChaining(t *testing.T) {
	h := NewHashTable(10)
	// "d" and "e" both land in bucket 0
	h.Insert("d", "Value(d)")
	h.Insert("e", "Value(e)")
	require.Equal(t, 2, h.Len())
	require.Equal(t, []Entry{{"d", "Value(d)"}, {"e", "Value(e)"}}, h.Buckets()[0])

	v, bucket, slot, ok := h.Search("e")
	require.True(t, ok)
	require.Equal(t, "Value(e)", v)
	require.Equal(t, 0, bucket)
	require.Equal(t, 1, slot)

	h.Insert("d", "updated")
	require.Equal(t, 2, h.Len())
	v, _, slot, _ = h.Search("d")
	require.Equal(t, "updated", v)
	require.Equal(t, 0, slot)

	require.True(t, h.Remove("d"))
	require.False(t, h.Remove("d"))
	_, _, slot, ok = h.Search("e")
	require.True(t, ok)
	require.Equal(t, 0, slot)

	_, bucket, slot, ok = h.Search("never-inserted")
	require.False(t, ok)
	require.Equal(t, -1, bucket)
	require.Equal(t, -1, slot)

	h.Clear()
	require.Zero(t, h.Len())
	_, _, _, ok = h.Search("e")
	require.False(t, ok)
	require.Equal(t, 10, h.Capacity())
}

func TestHashTableDefaultCapacity(t *testing.T) {
	require.Equal(t, DefaultCapacity, NewHashTable(0).Capacity())
	require.Equal(t, 3, NewHashTable(3).Capacity())
}
