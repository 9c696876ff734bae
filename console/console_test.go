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

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	cmd := NewCommand([]string{"INSERT", "10", "20"})

	if cmd.Verb != "insert" {
		t.Errorf("Expected Verb to be 'insert', got '%s'", cmd.Verb)
	}
	if !cmd.HasArgs(2) {
		t.Errorf("Expected command to have at least 2 arguments")
	}
	if cmd.Arg(1) != "20" {
		t.Errorf("Expected second argument to be '20', got '%s'", cmd.Arg(1))
	}
	if cmd.Arg(5) != "" {
		t.Errorf("Expected missing argument to be empty, got '%s'", cmd.Arg(5))
	}
	if cmd.Line != "INSERT 10 20" {
		t.Errorf("Expected Line to be 'INSERT 10 20', got '%s'", cmd.Line)
	}
}

func TestParse(t *testing.T) {
	cmd, err := Parse(`push "hello world"`)
	require.NoError(t, err)
	assert.Equal(t, "push", cmd.Verb)
	assert.Equal(t, []string{"hello world"}, cmd.Args)
	assert.Equal(t, "hello world", cmd.Text())

	cmd, err = Parse("   ")
	require.NoError(t, err)
	assert.True(t, cmd.Empty())

	_, err = Parse(`push "open`)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"-7", -7, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"9223372036854775808", 0, true},
		{"4.2", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInt(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newManager() *Manager {
	return NewManager(Options{HashCapacity: 10})
}

func TestAVLCommands(t *testing.T) {
	m := newManager()
	require.Equal(t, "avl", m.Active().Name())

	res := m.Exec("insert 10 20 30")
	require.True(t, res.OK(), res.Status)
	assert.Equal(t, "in-order: 10 20 30", m.Exec("inorder").Status)
	assert.Equal(t, "level-order: 20 10 30", m.Exec("levelorder").Status)
	assert.Equal(t, "pre-order: 20 10 30", m.Exec("traverse pre").Status)
	assert.Equal(t, "post-order: 10 30 20", m.Exec("postorder").Status)

	res = m.Exec("insert 5 abc")
	require.ErrorIs(t, res.Err, ErrInvalidInput)
	assert.Equal(t, "in-order: 10 20 30", m.Exec("inorder").Status, "bad input must not reach the tree")

	require.ErrorIs(t, m.Exec("delete 99").Err, ErrNotFound)
	require.ErrorIs(t, m.Exec("search 99").Err, ErrNotFound)
	require.ErrorIs(t, m.Exec("delete").Err, ErrInvalidInput)
	require.ErrorIs(t, m.Exec("traverse sideways").Err, ErrInvalidInput)
	require.ErrorIs(t, m.Exec("rotate 10").Err, ErrUnknownCommand)

	require.True(t, m.Exec("delete 20").OK())
	assert.True(t, m.Exec("validate").OK())
	require.True(t, m.Exec("clear").OK())
	assert.Equal(t, "in-order: (empty)", m.Exec("inorder").Status)
}

func TestAVLSelectionFollowsRotations(t *testing.T) {
	h := NewAVLHandler()
	run := func(line string) Result {
		cmd, err := Parse(line)
		require.NoError(t, err)
		return h.Handle(cmd)
	}

	run("insert 10")
	require.True(t, run("search 10").OK())
	snap := h.Snapshot().(TreeSnapshot)
	require.True(t, snap.Rows[0][0].Selected)

	// the right-right case lifts 20 to the root, 10 becomes its left child
	run("insert 20 30")
	snap = h.Snapshot().(TreeSnapshot)
	require.Len(t, snap.Rows, 2)
	assert.Equal(t, "20", snap.Rows[0][0].Label)
	assert.False(t, snap.Rows[0][0].Selected)
	assert.Equal(t, "10", snap.Rows[1][0].Label)
	assert.True(t, snap.Rows[1][0].Selected)
	assert.Equal(t, "h=1", snap.Rows[1][0].Note)

	run("delete 10")
	snap = h.Snapshot().(TreeSnapshot)
	assert.Nil(t, snap.Rows[1][0])
	for _, row := range snap.Rows {
		for _, c := range row {
			if c != nil {
				assert.False(t, c.Selected, "deleted value stays highlighted")
			}
		}
	}
	_, selected := h.Selected()
	assert.False(t, selected)
}

func TestAVLSnapshotOfTallTree(t *testing.T) {
	h := NewAVLHandler()
	for v := int64(1); v <= 200; v++ {
		h.tree.Insert(v)
	}
	cmd, err := Parse("search 100")
	require.NoError(t, err)
	require.True(t, h.Handle(cmd).OK())
	require.Greater(t, h.tree.Height(), MaxSlotDepth)

	snap := h.Snapshot().(TreeSnapshot)
	require.Len(t, snap.Rows, h.tree.Height())

	nodes, selected := 0, 0
	for d, row := range snap.Rows {
		assert.LessOrEqual(t, len(row), 1<<d)
		for _, c := range row {
			require.NotNil(t, c, "tall trees carry no empty positions")
			nodes++
			if c.Selected {
				selected++
				assert.Equal(t, "100", c.Label)
			}
		}
	}
	assert.Equal(t, 200, nodes)
	assert.Equal(t, 1, selected)
	// the last row holds only real nodes, not 2^(height-1) slots
	assert.Less(t, len(snap.Rows[len(snap.Rows)-1]), 1<<(len(snap.Rows)-1))
}

func TestBinaryTreeCommands(t *testing.T) {
	seed := int64(45)
	m := NewManager(Options{HashCapacity: 10, BinaryTreeSeed: &seed, Default: "binary"})
	require.Equal(t, "bintree", m.Active().Name())

	require.True(t, m.Exec("insert 10 20").OK())
	assert.Equal(t, "level-order: 45 10 20", m.Exec("levelorder").Status)

	require.True(t, m.Exec("search 20").OK())
	snap := m.Active().Snapshot().(TreeSnapshot)
	require.Len(t, snap.Rows, 2)
	assert.True(t, snap.Rows[1][1].Selected)

	// the deepest value replaces the deleted one
	require.True(t, m.Exec("delete 45").OK())
	assert.Equal(t, "level-order: 20 10", m.Exec("levelorder").Status)
	snap = m.Active().Snapshot().(TreeSnapshot)
	assert.True(t, snap.Rows[0][0].Selected)
	assert.Nil(t, snap.Rows[1][1])

	require.ErrorIs(t, m.Exec("delete 45").Err, ErrNotFound)
	require.True(t, m.Exec("clear").OK())
	assert.Equal(t, "level-order: 45", m.Exec("levelorder").Status)
}

func TestStackAndQueueCommands(t *testing.T) {
	m := newManager()
	require.True(t, m.Exec("use stack").OK())

	m.Exec("push a")
	m.Exec(`push "b c"`)
	assert.Equal(t, `Top is "b c"`, m.Exec("top").Status)
	assert.Equal(t, []string{"a", "b c"}, m.Active().Snapshot().(SequenceSnapshot).Items)
	m.Exec("pop")
	m.Exec("pop")
	res := m.Exec("pop")
	require.ErrorIs(t, res.Err, ErrEmpty)
	assert.Contains(t, res.Status, "empty")
	require.ErrorIs(t, m.Exec("push").Err, ErrInvalidInput)

	require.True(t, m.Exec("use queue").OK())
	m.Exec("enqueue a")
	m.Exec("enqueue b")
	assert.Equal(t, `Dequeued "a" (1 items)`, m.Exec("dequeue").Status)
	snap := m.Active().Snapshot().(SequenceSnapshot)
	assert.Equal(t, Horizontal, snap.Layout)
	assert.Equal(t, []string{"b"}, snap.Items)
	m.Exec("clear")
	require.ErrorIs(t, m.Exec("peek").Err, ErrEmpty)
}

func TestListCommands(t *testing.T) {
	m := newManager()
	require.NoError(t, m.Use("ll"))

	m.Exec("append a")
	m.Exec("append b")
	m.Exec("prepend z")
	require.True(t, m.Exec("search a").OK())
	snap := m.Active().Snapshot().(SequenceSnapshot)
	assert.Equal(t, []string{"z", "a", "b"}, snap.Items)
	assert.Equal(t, 1, snap.Selected)

	require.True(t, m.Exec("remove a").OK())
	snap = m.Active().Snapshot().(SequenceSnapshot)
	assert.Equal(t, []string{"z", "b"}, snap.Items)
	assert.Equal(t, -1, snap.Selected)
	require.ErrorIs(t, m.Exec("remove a").Err, ErrNotFound)
}

func TestHashCommands(t *testing.T) {
	m := newManager()
	require.NoError(t, m.Use("hash"))

	assert.Equal(t, `Inserted "apple" into bucket 7`, m.Exec("insert apple").Status)
	res := m.Exec("search apple")
	require.True(t, res.OK())
	assert.Equal(t, `Found "apple" = "Value(apple)" at bucket 7, slot 0`, res.Status)

	snap := m.Active().Snapshot().(TableSnapshot)
	require.Len(t, snap.Buckets, 10)
	assert.Equal(t, 7, snap.SelectedBucket)
	assert.Equal(t, 0, snap.SelectedSlot)

	require.True(t, m.Exec("remove apple").OK())
	snap = m.Active().Snapshot().(TableSnapshot)
	assert.Equal(t, -1, snap.SelectedBucket)
	require.ErrorIs(t, m.Exec("search apple").Err, ErrNotFound)
}

func TestManagerRouting(t *testing.T) {
	m := newManager()

	assert.Equal(t, Result{}, m.Exec(""))
	require.ErrorIs(t, m.Exec("use nowhere").Err, ErrUnknownCommand)
	require.ErrorIs(t, m.Exec("use").Err, ErrInvalidInput)
	assert.Equal(t, "avl", m.Active().Name())

	help := m.Exec("help")
	require.True(t, help.OK())
	assert.Contains(t, help.Status, "insert <int>...")
	assert.Contains(t, help.Status, "use <structure>")

	m.Select(-1)
	assert.Equal(t, "hash", m.Active().Name())
	m.Select(len(m.Handlers()))
	assert.Equal(t, "avl", m.Active().Name())

	_, found := m.Lookup("HashTable")
	assert.True(t, found)

	md := Markdown(m.Active())
	assert.Contains(t, md, "# AVL Tree")
	assert.Contains(t, md, "| `insert <int>...` |")
}

func TestUnknownDefaultFallsBack(t *testing.T) {
	m := NewManager(Options{HashCapacity: 10, Default: "heap"})
	assert.Equal(t, 0, m.ActiveIndex())
}
