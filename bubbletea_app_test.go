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

package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cybrota/arbor/console"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	config := defaults()
	manager := console.NewManager(console.Options{
		HashCapacity:   config.Hash.Capacity,
		BinaryTreeSeed: config.BinaryTree.Seed,
	})
	m := InitialModel(manager, NewOptimizedHelpCache(), config)
	return send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func typeLine(m Model, line string) Model {
	m.input.SetValue(line)
	return send(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModelRunsCommandLines(t *testing.T) {
	m := newTestModel(t)

	m = typeLine(m, "insert 10 20 30")
	if m.status.Err != nil {
		t.Fatalf("insert failed: %s", m.status.Status)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared, got %q", m.input.Value())
	}

	view := m.View()
	for _, want := range []string{"AVL Tree", "20", "┴", "Inserted 10 20 30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	m = typeLine(m, "insert ten")
	if !errors.Is(m.status.Err, console.ErrInvalidInput) {
		t.Errorf("status error = %v; want ErrInvalidInput", m.status.Err)
	}

	// blank lines are ignored
	before := m.status
	m = typeLine(m, "   ")
	if m.status != before {
		t.Errorf("blank line changed the status to %q", m.status.Status)
	}
}

func TestModelSwitchesStructures(t *testing.T) {
	m := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.manager.Active().Name(); got != "bintree" {
		t.Errorf("after tab active = %q; want bintree", got)
	}
	// the seeded root is drawn straight away
	if !strings.Contains(m.View(), "45") {
		t.Error("binary tree seed not drawn")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.manager.Active().Name(); got != "hash" {
		t.Errorf("shift+tab should wrap around, active = %q", got)
	}

	m = typeLine(m, "use stack")
	m = typeLine(m, "push hello")
	if got := m.manager.Active().Name(); got != "stack" {
		t.Fatalf("use stack left %q active", got)
	}
	if !strings.Contains(m.View(), "hello") {
		t.Error("pushed value not drawn")
	}
}

func TestModelHistoryRecall(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(m, "insert 1")
	m = typeLine(m, "insert 2")

	steps := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyUp, "insert 2"},
		{tea.KeyUp, "insert 1"},
		{tea.KeyUp, "insert 1"},
		{tea.KeyDown, "insert 2"},
		{tea.KeyDown, ""},
	}
	for i, step := range steps {
		m = send(m, tea.KeyMsg{Type: step.key})
		if got := m.input.Value(); got != step.want {
			t.Errorf("step %d: input = %q; want %q", i, got, step.want)
		}
	}
}

func TestModelHelpPane(t *testing.T) {
	m := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.showHelp {
		t.Fatal("f1 did not open the help pane")
	}
	if GetHelpPage(m.helpCache, "avl") == "" {
		t.Error("help page was not cached")
	}
	if !strings.Contains(m.View(), "Commands") {
		t.Error("help pane not drawn")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if GetHelpPage(m.helpCache, "bintree") == "" {
		t.Error("help was not refreshed for the new structure")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyF1})
	if m.showHelp {
		t.Error("second f1 did not close the help pane")
	}
}

func TestModelClipboardAndQuit(t *testing.T) {
	m := newTestModel(t)

	m = send(m, clipboardMsg{text: "in-order: 1 2"})
	if m.status.Err != nil || m.status.Status != "Copied to clipboard: in-order: 1 2" {
		t.Errorf("unexpected status %+v", m.status)
	}
	m = send(m, clipboardMsg{text: "x", err: errors.New("no xclip")})
	if m.status.Err == nil {
		t.Error("copy failure not reported")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
}

func TestModelSmallTerminal(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 20, Height: 5})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected resize hint")
	}
}
