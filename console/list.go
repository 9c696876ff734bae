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

import "github.com/cybrota/arbor/structures"

// ListHandler drives a singly linked list of strings. search highlights the
// first match until it is removed.
type ListHandler struct {
	list     *structures.LinkedList[string]
	selected *string
}

func NewListHandler() *ListHandler {
	return &ListHandler{list: structures.NewLinkedList[string]()}
}

func (h *ListHandler) Name() string  { return "list" }
func (h *ListHandler) Title() string { return "Linked List" }

func (h *ListHandler) Verbs() []Verb {
	return []Verb{
		{"prepend", "<text>", "insert at the head"},
		{"append", "<text>", "insert at the tail"},
		{"remove", "<text>", "unlink the first match"},
		{"search", "<text>", "find the first match"},
		{"clear", "", "remove every value"},
	}
}

func (h *ListHandler) Handle(cmd *Command) Result {
	switch cmd.Verb {
	case "prepend", "push":
		v, err := requireText(cmd, "value")
		if err != nil {
			return fail(err)
		}
		h.list.Prepend(v)
		return ok("Prepended %q (%d nodes)", v, h.list.Len())
	case "append", "add", "insert":
		v, err := requireText(cmd, "value")
		if err != nil {
			return fail(err)
		}
		h.list.Append(v)
		return ok("Appended %q (%d nodes)", v, h.list.Len())
	case "remove", "delete", "rm":
		v, err := requireText(cmd, "value")
		if err != nil {
			return fail(err)
		}
		if !h.list.Remove(v) {
			return notFound(v)
		}
		return ok("Removed %q (%d nodes)", v, h.list.Len())
	case "search", "find":
		v, err := requireText(cmd, "value")
		if err != nil {
			return fail(err)
		}
		idx, found := h.list.Search(v)
		if !found {
			h.selected = nil
			return notFound(v)
		}
		h.selected = &v
		return ok("Found %q at index %d", v, idx)
	case "clear":
		h.list.Clear()
		h.selected = nil
		return ok("Cleared linked list")
	}
	return unknownVerb(h, cmd.Verb)
}

func (h *ListHandler) Snapshot() Snapshot {
	selected := -1
	if h.selected != nil {
		if idx, found := h.list.Search(*h.selected); found {
			selected = idx
		} else {
			h.selected = nil
		}
	}
	return SequenceSnapshot{Items: h.list.Items(), Layout: Chain, Selected: selected}
}
