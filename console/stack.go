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

type StackHandler struct {
	stack *structures.Stack[string]
}

func NewStackHandler() *StackHandler {
	return &StackHandler{stack: structures.NewStack[string]()}
}

func (h *StackHandler) Name() string  { return "stack" }
func (h *StackHandler) Title() string { return "Stack" }

func (h *StackHandler) Verbs() []Verb {
	return []Verb{
		{"push", "<text>", "put a value on top"},
		{"pop", "", "take the top value off"},
		{"top", "", "show the top value"},
		{"clear", "", "remove every value"},
	}
}

func (h *StackHandler) Handle(cmd *Command) Result {
	switch cmd.Verb {
	case "push":
		v, err := requireText(cmd, "value")
		if err != nil {
			return fail(err)
		}
		h.stack.Push(v)
		return ok("Pushed %q (%d items)", v, h.stack.Len())
	case "pop":
		v, err := h.stack.Pop()
		if err != nil {
			return fail(err)
		}
		return ok("Popped %q (%d items)", v, h.stack.Len())
	case "top", "peek":
		v, err := h.stack.Top()
		if err != nil {
			return fail(err)
		}
		return ok("Top is %q", v)
	case "clear":
		h.stack.Clear()
		return ok("Cleared stack")
	}
	return unknownVerb(h, cmd.Verb)
}

func (h *StackHandler) Snapshot() Snapshot {
	return SequenceSnapshot{Items: h.stack.Items(), Layout: Vertical, Selected: -1}
}
