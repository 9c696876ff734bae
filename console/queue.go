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

type QueueHandler struct {
	queue *structures.Queue[string]
}

func NewQueueHandler() *QueueHandler {
	return &QueueHandler{queue: structures.NewQueue[string]()}
}

func (h *QueueHandler) Name() string  { return "queue" }
func (h *QueueHandler) Title() string { return "Queue" }

func (h *QueueHandler) Verbs() []Verb {
	return []Verb{
		{"enqueue", "<text>", "add a value at the back"},
		{"dequeue", "", "take the front value"},
		{"peek", "", "show the front value"},
		{"clear", "", "remove every value"},
	}
}

func (h *QueueHandler) Handle(cmd *Command) Result {
	switch cmd.Verb {
	case "enqueue", "enq", "push":
		v, err := requireText(cmd, "value")
		if err != nil {
			return fail(err)
		}
		h.queue.Enqueue(v)
		return ok("Enqueued %q (%d items)", v, h.queue.Len())
	case "dequeue", "deq", "pop":
		v, err := h.queue.Dequeue()
		if err != nil {
			return fail(err)
		}
		return ok("Dequeued %q (%d items)", v, h.queue.Len())
	case "peek", "front":
		v, err := h.queue.Peek()
		if err != nil {
			return fail(err)
		}
		return ok("Front is %q", v)
	case "clear":
		h.queue.Clear()
		return ok("Cleared queue")
	}
	return unknownVerb(h, cmd.Verb)
}

func (h *QueueHandler) Snapshot() Snapshot {
	return SequenceSnapshot{Items: h.queue.Items(), Layout: Horizontal, Selected: -1}
}
