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
	"fmt"
	"strings"

	"github.com/cybrota/arbor/structures"
)

// Handler owns one data structure and interprets the verbs aimed at it.
type Handler interface {
	Name() string
	Title() string
	Verbs() []Verb
	Handle(cmd *Command) Result
	Snapshot() Snapshot
}

// Verb documents one command a handler accepts.
type Verb struct {
	Name string
	Args string
	Help string
}

// Result is the outcome of one dispatched line. Status is always a line fit
// for a status bar, including when Err is set.
type Result struct {
	Status string
	Err    error
}

func (r Result) OK() bool { return r.Err == nil }

func ok(format string, args ...any) Result {
	return Result{Status: fmt.Sprintf(format, args...)}
}

func fail(err error) Result {
	return Result{Status: err.Error(), Err: err}
}

func notFound(what string) Result {
	return fail(fmt.Errorf("%w: %s", ErrNotFound, what))
}

func unknownVerb(h Handler, verb string) Result {
	return fail(fmt.Errorf("%w: %q is not a %s command (try help)", ErrUnknownCommand, verb, h.Name()))
}

// Snapshot is a read-only picture of a structure for the presentation layer.
type Snapshot interface {
	snapshot()
}

// Cell is one drawn tree node.
type Cell struct {
	Label    string
	Note     string
	Selected bool
}

// MaxSlotDepth is the tallest tree a TreeSnapshot lays out in slots.
const MaxSlotDepth = 6

// TreeSnapshot lays a tree out in slots: row d has 2^d positions and a nil
// Cell marks an empty one. Taller trees carry only their nodes per row.
type TreeSnapshot struct {
	Rows [][]*Cell
}

// Layout tells the renderer how to line up a sequence.
type Layout int

const (
	Vertical Layout = iota
	Horizontal
	Chain
)

// SequenceSnapshot holds stack, queue or list items. Items run bottom to
// top for a stack and front to back otherwise. Selected is -1 when nothing
// is highlighted.
type SequenceSnapshot struct {
	Items    []string
	Layout   Layout
	Selected int
}

// TableSnapshot holds every hash bucket chain. SelectedBucket is -1 when
// nothing is highlighted.
type TableSnapshot struct {
	Buckets        [][]structures.Entry
	SelectedBucket int
	SelectedSlot   int
}

func (TreeSnapshot) snapshot()     {}
func (SequenceSnapshot) snapshot() {}
func (TableSnapshot) snapshot()    {}

func formatValues[T any](values []T) string {
	if len(values) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
