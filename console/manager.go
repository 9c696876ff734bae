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

	"github.com/rs/zerolog/log"
)

// Options seeds the handlers a Manager registers.
type Options struct {
	HashCapacity   int
	BinaryTreeSeed *int64
	Default        string
}

// Manager routes command lines to the active structure's handler. help and
// use are answered by the manager itself.
type Manager struct {
	handlers []Handler
	aliases  map[string]int
	active   int
}

// NewManager registers every structure in tab order.
func NewManager(opts Options) *Manager {
	m := &Manager{aliases: map[string]int{}}

	m.Register(NewAVLHandler(), "tree", "avltree")
	m.Register(NewBinaryTreeHandler(opts.BinaryTreeSeed), "binary", "binarytree", "bt")
	m.Register(NewStackHandler())
	m.Register(NewQueueHandler())
	m.Register(NewListHandler(), "linkedlist", "ll")
	m.Register(NewHashHandler(opts.HashCapacity), "hashtable", "table", "ht")

	if opts.Default != "" {
		if err := m.Use(opts.Default); err != nil {
			log.Warn().Err(err).Msg("falling back to the first structure")
		}
	}
	return m
}

// Register appends a handler. It is reachable by its name and any alias.
func (m *Manager) Register(h Handler, aliases ...string) {
	m.handlers = append(m.handlers, h)
	idx := len(m.handlers) - 1
	m.aliases[h.Name()] = idx
	for _, a := range aliases {
		m.aliases[a] = idx
	}
}

func (m *Manager) Handlers() []Handler { return m.handlers }

func (m *Manager) Active() Handler { return m.handlers[m.active] }

func (m *Manager) ActiveIndex() int { return m.active }

// Lookup finds a handler by name or alias.
func (m *Manager) Lookup(name string) (Handler, bool) {
	idx, found := m.aliases[strings.ToLower(name)]
	if !found {
		return nil, false
	}
	return m.handlers[idx], true
}

// Use switches the active structure.
func (m *Manager) Use(name string) error {
	idx, found := m.aliases[strings.ToLower(name)]
	if !found {
		return fmt.Errorf("%w: no structure called %q (have %s)", ErrUnknownCommand, name, strings.Join(m.Names(), ", "))
	}
	m.active = idx
	return nil
}

// Select switches by tab position, wrapping around at both ends.
func (m *Manager) Select(idx int) {
	n := len(m.handlers)
	m.active = ((idx % n) + n) % n
}

func (m *Manager) Names() []string {
	names := make([]string, len(m.handlers))
	for i, h := range m.handlers {
		names[i] = h.Name()
	}
	return names
}

// Exec tokenises and dispatches one line. An empty line is a no-op.
func (m *Manager) Exec(line string) Result {
	cmd, err := Parse(line)
	if err != nil {
		return fail(err)
	}
	if cmd.Empty() {
		return Result{}
	}

	res := m.dispatch(cmd)
	log.Debug().
		Str("structure", m.Active().Name()).
		Str("line", cmd.Line).
		AnErr("error", res.Err).
		Msg(res.Status)
	return res
}

func (m *Manager) dispatch(cmd *Command) Result {
	switch cmd.Verb {
	case "use":
		if !cmd.HasArgs(1) {
			return fail(fmt.Errorf("%w: use needs one of %s", ErrInvalidInput, strings.Join(m.Names(), ", ")))
		}
		if err := m.Use(cmd.Arg(0)); err != nil {
			return fail(err)
		}
		return ok("Using %s", m.Active().Title())
	case "help", "?":
		return ok("%s", m.Usage(m.Active()))
	}
	return m.Active().Handle(cmd)
}

// Usage is a one-line summary of the verbs h accepts.
func (m *Manager) Usage(h Handler) string {
	verbs := h.Verbs()
	names := make([]string, 0, len(verbs)+2)
	for _, v := range verbs {
		if v.Args != "" {
			names = append(names, v.Name+" "+v.Args)
		} else {
			names = append(names, v.Name)
		}
	}
	names = append(names, "use <structure>", "help")
	return fmt.Sprintf("%s: %s", h.Title(), strings.Join(names, " | "))
}

// Markdown documents every verb of h, for the help pane.
func Markdown(h Handler) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n| Command | Description |\n|---|---|\n", h.Title())

	for _, v := range h.Verbs() {
		usage := v.Name
		if v.Args != "" {
			usage += " " + v.Args
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", usage, v.Help)
	}
	b.WriteString("| `use <structure>` | switch to another structure |\n| `help` | list commands in the status bar |\n")
	return b.String()
}
