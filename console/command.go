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

	"github.com/mattn/go-shellwords"
)

// Command is one tokenised line of user input.
type Command struct {
	Parts []string
	Verb  string
	Args  []string
	Line  string
}

// Parse splits a line with shell quoting rules, so 'push "hello world"'
// pushes a single value. The verb is lower-cased.
func Parse(line string) (*Command, error) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q: %v", ErrInvalidInput, line, err)
	}
	return NewCommand(parts), nil
}

// NewCommand creates a Command from already split parts.
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts: parts,
		Verb:  strings.ToLower(parts[0]),
		Args:  parts[1:],
		Line:  strings.Join(parts, " "),
	}
}

// Empty reports whether the line had no tokens at all.
func (c *Command) Empty() bool {
	return len(c.Parts) == 0
}

// HasArgs checks if the command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Arg returns the nth argument (0-indexed) or "" when missing
func (c *Command) Arg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// Text joins every argument back into a single value. Entry fields in the
// UI take the whole line as one value, so "push a b" pushes "a b".
func (c *Command) Text() string {
	return strings.Join(c.Args, " ")
}
