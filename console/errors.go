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
	"errors"
	"fmt"
	"strconv"

	"github.com/cybrota/arbor/structures"
)

var (
	// ErrNotFound is reported when delete, remove or search target a value
	// that is not stored. It is an outcome, not a failure.
	ErrNotFound = errors.New("value not found")

	// ErrInvalidInput is reported when user text cannot become a value.
	// Such text never reaches a data structure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmpty is reported by pop, top and dequeue on empty containers.
	ErrEmpty = structures.ErrEmpty

	ErrUnknownCommand = errors.New("unknown command")
)

// ParseInt reads a decimal 64-bit integer.
func ParseInt(text string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, text)
	}
	return v, nil
}

// parseInts parses every argument or fails on the first bad one.
func parseInts(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: enter an integer value", ErrInvalidInput)
	}
	out := make([]int64, 0, len(args))
	for _, a := range args {
		v, err := ParseInt(a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func singleInt(cmd *Command) (int64, error) {
	if !cmd.HasArgs(1) {
		return 0, fmt.Errorf("%w: %s needs a value", ErrInvalidInput, cmd.Verb)
	}
	return ParseInt(cmd.Arg(0))
}

func requireText(cmd *Command, what string) (string, error) {
	if !cmd.HasArgs(1) {
		return "", fmt.Errorf("%w: enter a %s to %s", ErrInvalidInput, what, cmd.Verb)
	}
	return cmd.Text(), nil
}
