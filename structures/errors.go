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
	"fmt"
)

// ErrEmpty matches any EmptyError via errors.Is.
var ErrEmpty = errors.New("container is empty")

// EmptyError is returned when an operation needs an element but the
// container has none.
type EmptyError struct {
	Kind string // "stack", "queue", ...
	Op   string // "pop", "top", ...
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s is empty: cannot %s", e.Kind, e.Op)
}

func (e *EmptyError) Is(target error) bool {
	return target == ErrEmpty
}
