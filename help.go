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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Arbor %s**

Watch data structures change shape as you type. Insert into an AVL tree and see
the rotations that keep it balanced, or compare it with a plain binary tree,
a stack, a queue, a linked list and a hash table.

Built with Go %s

# 1. Features
* Live drawing of an AVL tree with the height of every node
* Complete binary tree, stack, queue, singly linked list and chained hash table
* One command line for everything: insert 10 20 30, delete 20, search 30, inorder
* Scriptable: arbor exec runs command lines without the interface
* Stress mode to hammer the AVL tree with random operations and concurrent readers

# 2. Commands
* **arbor run** opens the interface (the default)
* **arbor avl 30 20 10 --order level** builds and prints a tree
* **arbor exec --structure hash "insert apple" "search apple"** runs command lines
* **arbor stress --ops 100000 --readers 4** checks the tree under load
* **arbor settings** shows ~/.arbor.yaml

# 3. Keys
* **tab** and **shift+tab** switch structure
* **f1** lists the commands of the current structure
* **ctrl+y** copies the status line

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
