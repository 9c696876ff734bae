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
	"math/rand"
)

var tips = []string{
	"insert 10 20 30 makes a right-right case: watch 20 rise to the root",
	"insert 30 20 10 is the mirror image, a single right rotation",
	"insert 30 10 20 needs two rotations: the left-right case",
	"insert 10 30 20 is the right-left case",
	"search highlights a node and the highlight follows it through rotations",
	"duplicates are allowed and always go to the right subtree",
	"levelorder lists the tree exactly as it is drawn, row by row",
	"inorder on an AVL tree always comes out sorted",
	"delete on a node with two children copies its in-order successor up",
	"the binary tree stays complete: delete backfills from the deepest node",
	"keys that land in the same hash bucket chain left to right",
	"tab switches structure, f1 lists what the current one understands",
	"ctrl+y copies the status line, handy for traversals",
	"arbor stress hammers the tree with random writes and concurrent reads",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(tips)
}
