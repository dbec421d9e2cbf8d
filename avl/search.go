// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// ordering of keys: -1, 0, +1 as a <, ==, > b
func compare(a string, b string) int {
	return strings.Compare(a, b)
}

// Search - find a specific item, returns the node and its zero
// based in-order index or nil and -1
func (tree *Tree) Search(key string) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key string, tree *Node, index int) (*Node, int) {
	for nil != tree {
		switch compare(tree.key, key) {
		case +1: // tree.key > key
			tree = tree.left
		case -1: // tree.key < key
			index += tree.left.size() + 1
			tree = tree.right
		default:
			return tree, index + tree.left.size()
		}
	}
	return nil, -1
}

// Get - index to specific item
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	nl := tree.left.size()

	if index < nl {
		return get(index, tree.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, tree.right)
	}
	return tree
}
