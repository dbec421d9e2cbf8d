// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns false without changing anything if the key is empty or
// already present
func (tree *Tree) Insert(key string, value interface{}) bool {
	if "" == key {
		return false
	}
	added := false
	tree.root, added = insert(key, value, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func insert(key string, value interface{}, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return &Node{
			key:    key,
			value:  value,
			height: 1,
			nodes:  1,
		}, true
	}

	added := false
	switch compare(p.key, key) {
	case +1: // p.key > key
		p.left, added = insert(key, value, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, value, p.right)
	default: // duplicate: leave the existing node alone
		return p, false
	}
	if !added {
		return p, false
	}
	return rebalance(p), true
}
