// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored under key and true, or nil and
// false if the key was not in the tree
func (tree *Tree) Delete(key string) (interface{}, bool) {
	value := interface{}(nil)
	removed := false
	tree.root, value, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return value, removed
}

// internal delete routine
func remove(key string, p *Node) (*Node, interface{}, bool) {
	if nil == p { // key not in tree
		return nil, nil, false
	}

	value := interface{}(nil)
	removed := false
	switch compare(p.key, key) {
	case +1: // p.key > key
		p.left, value, removed = remove(key, p.left)
	case -1: // p.key < key
		p.right, value, removed = remove(key, p.right)
	default: // found: delete p
		value = p.value // preserve the value part
		removed = true

		if nil == p.right {
			return p.left, value, removed
		}
		if nil == p.left {
			return p.right, value, removed
		}

		// two children: take over the successor's record, then
		// remove the successor from the right sub-tree
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p.right, _, _ = remove(s.key, p.right)
	}
	if !removed {
		return p, nil, false
	}
	return rebalance(p), value, true
}
