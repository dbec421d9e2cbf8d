// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - node with the smallest key, nil for an empty tree
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// Last - node with the largest key, nil for an empty tree
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// leftmost node of a sub-tree
func (p *Node) first() *Node {
	for nil != p && nil != p.left {
		p = p.left
	}
	return p
}

// rightmost node of a sub-tree
func (p *Node) last() *Node {
	for nil != p && nil != p.right {
		p = p.right
	}
	return p
}

// Successor - node with the smallest key strictly greater than key,
// which need not be present in the tree
//
// nodes carry no parent link so this descends from the root
func (tree *Tree) Successor(key string) *Node {
	var found *Node
	p := tree.root
	for nil != p {
		if compare(key, p.key) < 0 {
			found = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return found
}

// Predecessor - node with the largest key strictly less than key
func (tree *Tree) Predecessor(key string) *Node {
	var found *Node
	p := tree.root
	for nil != p {
		if compare(key, p.key) > 0 {
			found = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return found
}
