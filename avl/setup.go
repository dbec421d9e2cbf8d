// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree, exclusively owned by its parent
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	key    string      // key part for ordering
	value  interface{} // value part for data storage
	height int         // leaf = 1
	nodes  int         // number of nodes in this sub-tree
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - cached height of the root, zero for an empty tree
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Key - read the key from a node item
func (p *Node) Key() string {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Left - the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node, safe
// to call on a nil node
func (p *Node) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Balance - height(left) - height(right)
func (p *Node) Balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// size of a possibly nil sub-tree
func (p *Node) size() int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// recompute the cached fields from the children's cached fields
func (p *Node) update() {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.nodes = 1 + p.left.size() + p.right.size()
}

// AtDepth - nodes exactly depth levels below p, left to right; depth
// 0 is p itself
func (p *Node) AtDepth(depth int) []*Node {
	if nil == p || depth < 0 {
		return nil
	}
	if 0 == depth {
		return []*Node{p}
	}
	return append(p.left.AtDepth(depth-1), p.right.AtDepth(depth-1)...)
}
