// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CountNodes - number of nodes found by a full sweep, should always
// equal Count()
func (tree *Tree) CountNodes() int {
	return countNodes(tree.root)
}

func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}

// Depth - maximum depth found by a full sweep: 0 for an empty tree
// and 1 for a single node
func (tree *Tree) Depth() int {
	return depth(tree.root)
}

func depth(p *Node) int {
	if nil == p {
		return 0
	}
	ld := depth(p.left)
	rd := depth(p.right)
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// IsBalanced - true if every node's balance factor is in [-1, +1]
func (tree *Tree) IsBalanced() bool {
	return isBalanced(tree.root)
}

func isBalanced(p *Node) bool {
	if nil == p {
		return true
	}
	if b := p.Balance(); b < -1 || b > 1 {
		return false
	}
	return isBalanced(p.left) && isBalanced(p.right)
}

// CheckHeights - the cached height of every node is consistent with
// the actual depth of its sub-tree
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + rh
	if lh > rh {
		h = 1 + lh
	}
	return h, h == p.height
}

// CheckCounts - the cached sub-tree sizes are consistent and the root
// size matches the tree count
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	return ok && n == tree.count
}

func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok {
		return 0, false
	}
	n := 1 + nl + nr
	return n, n == p.nodes
}

// CheckOrder - keys are strictly ascending in an in-order walk
func (tree *Tree) CheckOrder() bool {
	ok := true
	previous := ""
	tree.InOrder(func(position int, node *Node) bool {
		if position > 1 && compare(previous, node.key) >= 0 {
			ok = false
			return false
		}
		previous = node.key
		return true
	})
	return ok
}
