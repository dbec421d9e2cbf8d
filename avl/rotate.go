// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single right rotation, p.left becomes the root of this sub-tree
//
//        p            p1
//       / \          /  \
//      p1  c   →    a    p
//     /  \              / \
//    a    b            b   c
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	p.update()
	p1.update()
	return p1
}

// single left rotation, p.right becomes the root of this sub-tree
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.update()
	p1.update()
	return p1
}

// recompute the cached height of p and restore the AVL condition,
// returns the new root of this sub-tree
func rebalance(p *Node) *Node {
	p.update()

	switch b := p.Balance(); {
	case b > 1: // left branch too high
		if p.left.Balance() < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)

	case b < -1: // right branch too high
		if p.right.Balance() > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}
