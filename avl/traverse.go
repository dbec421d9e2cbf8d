// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Visitor - called once per node with a one based position that is
// local to the traversal call; return false to stop the walk
type Visitor func(position int, node *Node) bool

// PreOrder - node, then left sub-tree, then right sub-tree
func (tree *Tree) PreOrder(visit Visitor) int {
	n, _ := preOrder(tree.root, 0, visit)
	return n
}

// InOrder - left sub-tree, node, right sub-tree, i.e. ascending keys
func (tree *Tree) InOrder(visit Visitor) int {
	n, _ := inOrder(tree.root, 0, visit)
	return n
}

// PostOrder - left sub-tree, right sub-tree, then node
func (tree *Tree) PostOrder(visit Visitor) int {
	n, _ := postOrder(tree.root, 0, visit)
	return n
}

// LevelOrder - breadth first by distance from the root, left child
// before right child
func (tree *Tree) LevelOrder(visit Visitor) int {
	if nil == tree.root {
		return 0
	}
	queue := make([]*Node, 1, tree.count)
	queue[0] = tree.root

	n := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		n += 1
		if !visit(n, p) {
			return n
		}
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return n
}

// the recursive walks return the number of nodes visited so far and
// whether to keep going

func preOrder(p *Node, n int, visit Visitor) (int, bool) {
	if nil == p {
		return n, true
	}
	n += 1
	if !visit(n, p) {
		return n, false
	}
	n, ok := preOrder(p.left, n, visit)
	if !ok {
		return n, false
	}
	return preOrder(p.right, n, visit)
}

func inOrder(p *Node, n int, visit Visitor) (int, bool) {
	if nil == p {
		return n, true
	}
	n, ok := inOrder(p.left, n, visit)
	if !ok {
		return n, false
	}
	n += 1
	if !visit(n, p) {
		return n, false
	}
	return inOrder(p.right, n, visit)
}

func postOrder(p *Node, n int, visit Visitor) (int, bool) {
	if nil == p {
		return n, true
	}
	n, ok := postOrder(p.left, n, visit)
	if !ok {
		return n, false
	}
	n, ok = postOrder(p.right, n, visit)
	if !ok {
		return n, false
	}
	n += 1
	return n, visit(n, p)
}
