// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// which side of its parent a printed node hangs from
type side int

const (
	atRoot side = iota
	onLeft
	onRight
)

// the connector drawn before each key
var connectors = map[side]string{
	atRoot:  "|------+ ",
	onLeft:  "\\------+ ",
	onRight: "/------+ ",
}

const (
	blankIndent = "       "
	barIndent   = "|      "
)

type printer struct {
	w         io.Writer
	printData bool
}

// Print - write an ASCII graphic representation of the tree, rotated
// so the root is at the left edge and the right branch is on top
//
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer, printData bool) int {
	pr := printer{
		w:         w,
		printData: printData,
	}
	return pr.node(tree.root, "", atRoot)
}

func (pr printer) node(p *Node, prefix string, s side) int {
	if nil == p {
		return 0
	}

	// a vertical bar continues only where the branch turns back
	// towards its parent
	rightIndent := blankIndent
	if onLeft == s {
		rightIndent = barIndent
	}
	leftIndent := blankIndent
	if onRight == s {
		leftIndent = barIndent
	}

	rd := pr.node(p.right, prefix+rightIndent, onRight)

	fmt.Fprint(pr.w, prefix, connectors[s])
	if pr.printData {
		fmt.Fprintf(pr.w, "%q → %v h:%d %+2d/[%d]\n", p.key, p.value, p.height, p.Balance(), p.nodes)
	} else {
		fmt.Fprintf(pr.w, "%q h:%d\n", p.key, p.height)
	}

	ld := pr.node(p.left, prefix+leftIndent, onLeft)

	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
