// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package display

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/carhuaz/ArbolGenealogicoInca/family"
)

// Hierarchy - the tree drawn top down, left branch listed before the
// right branch, each child tagged [L] or [R]
func Hierarchy(root *family.Branch) string {
	if nil == root {
		return "(empty tree)\n"
	}
	tree := treeprint.NewWithRoot(label(root))
	addChildren(tree, root)
	return tree.String()
}

func addChildren(tree treeprint.Tree, b *family.Branch) {
	for _, c := range []struct {
		meta  string
		child *family.Branch
	}{
		{"L", b.Left},
		{"R", b.Right},
	} {
		if nil == c.child {
			continue
		}
		if nil == c.child.Left && nil == c.child.Right {
			tree.AddMetaNode(c.meta, label(c.child))
			continue
		}
		addChildren(tree.AddMetaBranch(c.meta, label(c.child)), c.child)
	}
}

func label(b *family.Branch) string {
	return fmt.Sprintf("%s (%d) %s", b.Record.Name, b.Record.Age, b.Record.Relation)
}
