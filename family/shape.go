// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package family

import (
	"io"

	"github.com/carhuaz/ArbolGenealogicoInca/avl"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

// Branch - detached copy of one node and its sub-trees
type Branch struct {
	Record member.Record
	Height int
	Left   *Branch
	Right  *Branch
}

// Shape - copy of the whole tree for drawing, nil when empty
func (reg *Registry) Shape() *Branch {
	reg.Lock()
	defer reg.Unlock()
	return shape(reg.tree.Root())
}

func shape(p *avl.Node) *Branch {
	if nil == p {
		return nil
	}
	return &Branch{
		Record: *recordOf(p),
		Height: p.Height(),
		Left:   shape(p.Left()),
		Right:  shape(p.Right()),
	}
}

// Diagram - sideways ASCII drawing of the tree, returns the depth
func (reg *Registry) Diagram(w io.Writer) int {
	reg.Lock()
	defer reg.Unlock()
	return reg.tree.Print(w, false)
}
