// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package family

import (
	"github.com/carhuaz/ArbolGenealogicoInca/avl"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

// Generation - the members at one distance from the root, left to
// right
type Generation struct {
	Level   int // 0 is the root
	Records []member.Record
}

// Placement - where a member sits in name order
type Placement struct {
	Record   member.Record
	Position int // one based
	Total    int
	Previous string // empty for the first member
	Next     string // empty for the last member
}

// IsEmpty - true when there are no members
func (reg *Registry) IsEmpty() bool {
	reg.Lock()
	defer reg.Unlock()
	return reg.tree.IsEmpty()
}

// Generations - members grouped by level, root first
func (reg *Registry) Generations() []Generation {
	reg.Lock()
	defer reg.Unlock()

	root := reg.tree.Root()
	height := reg.tree.Height()
	generations := make([]Generation, 0, height)
	for level := 0; level < height; level += 1 {
		nodes := root.AtDepth(level)
		g := Generation{
			Level:   level,
			Records: make([]member.Record, len(nodes)),
		}
		for i, node := range nodes {
			g.Records[i] = *recordOf(node)
		}
		generations = append(generations, g)
	}
	return generations
}

// Locate - a member with its position in name order and the names
// either side of it
func (reg *Registry) Locate(name string) (Placement, bool) {
	reg.Lock()
	defer reg.Unlock()

	node, index := reg.tree.Search(name)
	if nil == node {
		reg.log.Debugf("locate: %q not found", name)
		return Placement{}, false
	}
	return Placement{
		Record:   *recordOf(node),
		Position: index + 1,
		Total:    reg.tree.Count(),
		Previous: keyOf(reg.tree.Predecessor(name)),
		Next:     keyOf(reg.tree.Successor(name)),
	}, true
}

// At - the member at a one based position in name order
func (reg *Registry) At(position int) (member.Record, bool) {
	reg.Lock()
	defer reg.Unlock()

	node := reg.tree.Get(position - 1)
	if nil == node {
		return member.Record{}, false
	}
	return *recordOf(node), true
}

func keyOf(node *avl.Node) string {
	if nil == node {
		return ""
	}
	return node.Key()
}
