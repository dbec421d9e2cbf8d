// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package family

import (
	"strings"

	"github.com/carhuaz/ArbolGenealogicoInca/avl"
	"github.com/carhuaz/ArbolGenealogicoInca/fault"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

// Order - the traversal orders
type Order string

// the four orders
const (
	Pre   Order = "pre"   // ancestors before descendants
	In    Order = "in"    // ascending names
	Post  Order = "post"  // descendants before ancestors
	Level Order = "level" // generation by generation
)

// Orders - all orders in menu sequence
func Orders() []Order {
	return []Order{Pre, In, Post, Level}
}

// ParseOrder - convert a name such as "pre" or "preorder" to an Order
func ParseOrder(s string) (Order, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "order")
	for _, o := range Orders() {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fault.ErrInvalidTraversalOrder
}

// Entry - a record and its one based position in a traversal
type Entry struct {
	Position int
	Record   member.Record
}

// PreOrder - records with every ancestor before its descendants
func (reg *Registry) PreOrder() []Entry {
	return reg.collect(Pre)
}

// InOrder - records in ascending name order
func (reg *Registry) InOrder() []Entry {
	return reg.collect(In)
}

// PostOrder - records with descendants before their ancestor
func (reg *Registry) PostOrder() []Entry {
	return reg.collect(Post)
}

// LevelOrder - records breadth first from the root
func (reg *Registry) LevelOrder() []Entry {
	return reg.collect(Level)
}

// Traverse - records in the given order, nil for an unknown order
func (reg *Registry) Traverse(order Order) []Entry {
	return reg.collect(order)
}

// Walk - call f for each record in order while holding the lock; f
// must not call back into the registry
func (reg *Registry) Walk(order Order, f func(Entry) bool) {
	reg.Lock()
	defer reg.Unlock()

	reg.walk(order, f)
}

func (reg *Registry) collect(order Order) []Entry {
	reg.Lock()
	defer reg.Unlock()

	entries := make([]Entry, 0, reg.tree.Count())
	ok := reg.walk(order, func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	if !ok {
		return nil
	}
	return entries
}

// internal: lock must be held, false if the order is unknown
func (reg *Registry) walk(order Order, f func(Entry) bool) bool {
	var run func(avl.Visitor) int
	switch order {
	case Pre:
		run = reg.tree.PreOrder
	case In:
		run = reg.tree.InOrder
	case Post:
		run = reg.tree.PostOrder
	case Level:
		run = reg.tree.LevelOrder
	default:
		reg.log.Warnf("walk: unknown order: %q", order)
		return false
	}
	n := run(func(position int, node *avl.Node) bool {
		return f(Entry{
			Position: position,
			Record:   *recordOf(node),
		})
	})
	reg.log.Debugf("walk: %s order visited: %d", order, n)
	return true
}
