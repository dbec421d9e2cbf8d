// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package family

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/carhuaz/ArbolGenealogicoInca/avl"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

// Registry - the family tree and its session history
type Registry struct {
	sync.Mutex
	log     *logger.L
	tree    *avl.Tree
	history []string
}

// New - create an empty registry logging to the given channel
func New(log *logger.L) *Registry {
	return &Registry{
		log:     log,
		tree:    avl.New(),
		history: make([]string, 0, 16),
	}
}

// internal: the record held by a tree node
func recordOf(node *avl.Node) *member.Record {
	return node.Value().(*member.Record)
}
