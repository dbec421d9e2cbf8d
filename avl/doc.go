// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree keyed by strings with a cached
// height and subtree size in every node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are ordered by plain lexicographic byte comparison
// (strings.Compare).  Inserting a key that is already present does
// not change the tree.  Deleting a node that has two children copies
// the in-order successor's key and value into that node and then
// removes the successor, so a *Node held across a Delete may end up
// carrying a different key.
package avl
