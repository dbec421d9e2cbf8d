// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package family - a registry of family members held in an AVL tree
// keyed by member name
//
// All methods of a Registry are serialised by a single mutex, so a
// rotation is never visible half done.  "Not found" and "duplicate"
// are reported as a false result, never as an error.
//
// Every successful insert, delete and modify appends a line to the
// session history, which is never pruned.
package family
