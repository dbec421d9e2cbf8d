// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// familytree - keep a family tree of members in a balanced tree
//
// The "menu" command runs the interactive session; the other
// commands show one view of the configured sample data and exit.
//
//   familytree [--config-file=FILE] [--verbose] menu
//   familytree list --order=pre|in|post|level
//   familytree find NAME
//   familytree stats
//   familytree diagram [--hierarchy]
//
// Nothing is saved: all changes are lost when the program exits.
package main
