// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package member - the record stored for each member of a family
// tree and the field checks a front end applies before storing one
//
// The registry itself only refuses an empty name; range, enumeration
// and blank field checks belong to whoever collects the input.
package member
