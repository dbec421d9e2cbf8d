// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - rejected input and start up failures
//
// Every error is a package level value of one of four classes so
// callers compare with == or test the class with the IsErrX
// functions.  The family registry itself reports only booleans; these
// errors belong to input validation, configuration and the front end.
package fault
