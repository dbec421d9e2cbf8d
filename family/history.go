// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package family

// History - copy of the session history, oldest first
func (reg *Registry) History() []string {
	reg.Lock()
	defer reg.Unlock()

	h := make([]string, len(reg.history))
	copy(h, reg.history)
	return h
}

// Note - append a free form event to the history
func (reg *Registry) Note(event string) {
	reg.Lock()
	reg.history = append(reg.history, event)
	reg.Unlock()
}
