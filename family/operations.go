// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package family

import (
	"fmt"

	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

// history entry prefixes
const (
	insertEvent = "INSERT: "
	deleteEvent = "DELETE: "
	modifyEvent = "MODIFY: "
	loadEvent   = "LOAD: "
)

// Insert - add a new member
//
// returns false if the name is empty or already present, in which
// case nothing changes
func (reg *Registry) Insert(r member.Record) bool {
	reg.Lock()
	defer reg.Unlock()

	return reg.insert(r)
}

// internal insert, lock must be held
func (reg *Registry) insert(r member.Record) bool {
	if "" == r.Name {
		reg.log.Debug("insert: empty name rejected")
		return false
	}
	if n, _ := reg.tree.Search(r.Name); nil != n {
		reg.log.Debugf("insert: duplicate: %q", r.Name)
		return false
	}

	stored := r
	if !reg.tree.Insert(r.Name, &stored) {
		return false
	}
	reg.history = append(reg.history, insertEvent+r.Name)
	reg.log.Infof("insert: %q  count: %d  height: %d", r.Name, reg.tree.Count(), reg.tree.Height())
	return true
}

// Find - copy of the record for a name
func (reg *Registry) Find(name string) (member.Record, bool) {
	reg.Lock()
	defer reg.Unlock()

	node, _ := reg.tree.Search(name)
	if nil == node {
		reg.log.Debugf("find: %q not found", name)
		return member.Record{}, false
	}
	return *recordOf(node), true
}

// Update - replace the age, occupation and relation of a member,
// name, gender and birthplace are not changed
func (reg *Registry) Update(name string, age int, occupation string, relation string) bool {
	reg.Lock()
	defer reg.Unlock()

	node, _ := reg.tree.Search(name)
	if nil == node {
		reg.log.Debugf("update: %q not found", name)
		return false
	}
	r := recordOf(node)
	r.Age = age
	r.Occupation = occupation
	r.Relation = relation

	reg.history = append(reg.history, modifyEvent+name)
	reg.log.Infof("update: %q  age: %d  occupation: %q  relation: %q", name, age, occupation, relation)
	return true
}

// Delete - remove a member
func (reg *Registry) Delete(name string) bool {
	reg.Lock()
	defer reg.Unlock()

	if _, removed := reg.tree.Delete(name); !removed {
		reg.log.Debugf("delete: %q not found", name)
		return false
	}
	reg.history = append(reg.history, deleteEvent+name)
	reg.log.Infof("delete: %q  count: %d  height: %d", name, reg.tree.Count(), reg.tree.Height())
	return true
}

// LoadSample - insert a batch of records and note the load in the
// history, returns the number actually inserted
func (reg *Registry) LoadSample(records []member.Record) int {
	reg.Lock()
	defer reg.Unlock()

	n := 0
	for _, r := range records {
		if reg.insert(r) {
			n += 1
		}
	}
	reg.history = append(reg.history, fmt.Sprintf("%s%d sample members", loadEvent, n))
	reg.log.Infof("sample: loaded: %d of: %d", n, len(records))
	return n
}
