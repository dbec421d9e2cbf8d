// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package member

import (
	"fmt"
)

// Gender - categorical attribute of a member
type Gender string

// the recognised genders
const (
	Male   Gender = "Masculino"
	Female Gender = "Femenino"
)

// age limits, inclusive
const (
	MinimumAge = 0
	MaximumAge = 150
)

// Record - the data held for one member, Name is the ordering key
type Record struct {
	Name       string `gluamapper:"name" json:"name"`
	Age        int    `gluamapper:"age" json:"age"`
	Gender     Gender `gluamapper:"gender" json:"gender"`
	Relation   string `gluamapper:"relation" json:"relation"`
	Occupation string `gluamapper:"occupation" json:"occupation"`
	Birthplace string `gluamapper:"birthplace" json:"birthplace"`
}

// Genders - list of valid genders in menu order
func Genders() []Gender {
	return []Gender{Male, Female}
}

// String - short form for logs and diagrams
func (r Record) String() string {
	return fmt.Sprintf("%s (%d, %s)", r.Name, r.Age, r.Relation)
}
