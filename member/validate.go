// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package member

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/carhuaz/ArbolGenealogicoInca/fault"
)

// NormaliseName - trim, collapse internal white space and convert to
// Unicode NFC so that "Cápac" typed with a combining accent matches
// the precomposed form
func NormaliseName(name string) string {
	return norm.NFC.String(strings.Join(strings.Fields(name), " "))
}

// ValidAge - check the age is within [MinimumAge, MaximumAge]
func ValidAge(age int) error {
	if age < MinimumAge || age > MaximumAge {
		return fault.ErrAgeOutOfRange
	}
	return nil
}

// ParseGender - case insensitive match against the valid genders,
// also accepts the initial letter
func ParseGender(s string) (Gender, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return "", fault.ErrInvalidGender
	}
	for _, g := range Genders() {
		if strings.EqualFold(s, string(g)) || strings.EqualFold(s, string(g)[:1]) {
			return g, nil
		}
	}
	return "", fault.ErrInvalidGender
}

// RequireText - trimmed value or the given error if blank
func RequireText(value string, blank error) (string, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return "", blank
	}
	return norm.NFC.String(value), nil
}

// Validate - apply all field checks, returning a normalised copy
func (r Record) Validate() (Record, error) {
	r.Name = NormaliseName(r.Name)
	if "" == r.Name {
		return r, fault.ErrBlankName
	}
	if err := ValidAge(r.Age); nil != err {
		return r, err
	}
	g, err := ParseGender(string(r.Gender))
	if nil != err {
		return r, err
	}
	r.Gender = g

	fields := []struct {
		value *string
		blank error
	}{
		{&r.Relation, fault.ErrBlankRelation},
		{&r.Occupation, fault.ErrBlankOccupation},
		{&r.Birthplace, fault.ErrBlankBirthplace},
	}
	for _, f := range fields {
		v, err := RequireText(*f.value, f.blank)
		if nil != err {
			return r, err
		}
		*f.value = v
	}
	return r, nil
}
