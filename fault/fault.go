// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAgeOutOfRange           = InvalidError("age is out of range")
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrBlankBirthplace         = InvalidError("birthplace is blank")
	ErrBlankName               = InvalidError("name is blank")
	ErrBlankOccupation         = InvalidError("occupation is blank")
	ErrBlankRelation           = InvalidError("relation is blank")
	ErrDuplicateMember         = ExistsError("member already exists")
	ErrInvalidGender           = InvalidError("gender is invalid")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidNumber           = InvalidError("invalid number")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidTraversalOrder   = InvalidError("invalid traversal order")
	ErrMemberNotFound          = NotFoundError("member not found")
	ErrMissingConfigurationTop = ProcessError("configuration did not return a table")
	ErrNotADirectory           = InvalidError("not a directory")
	ErrNotPlainFileName        = InvalidError("not a plain file name")
	ErrRequiredName            = InvalidError("name is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
