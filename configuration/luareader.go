// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/carhuaz/ArbolGenealogicoInca/fault"
)

// positional arguments of the Lua member() helper
var memberFields = []string{
	"name",
	"age",
	"gender",
	"relation",
	"occupation",
	"birthplace",
}

// ParseConfigurationFile - run a Lua file and decode the table it
// returns into the structure pointed to by config
//
// the script sees:
//   arg[0]            the file name
//   config_directory  the directory holding the file
//   member(...)       builds a member table from positional fields
func ParseConfigurationFile(fileName string, config interface{}) error {

	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()
	L.OpenLibs()

	arg := L.NewTable()
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)
	L.SetGlobal("config_directory", lua.LString(filepath.Dir(fileName)))
	L.SetGlobal("member", L.NewFunction(memberTable))

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrMissingConfigurationTop
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string { return s },
			TagName:  "gluamapper",
		},
	}
	return mapper.Map(table, config)
}

// member("Sinchi Roca", 48, "Masculino", "Sucesor", "Noble", "Cusco")
func memberTable(L *lua.LState) int {
	t := L.NewTable()
	for i, field := range memberFields {
		t.RawSetString(field, L.Get(i+1))
	}
	L.Push(t)
	return 1
}
