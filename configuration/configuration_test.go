// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhuaz/ArbolGenealogicoInca/configuration"
	"github.com/carhuaz/ArbolGenealogicoInca/fault"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

const sampleConfiguration = `
local M = {}

M.data_directory = "."
M.load_sample = true

M.relations = { "Hijo", "Hija" }

M.members = {
    {
        name = "Huayna Capac",
        age = 52,
        gender = "Masculino",
        relation = "Hijo",
        occupation = "Sapa Inca",
        birthplace = "Tomebamba",
    },
    {
        name = "  Mama   Ocllo ",
        age = 40,
        gender = "Femenino",
        relation = "Hija",
        occupation = "Coya",
        birthplace = "Cusco",
    },
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        family = "debug",
    },
}

return M
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write: %s", fileName)
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "familytree")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "familytree.conf", sampleConfiguration)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "parse error")

	expectedDir, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Clean(expectedDir), filepath.Clean(c.DataDirectory), "data directory")
	assert.True(t, c.LoadSample, "load sample")
	assert.Equal(t, []string{"Hijo", "Hija"}, c.Relations, "relations")

	require.Equal(t, 2, len(c.Members), "members")
	assert.Equal(t, member.Record{
		Name:       "Huayna Capac",
		Age:        52,
		Gender:     member.Male,
		Relation:   "Hijo",
		Occupation: "Sapa Inca",
		Birthplace: "Tomebamba",
	}, c.Members[0], "first member")
	assert.Equal(t, "Mama Ocllo", c.Members[1].Name, "name not normalised")

	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "familytree.log", c.Logging.File, "default log file kept")
	assert.Equal(t, "debug", c.Logging.Levels["family"], "log level")
	assert.Equal(t, "info", c.Logging.Levels["main"], "default log level kept")
	assert.Equal(t, filepath.Join(c.DataDirectory, "log"), c.Logging.Directory, "log directory")

	info, err := os.Stat(c.Logging.Directory)
	require.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestGetConfigurationDefaultRelations(t *testing.T) {
	dir, err := ioutil.TempDir("", "familytree")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "plain.conf", `return { data_directory = "." }`)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "parse error")
	assert.Equal(t, 0, len(c.Members), "members should come only from the file")
	assert.Contains(t, c.Relations, "Fundador", "default relations")
	assert.True(t, c.LoadSample, "load sample default")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "familytree")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	noTable := writeFile(t, dir, "none.conf", `local x = 1`)
	_, err = configuration.GetConfiguration(noTable)
	assert.Equal(t, fault.ErrMissingConfigurationTop, err, "missing table")

	badPath := writeFile(t, dir, "path.conf", `return { data_directory = ".", logging = { file = "sub/x.log" } }`)
	_, err = configuration.GetConfiguration(badPath)
	assert.Equal(t, fault.ErrNotPlainFileName, err, "log file with path")

	noDir := writeFile(t, dir, "nodir.conf", `return { data_directory = "missing" }`)
	_, err = configuration.GetConfiguration(noDir)
	assert.NotNil(t, err, "missing data directory accepted")

	syntax := writeFile(t, dir, "syntax.conf", `return {`)
	_, err = configuration.GetConfiguration(syntax)
	assert.NotNil(t, err, "syntax error accepted")
}

func TestParseConfigurationFileNeedsStruct(t *testing.T) {
	var s string
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile("x", s), "non pointer")
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile("x", &s), "non struct")
}

func TestDefault(t *testing.T) {
	c := configuration.Default("/tmp")
	assert.True(t, c.LoadSample, "load sample")
	assert.Equal(t, 5, len(c.Members), "sample members")
	assert.Equal(t, "Manco Cápac", c.Members[0].Name, "first sample member")

	// defaults are copies
	c.Members[0].Name = "changed"
	assert.Equal(t, "Manco Cápac", configuration.Default("/tmp").Members[0].Name, "defaults modified")
}

func TestMemberHelper(t *testing.T) {
	dir, err := ioutil.TempDir("", "familytree")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "helper.conf", `
return {
    data_directory = config_directory,
    members = {
        member("Sinchi Roca", 48, "Masculino", "Sucesor", "Noble", "Cusco"),
        member("Mama Ocllo", 40, "f", "Hija", "Coya", "Titicaca"),
    },
}
`)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "parse error")

	expected := []member.Record{
		{Name: "Sinchi Roca", Age: 48, Gender: member.Male, Relation: "Sucesor", Occupation: "Noble", Birthplace: "Cusco"},
		{Name: "Mama Ocllo", Age: 40, Gender: member.Female, Relation: "Hija", Occupation: "Coya", Birthplace: "Titicaca"},
	}
	assert.Equal(t, expected, c.Members, "members")

	abs, err := filepath.Abs(dir)
	require.Nil(t, err, "absolute directory")
	assert.Equal(t, filepath.Clean(abs), c.DataDirectory, "data directory")
}

func TestInvalidMembersRejected(t *testing.T) {
	dir, err := ioutil.TempDir("", "familytree")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	rows := []struct {
		row      string
		expected error
	}{
		{`member("Bad", 500, "Otro", "", "", "")`, fault.ErrAgeOutOfRange},
		{`member("Bad", -1, "Masculino", "Hijo", "Noble", "Cusco")`, fault.ErrAgeOutOfRange},
		{`member("Bad", 30, "Otro", "Hijo", "Noble", "Cusco")`, fault.ErrInvalidGender},
		{`member("Bad", 30, "Masculino", "", "Noble", "Cusco")`, fault.ErrBlankRelation},
		{`member("Bad", 30, "Masculino", "Hijo", "  ", "Cusco")`, fault.ErrBlankOccupation},
		{`member("Bad", 30, "Masculino", "Hijo", "Noble")`, fault.ErrBlankBirthplace},
		{`member("   ", 30, "Masculino", "Hijo", "Noble", "Cusco")`, fault.ErrBlankName},
	}
	for i, r := range rows {
		fileName := writeFile(t, dir, "bad.conf", `
return {
    data_directory = ".",
    members = {
        member("Sinchi Roca", 48, "Masculino", "Sucesor", "Noble", "Cusco"),
        `+r.row+`,
    },
}
`)
		c, err := configuration.GetConfiguration(fileName)
		assert.Equal(t, r.expected, err, "%d: %s", i, r.row)
		assert.Nil(t, c, "%d: configuration returned", i)
	}
}
