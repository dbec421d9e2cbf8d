// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/carhuaz/ArbolGenealogicoInca/configuration"
	"github.com/carhuaz/ArbolGenealogicoInca/family"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// run a session over scripted input, returning the output
func script(t *testing.T, reg *family.Registry, input string) string {
	buffer := &bytes.Buffer{}
	s := &session{
		in:        bufferedInput{r: bufio.NewReader(strings.NewReader(input)), w: buffer},
		w:         buffer,
		registry:  reg,
		relations: configuration.Default(".").Relations,
		log:       logger.New("menu"),
	}
	require.NoError(t, s.run(), "session")
	return buffer.String()
}

func newRegistry() *family.Registry {
	return family.New(logger.New("family"))
}

const insertScenario = "1\nAnta\n30\nm\nHijo\nAgricultor\nCusco\n" +
	"1\nZeta\n40\nFemenino\nHija\nTejedora\nPuno\n" +
	"1\nMori\n50\nMasculino\nNieto\nGuerrero\nCusco\n"

func TestMenuInsertAndList(t *testing.T) {
	reg := newRegistry()
	out := script(t, reg, insertScenario+"6\n0\n")

	assert.Contains(t, out, "Inserted: Anta")
	assert.Contains(t, out, "Inserted: Zeta")
	assert.Contains(t, out, "Inserted: Mori")
	assert.Contains(t, out, "Goodbye.")

	assert.Equal(t, 3, reg.Count(), "count")
	assert.Equal(t, 2, reg.Depth(), "depth")
	assert.True(t, reg.IsBalanced(), "balanced")

	table := out[strings.Index(out, "IN-ORDER"):]
	a := strings.Index(table, "Anta")
	m := strings.Index(table, "Mori")
	z := strings.Index(table, "Zeta")
	assert.True(t, a < m && m < z, "in-order sequence: %d %d %d", a, m, z)

	r, ok := reg.Find("Zeta")
	require.True(t, ok, "find")
	assert.Equal(t, "Femenino", string(r.Gender), "gender")
}

func TestMenuRejectedInput(t *testing.T) {
	reg := newRegistry()
	out := script(t, reg,
		"99\n"+
			"1\nInti\n200\n"+
			"1\nInti\nabc\n"+
			"1\nInti\n20\nx\n"+
			"1\nInti\n20\nm\n \n"+
			"1\n   \n"+
			"0\n")

	assert.Contains(t, out, "Invalid option, try again.")
	assert.Contains(t, out, "error: age is out of range")
	assert.Contains(t, out, "error: invalid number")
	assert.Contains(t, out, "error: gender is invalid")
	assert.Contains(t, out, "error: relation is blank")
	assert.Contains(t, out, "error: name is required")
	assert.Equal(t, 0, reg.Count(), "nothing inserted")
}

func TestMenuDuplicate(t *testing.T) {
	reg := newRegistry()
	out := script(t, reg, insertScenario+"1\nAnta\n0\n")

	assert.Contains(t, out, "error: member already exists")
	assert.Equal(t, 3, reg.Count(), "count")
}

func TestMenuModifyAndDelete(t *testing.T) {
	reg := newRegistry()
	out := script(t, reg, insertScenario+
		"3\nAnta\n31\nSacerdote\nSucesor\n"+
		"3\nXyz\n"+
		"4\nXyz\n"+
		"4\nMori\n"+
		"2\nAnta\n"+
		"10\n"+
		"0\n")

	assert.Contains(t, out, "Modified: Anta")
	assert.Contains(t, out, "Deleted: Mori")
	assert.Contains(t, out, "error: member not found")
	assert.Contains(t, out, "Occupation: Sacerdote")

	r, ok := reg.Find("Anta")
	require.True(t, ok, "find")
	assert.Equal(t, 31, r.Age, "age")
	assert.Equal(t, "Sucesor", r.Relation, "relation")

	_, ok = reg.Find("Mori")
	assert.False(t, ok, "deleted")
	assert.Equal(t, 2, reg.Count(), "count")

	assert.Equal(t, []string{
		"INSERT: Anta",
		"INSERT: Zeta",
		"INSERT: Mori",
		"MODIFY: Anta",
		"DELETE: Mori",
	}, reg.History(), "history")
	assert.Contains(t, out, "5. DELETE: Mori")
}

func TestMenuViews(t *testing.T) {
	reg := newRegistry()
	reg.LoadSample(configuration.Default(".").Members)

	out := script(t, reg, "5\n7\n8\n9\n11\n12\n13\n2\nMayta Capac\n")

	assert.Contains(t, out, "PRE-ORDER")
	assert.Contains(t, out, "POST-ORDER")
	assert.Contains(t, out, "LEVEL ORDER")
	assert.Contains(t, out, "=== Statistics ===")
	assert.Contains(t, out, "depth: 3")
	assert.Contains(t, out, "[L]")
	assert.Contains(t, out, "[R]")

	assert.Contains(t, out, "Generation 0: Manco C\u00e1pac\n")
	assert.Contains(t, out, "Generation 1: Lloque Yupanqui, Pachacutec\n")
	assert.Contains(t, out, "Generation 2: Mayta Capac, Sinchi Roca\n")

	assert.Contains(t, out, "Position:   3 of 5 in name order\n")
	assert.Contains(t, out, "Previous:   Manco C\u00e1pac\n")
	assert.Contains(t, out, "Next:       Pachacutec\n")
}

func TestMenuEmptyViews(t *testing.T) {
	out := script(t, newRegistry(), "9\n11\n12\n13\n6\n")

	assert.Contains(t, out, "Average age:               n/a")
	assert.Equal(t, 4, strings.Count(out, "(empty tree)"), "empty tree messages")
}

func TestMenuEndOfInput(t *testing.T) {
	reg := newRegistry()

	// last answer without a newline is still accepted
	out := script(t, reg, "1\nAnta\n30\nm\nHijo\nAgricultor\nCusco")
	assert.Contains(t, out, "Inserted: Anta")

	// input stops in the middle of an insert
	out = script(t, reg, "1\nZeta\n")
	assert.NotContains(t, out, "error:")
	assert.Equal(t, 1, reg.Count(), "count")
}

func TestLookupItem(t *testing.T) {
	for _, option := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13"} {
		_, ok := lookupItem(option)
		assert.True(t, ok, "option: %s", option)
	}
	for _, option := range []string{"", "14", "x", quitOption} {
		_, ok := lookupItem(option)
		assert.False(t, ok, "option: %q", option)
	}
}

func TestSampleConfiguration(t *testing.T) {
	config, err := configuration.GetConfiguration("familytree.conf.sample")
	require.NoError(t, err, "sample configuration")

	assert.True(t, config.LoadSample, "load sample")
	assert.Equal(t, 5, len(config.Members), "members")
	assert.Equal(t, "Manco C\u00e1pac", config.Members[0].Name, "normalised name")
	assert.Contains(t, config.Relations, "Sapa Inca")

	reg := newRegistry()
	assert.Equal(t, 5, reg.LoadSample(config.Members), "loaded")
	assert.True(t, reg.IsBalanced(), "balanced")
	_ = os.RemoveAll(config.Logging.Directory)
}

func TestTerminalInput(t *testing.T) {
	buffer := &bytes.Buffer{}
	console := terminal.NewTerminal(struct {
		io.Reader
		io.Writer
	}{strings.NewReader("Anta\r30\r"), buffer}, "")
	in := terminalInput{t: console}

	line, err := in.readLine("Name: ")
	require.NoError(t, err, "first line")
	assert.Equal(t, "Anta", line, "name")

	line, err = in.readLine("Age: ")
	require.NoError(t, err, "second line")
	assert.Equal(t, "30", line, "age")

	_, err = in.readLine("Gender: ")
	assert.Equal(t, io.EOF, err, "end of input")
	assert.Contains(t, buffer.String(), "Name: ")
}
