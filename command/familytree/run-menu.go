// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/carhuaz/ArbolGenealogicoInca/display"
	"github.com/carhuaz/ArbolGenealogicoInca/family"
	"github.com/carhuaz/ArbolGenealogicoInca/fault"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

// source of answers, one per line
type lineReader interface {
	readLine(prompt string) (string, error)
}

// piped or redirected input
type bufferedInput struct {
	r *bufio.Reader
	w io.Writer
}

func (b bufferedInput) readLine(prompt string) (string, error) {
	fmt.Fprint(b.w, prompt)
	line, err := b.r.ReadString('\n')
	if nil != err && !(io.EOF == err && "" != line) {
		return "", err
	}
	return line, nil
}

// console input with line editing, the terminal must be in raw mode
type terminalInput struct {
	t *terminal.Terminal
}

func (c terminalInput) readLine(prompt string) (string, error) {
	c.t.SetPrompt(prompt)
	return c.t.ReadLine()
}

// an interactive session
type session struct {
	in        lineReader
	w         io.Writer
	registry  *family.Registry
	relations []string
	log       *logger.L
}

type menuItem struct {
	option string
	title  string
	action func(*session) error
}

var menuItems = []menuItem{
	{"1", "Insert member", (*session).insert},
	{"2", "Find member", (*session).find},
	{"3", "Modify member", (*session).modify},
	{"4", "Delete member", (*session).remove},
	{"5", "Show members in pre-order", traversal(family.Pre)},
	{"6", "Show members in in-order", traversal(family.In)},
	{"7", "Show members in post-order", traversal(family.Post)},
	{"8", "Show members in level order", traversal(family.Level)},
	{"9", "Statistics", (*session).statistics},
	{"10", "History", (*session).history},
	{"11", "Tree diagram", (*session).diagram},
	{"12", "Hierarchy", (*session).hierarchy},
	{"13", "Show members by generation", (*session).generations},
}

const quitOption = "0"

func runMenu(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	s := &session{
		in:        bufferedInput{r: bufio.NewReader(os.Stdin), w: m.w},
		w:         m.w,
		registry:  m.registry,
		relations: m.config.Relations,
		log:       logger.New("menu"),
	}

	fd := int(os.Stdin.Fd())
	if terminal.IsTerminal(fd) {
		oldState, err := terminal.MakeRaw(fd)
		if nil != err {
			return err
		}
		defer terminal.Restore(fd, oldState)

		console := terminal.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, m.w}, "")
		s.in = terminalInput{t: console}
		s.w = console
	}
	return s.run()
}

// run until the quit option or end of input
func (s *session) run() error {
	for {
		s.showMenu()
		option, err := s.prompt("Option")
		if io.EOF == err {
			fmt.Fprintln(s.w)
			return nil
		}
		if nil != err {
			fault.Criticalf("menu: read option error: %s", err)
			return err
		}
		if quitOption == option {
			fmt.Fprintln(s.w, "Goodbye.")
			return nil
		}

		item, ok := lookupItem(option)
		if !ok {
			fmt.Fprintln(s.w, "Invalid option, try again.")
			continue
		}
		s.log.Debugf("option: %s  %s", item.option, item.title)

		err = item.action(s)
		if io.EOF == err {
			fmt.Fprintln(s.w)
			return nil
		}
		if nil != err {
			fmt.Fprintf(s.w, "error: %s\n", err)
		}
	}
}

func lookupItem(option string) (menuItem, bool) {
	for _, item := range menuItems {
		if item.option == option {
			return item, true
		}
	}
	return menuItem{}, false
}

func (s *session) showMenu() {
	fmt.Fprintln(s.w)
	fmt.Fprintln(s.w, "==== FAMILY TREE ====")
	for _, item := range menuItems {
		fmt.Fprintf(s.w, "%3s. %s\n", item.option, item.title)
	}
	fmt.Fprintf(s.w, "%3s. %s\n", quitOption, "Exit")
}

// one trimmed line of input
func (s *session) prompt(label string) (string, error) {
	line, err := s.in.readLine(label + ": ")
	if nil != err {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *session) promptAge(label string) (int, error) {
	text, err := s.prompt(label)
	if nil != err {
		return 0, err
	}
	age, err := strconv.Atoi(text)
	if nil != err {
		return 0, fault.ErrInvalidNumber
	}
	if err := member.ValidAge(age); nil != err {
		return 0, err
	}
	return age, nil
}

func (s *session) promptName() (string, error) {
	text, err := s.prompt("Name")
	if nil != err {
		return "", err
	}
	name := member.NormaliseName(text)
	if "" == name {
		return "", fault.ErrRequiredName
	}
	return name, nil
}

func (s *session) promptText(label string, blank error) (string, error) {
	text, err := s.prompt(label)
	if nil != err {
		return "", err
	}
	return member.RequireText(text, blank)
}

func (s *session) insert() error {
	name, err := s.promptName()
	if nil != err {
		return err
	}
	if _, ok := s.registry.Find(name); ok {
		return fault.ErrDuplicateMember
	}
	age, err := s.promptAge(fmt.Sprintf("Age [%d-%d]", member.MinimumAge, member.MaximumAge))
	if nil != err {
		return err
	}

	genders := member.Genders()
	choices := make([]string, len(genders))
	for i, g := range genders {
		choices[i] = string(g)
	}
	text, err := s.prompt("Gender [" + strings.Join(choices, "/") + "]")
	if nil != err {
		return err
	}
	gender, err := member.ParseGender(text)
	if nil != err {
		return err
	}

	r := member.Record{
		Name:   name,
		Age:    age,
		Gender: gender,
	}
	if r.Relation, err = s.promptText("Relation", fault.ErrBlankRelation); nil != err {
		return err
	}
	if r.Occupation, err = s.promptText("Occupation", fault.ErrBlankOccupation); nil != err {
		return err
	}
	if r.Birthplace, err = s.promptText("Birthplace", fault.ErrBlankBirthplace); nil != err {
		return err
	}

	r, err = r.Validate()
	if nil != err {
		return err
	}
	if !s.registry.Insert(r) {
		return fault.ErrDuplicateMember
	}
	fmt.Fprintf(s.w, "Inserted: %s\n", r.Name)
	return nil
}

func (s *session) find() error {
	name, err := s.promptName()
	if nil != err {
		return err
	}
	p, ok := s.registry.Locate(name)
	if !ok {
		return fault.ErrMemberNotFound
	}
	display.Card(s.w, p.Record)
	display.Placement(s.w, p)
	return nil
}

// modify age, occupation and relation; name and gender stay fixed
func (s *session) modify() error {
	name, err := s.promptName()
	if nil != err {
		return err
	}
	r, ok := s.registry.Find(name)
	if !ok {
		return fault.ErrMemberNotFound
	}
	display.Card(s.w, r)

	age, err := s.promptAge(fmt.Sprintf("New age [%d-%d]", member.MinimumAge, member.MaximumAge))
	if nil != err {
		return err
	}
	occupation, err := s.promptText("New occupation", fault.ErrBlankOccupation)
	if nil != err {
		return err
	}
	relation, err := s.promptText("New relation", fault.ErrBlankRelation)
	if nil != err {
		return err
	}

	if !s.registry.Update(name, age, occupation, relation) {
		return fault.ErrMemberNotFound
	}
	fmt.Fprintf(s.w, "Modified: %s\n", name)
	return nil
}

func (s *session) remove() error {
	name, err := s.promptName()
	if nil != err {
		return err
	}
	if !s.registry.Delete(name) {
		return fault.ErrMemberNotFound
	}
	fmt.Fprintf(s.w, "Deleted: %s\n", name)
	return nil
}

func traversal(order family.Order) func(*session) error {
	return func(s *session) error {
		display.Table(s.w, s.registry, order)
		return nil
	}
}

func (s *session) statistics() error {
	display.Statistics(s.w, s.registry.Statistics(s.relations))
	return nil
}

func (s *session) history() error {
	display.History(s.w, s.registry.History())
	return nil
}

func (s *session) diagram() error {
	if s.registry.IsEmpty() {
		fmt.Fprintln(s.w, "(empty tree)")
		return nil
	}
	depth := s.registry.Diagram(s.w)
	fmt.Fprintf(s.w, "depth: %d\n", depth)
	return nil
}

func (s *session) hierarchy() error {
	fmt.Fprint(s.w, display.Hierarchy(s.registry.Shape()))
	return nil
}

func (s *session) generations() error {
	display.Generations(s.w, s.registry.Generations())
	return nil
}
