// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/carhuaz/ArbolGenealogicoInca/family"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

const (
	tableFormat = "%-4s %-20s %4s  %-10s %-20s %-22s %-12s\n"
	ruleWidth   = 100
)

// Titles - heading and one line explanation for each order
var Titles = map[family.Order][2]string{
	family.Pre:   {"PRE-ORDER (seniority: ancestors → descendants)", "the root is visited first, so each ancestor precedes its descendants"},
	family.In:    {"IN-ORDER (left branch → node → right branch)", "ascending by name, showing how members split between the branches"},
	family.Post:  {"POST-ORDER (descendants → ancestor)", "descendants are visited before their ancestor"},
	family.Level: {"LEVEL ORDER (approximate generations)", "members by distance from the root: level 0 is the root, level 1 its children"},
}

func rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}

// Table - numbered list of the registry's records in the given order,
// rows are written while the registry is locked
func Table(w io.Writer, reg *family.Registry, order family.Order) {
	if t, ok := Titles[order]; ok {
		fmt.Fprintf(w, "\n=== %s ===\n%s\n", t[0], t[1])
	}
	rule(w)
	fmt.Fprintf(w, tableFormat, "#", "Name", "Age", "Gender", "Relation", "Occupation", "Birthplace")
	rule(w)
	rows := 0
	reg.Walk(order, func(e family.Entry) bool {
		row(w, e)
		rows += 1
		return true
	})
	if 0 == rows {
		fmt.Fprintln(w, "(empty tree)")
	}
	rule(w)
}

func row(w io.Writer, e family.Entry) {
	r := e.Record
	fmt.Fprintf(w, tableFormat,
		fmt.Sprintf("%d.", e.Position),
		clip(r.Name, 20),
		fmt.Sprint(r.Age),
		clip(string(r.Gender), 10),
		clip(r.Relation, 20),
		clip(r.Occupation, 22),
		clip(r.Birthplace, 12),
	)
}

// Generations - one line per level of the tree, numbered from the root
func Generations(w io.Writer, generations []family.Generation) {
	fmt.Fprintln(w, "\n=== GENERATIONS (distance from the root) ===")
	if 0 == len(generations) {
		fmt.Fprintln(w, "(empty tree)")
	}
	for _, g := range generations {
		names := make([]string, len(g.Records))
		for i, r := range g.Records {
			names[i] = r.Name
		}
		fmt.Fprintf(w, "Generation %d: %s\n", g.Level, strings.Join(names, ", "))
	}
}

// Placement - a member's position in name order and its neighbours
func Placement(w io.Writer, p family.Placement) {
	fmt.Fprintf(w, "Position:   %d of %d in name order\n", p.Position, p.Total)
	fmt.Fprintf(w, "Previous:   %s\n", orNone(p.Previous))
	fmt.Fprintf(w, "Next:       %s\n", orNone(p.Next))
}

func orNone(s string) string {
	if "" == s {
		return "(none)"
	}
	return s
}

// Card - every field of a single record
func Card(w io.Writer, r member.Record) {
	fmt.Fprintln(w, "\n----------------- MEMBER -----------------")
	fmt.Fprintf(w, "Name:       %s\n", r.Name)
	fmt.Fprintf(w, "Age:        %d\n", r.Age)
	fmt.Fprintf(w, "Gender:     %s\n", r.Gender)
	fmt.Fprintf(w, "Relation:   %s\n", r.Relation)
	fmt.Fprintf(w, "Occupation: %s\n", r.Occupation)
	fmt.Fprintf(w, "Birthplace: %s\n", r.Birthplace)
	fmt.Fprintln(w, "------------------------------------------")
}

// History - numbered session history
func History(w io.Writer, history []string) {
	fmt.Fprintln(w, "\n=== Session history ===")
	if 0 == len(history) {
		fmt.Fprintln(w, "(empty)")
	}
	for i, h := range history {
		fmt.Fprintf(w, "%d. %s\n", i+1, h)
	}
	fmt.Fprintln(w, "=======================")
}

// Statistics - the aggregate block
func Statistics(w io.Writer, s family.Statistics) {
	fmt.Fprintln(w, "\n=== Statistics ===")
	fmt.Fprintf(w, "Total members:             %d\n", s.Count)
	fmt.Fprintf(w, "Depth (approx generations): %d\n", s.Depth)
	fmt.Fprintf(w, "Balanced:                  %v\n", s.Balanced)
	if s.AgeCount > 0 {
		fmt.Fprintf(w, "Average age:               %.2f\n", s.AverageAge)
		fmt.Fprintf(w, "Youngest / oldest:         %d / %d\n", s.MinimumAge, s.MaximumAge)
	} else {
		fmt.Fprintln(w, "Average age:               n/a")
	}
	if len(s.Relations) > 0 {
		fmt.Fprintln(w, "Members per relation:")
		for _, f := range s.Relations {
			fmt.Fprintf(w, "  %-24s %d\n", f.Label, f.Count)
		}
	}
}

// shorten a field to fit a column, counting runes not bytes
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
