// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/carhuaz/ArbolGenealogicoInca/display"
	"github.com/carhuaz/ArbolGenealogicoInca/family"
	"github.com/carhuaz/ArbolGenealogicoInca/fault"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	order, err := family.ParseOrder(c.String("order"))
	if nil != err {
		return err
	}
	display.Table(m.w, m.registry, order)
	return nil
}

func runFind(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if position := c.Int("position"); 0 != position {
		r, ok := m.registry.At(position)
		if !ok {
			return fault.ErrMemberNotFound
		}
		display.Card(m.w, r)
		return nil
	}

	name := member.NormaliseName(c.Args().First())
	if "" == name {
		return fault.ErrRequiredName
	}
	p, ok := m.registry.Locate(name)
	if !ok {
		return fault.ErrMemberNotFound
	}
	display.Card(m.w, p.Record)
	display.Placement(m.w, p)
	return nil
}

func runStats(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	display.Statistics(m.w, m.registry.Statistics(m.config.Relations))
	return nil
}

func runDiagram(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if c.Bool("hierarchy") {
		fmt.Fprint(m.w, display.Hierarchy(m.registry.Shape()))
		return nil
	}
	depth := m.registry.Diagram(m.w)
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

func runGenerations(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	display.Generations(m.w, m.registry.Generations())
	return nil
}
