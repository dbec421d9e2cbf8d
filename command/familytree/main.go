// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/carhuaz/ArbolGenealogicoInca/configuration"
	"github.com/carhuaz/ArbolGenealogicoInca/family"
	"github.com/carhuaz/ArbolGenealogicoInca/fault"
)

type metadata struct {
	config   *configuration.Configuration
	registry *family.Registry
	log      *logger.L
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "familytree"
	app.Usage = "family tree members kept in a balanced tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE` [built-in sample]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "menu",
			Usage:  "interactive session: insert, find, modify, delete and display members",
			Action: runMenu,
		},
		{
			Name:      "list",
			Usage:     "list the sample members in a traversal order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: string(family.Pre),
					Usage: " traversal `ORDER` [pre|in|post|level]",
				},
			},
			Action: runList,
		},
		{
			Name:      "find",
			Usage:     "show one member and its place in name order",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "position, p",
					Value: 0,
					Usage: " show the member at one based `POSITION` in name order instead",
				},
			},
			Action: runFind,
		},
		{
			Name:   "stats",
			Usage:  "count, depth, ages and relations of the sample members",
			Action: runStats,
		},
		{
			Name:  "diagram",
			Usage: "draw the tree",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "hierarchy, t",
					Usage: " top down hierarchy instead of sideways diagram",
				},
			},
			Action: runDiagram,
		},
		{
			Name:   "generations",
			Usage:  "list the sample members level by level from the root",
			Action: runGenerations,
		},
		{
			Name:  "version",
			Usage: "display familytree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		// to suppress reading config file for version
		if "version" == c.Args().Get(0) {
			return nil
		}

		m, err := setup(c.GlobalString("config-file"), c.GlobalBool("verbose"), c.App.Writer, c.App.ErrWriter)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("shutting down…")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
