// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/carhuaz/ArbolGenealogicoInca/configuration"
	"github.com/carhuaz/ArbolGenealogicoInca/family"
	"github.com/carhuaz/ArbolGenealogicoInca/fault"
)

// read configuration, start logging and create the registry
func setup(configurationFile string, verbose bool, w io.Writer, e io.Writer) (*metadata, error) {

	if verbose {
		fmt.Fprintf(e, "reading config file: %q\n", configurationFile)
	}

	config, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		return nil, err
	}

	if err := logger.Initialise(config.Logging); nil != err {
		return nil, err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return nil, err
	}

	log := logger.New("main")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", config)

	registry := family.New(logger.New("family"))
	if config.LoadSample {
		n := registry.LoadSample(config.Members)
		if verbose {
			fmt.Fprintf(e, "loaded: %d sample members\n", n)
		}
	}

	return &metadata{
		config:   config,
		registry: registry,
		log:      log,
		verbose:  verbose,
		e:        e,
		w:        w,
	}, nil
}
