// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/carhuaz/ArbolGenealogicoInca/fault"
	"github.com/carhuaz/ArbolGenealogicoInca/member"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "familytree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"family":          "info",
		logger.DefaultTag: "critical",
	}

	// the Tahuantinsuyo demonstration data
	defaultMembers = []member.Record{
		{Name: "Manco Cápac", Age: 70, Gender: member.Male, Relation: "Fundador", Occupation: "Sapa Inca legendario", Birthplace: "Titicaca"},
		{Name: "Sinchi Roca", Age: 48, Gender: member.Male, Relation: "Sucesor", Occupation: "Noble", Birthplace: "Cusco"},
		{Name: "Lloque Yupanqui", Age: 45, Gender: member.Male, Relation: "Ancestro legendario", Occupation: "Noble", Birthplace: "Cusco"},
		{Name: "Mayta Capac", Age: 60, Gender: member.Male, Relation: "Antepasado", Occupation: "Sapa Inca", Birthplace: "Cusco"},
		{Name: "Pachacutec", Age: 55, Gender: member.Male, Relation: "Sapa Inca", Occupation: "Emperador - Reformador", Birthplace: "Cusco"},
	}

	defaultRelations = []string{
		"Fundador",
		"Sucesor",
		"Ancestro legendario",
		"Antepasado",
		"Sapa Inca",
		"Hijo",
		"Hija",
		"Nieto",
	}
)

// Configuration - front end settings
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	LoadSample    bool                 `gluamapper:"load_sample" json:"load_sample"`
	Relations     []string             `gluamapper:"relations" json:"relations"`
	Members       []member.Record      `gluamapper:"members" json:"members"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - the settings used when no configuration file is given
func Default(dataDirectory string) *Configuration {
	members := make([]member.Record, len(defaultMembers))
	copy(members, defaultMembers)
	relations := make([]string, len(defaultRelations))
	copy(relations, defaultRelations)
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Configuration{
		DataDirectory: dataDirectory,
		LoadSample:    true,
		Relations:     relations,
		Members:       members,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// GetConfiguration - will read decode and verify the configuration,
// an empty file name gives the defaults rooted at the current
// directory
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	if "" == configurationFileName {
		dataDirectory, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		options := Default(dataDirectory)
		if err := finish(options); nil != err {
			return nil, err
		}
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// lists are decoded in place, so a file replaces them entirely
	options := Default(".")
	options.Members = nil
	options.Relations = nil

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}
	if 0 == len(options.Relations) {
		options.Relations = append(options.Relations, defaultRelations...)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrNotADirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	}

	if err := finish(options); nil != err {
		return nil, err
	}
	return options, nil
}

// path checks common to both sources of configuration
func finish(options *Configuration) error {

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fault.ErrNotADirectory
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fault.ErrNotPlainFileName
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{&options.Logging.Directory} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return err
		}
	}

	// the sample must pass the same checks as a member entered from
	// the menu, stored in the same normalised form
	for i := range options.Members {
		r, err := options.Members[i].Validate()
		if nil != err {
			return err
		}
		options.Members[i] = r
	}

	// done
	return nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
