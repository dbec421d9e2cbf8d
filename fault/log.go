// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before the program gives up
var log *logger.L

// where messages go when the channel is not open
var fallback io.Writer = os.Stderr

// Initialise - open the PANIC channel, the logger must already be
// initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and close the channel
func Finalise() {
	if nil == log {
		return
	}
	log.Flush()
	log = nil
}

// Critical - log a message prefixed by the caller's file and line
func Critical(message string) {
	critical(2, "%s", message)
}

// Criticalf - as Critical with fmt.Sprintf formatting
func Criticalf(format string, arguments ...interface{}) {
	critical(2, format, arguments...)
}

func critical(skip int, format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(skip); ok {
		message = fmt.Sprintf("(%s:%d) %s", filepath.Base(file), line, message)
	}

	if nil == log {
		fmt.Fprintf(fallback, "*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}
