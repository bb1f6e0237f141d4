// Copyright (c) 2017-2018 The qitmeer developers

package blockdag

import (
	l "github.com/Qitmeer/phantom/log"
)

// log is a logger that is initialized with no output filters.  This
// means the package will not perform any logging by default until the caller
// requests it.
var log l.Logger

// The default amount of logging is none.
func init() {
	DisableLog()
}

// DisableLog disables all library log output.  Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	logger := l.New()
	logger.SetHandler(l.DiscardHandler())
	log = logger
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger l.Logger) {
	log = logger
}
