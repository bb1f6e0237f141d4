/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	elog "github.com/ethereum/go-ethereum/log"
	"github.com/jrick/logrotate/rotator"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Logger is the interface all of the package level loggers implement.
type Logger = elog.Logger

// Ctx is a map of key/value pairs to pass as context to a log function.
type Ctx = elog.Ctx

// Lvl is a log verbosity level.
type Lvl = elog.Lvl

// Handler defines where and how log records are written.
type Handler = elog.Handler

// Format controls how log records are rendered by a handler.
type Format = elog.Format

const (
	LvlCrit  = elog.LvlCrit
	LvlError = elog.LvlError
	LvlWarn  = elog.LvlWarn
	LvlInfo  = elog.LvlInfo
	LvlDebug = elog.LvlDebug
	LvlTrace = elog.LvlTrace
)

var (
	glogger *elog.GlogHandler

	logWrite *logWriter
)

// New returns a new logger with the given context.
func New(ctx ...interface{}) Logger {
	return elog.New(ctx...)
}

// Root returns the root logger.
func Root() Logger {
	return elog.Root()
}

// Trace is a convenient alias for Root().Trace
func Trace(msg string, ctx ...interface{}) {
	elog.Trace(msg, ctx...)
}

// Debug is a convenient alias for Root().Debug
func Debug(msg string, ctx ...interface{}) {
	elog.Debug(msg, ctx...)
}

// Info is a convenient alias for Root().Info
func Info(msg string, ctx ...interface{}) {
	elog.Info(msg, ctx...)
}

// Warn is a convenient alias for Root().Warn
func Warn(msg string, ctx ...interface{}) {
	elog.Warn(msg, ctx...)
}

// Error is a convenient alias for Root().Error
func Error(msg string, ctx ...interface{}) {
	elog.Error(msg, ctx...)
}

// Crit is a convenient alias for Root().Crit
func Crit(msg string, ctx ...interface{}) {
	elog.Crit(msg, ctx...)
}

// LvlFromString returns the appropriate Lvl from a string name.
func LvlFromString(lvlString string) (Lvl, error) {
	return elog.LvlFromString(lvlString)
}

// NewGlogHandler creates a new log handler with filtering functionality
// similar to Google's glog logger.
func NewGlogHandler(h Handler) *elog.GlogHandler {
	return elog.NewGlogHandler(h)
}

// StreamHandler writes log records to an io.Writer with the given format.
func StreamHandler(wr io.Writer, fmtr Format) Handler {
	return elog.StreamHandler(wr, fmtr)
}

// TerminalFormat formats log records optimized for human readability on
// a terminal with color-coded level output.
func TerminalFormat(usecolor bool) Format {
	return elog.TerminalFormat(usecolor)
}

// DiscardHandler reports success for all writes but does nothing.
func DiscardHandler() Handler {
	return elog.DiscardHandler()
}

// logWriter implements an io.Writer that outputs to both standard output and
// the write-end pipe of an initialized log rotator.
type logWriter struct {
	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	// Use for color terminal
	colorableWrite io.Writer
}

func (lw *logWriter) Init() {
	// init a colorful logger if possible
	usecolor := (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) &&
		os.Getenv("TERM") != "dumb"

	if usecolor {
		lw.colorableWrite = colorable.NewColorableStderr()
	}
}

func (lw *logWriter) Close() {
	if lw.logRotator != nil {
		lw.logRotator.Close()
	}
}

func (lw *logWriter) IsUseColor() bool {
	return lw.colorableWrite != nil
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	if lw.logRotator != nil {
		lw.logRotator.Write(p)
	}

	if lw.colorableWrite != nil {
		lw.colorableWrite.Write(p)
	} else {
		os.Stderr.Write(p)
	}
	return len(p), nil
}

func init() {
	// output set to Stderr
	// it's easier to handle when run as a daemon through systemd or supervisord,
	// and Go runtime exceptions are printed to stderr as well.
	logWrite = &logWriter{}
	logWrite.Init()
	glogger = elog.NewGlogHandler(elog.StreamHandler(io.Writer(logWrite), elog.TerminalFormat(logWrite.IsUseColor())))

	elog.Root().SetHandler(glogger)

	glogger.Verbosity(elog.LvlInfo)
}

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func InitLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n", err)
		os.Exit(1)
	}

	logWrite.logRotator = r
}

func LogWrite() *logWriter {
	return logWrite
}

func Glogger() *elog.GlogHandler {
	return glogger
}
