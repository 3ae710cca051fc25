// Package cmdlogger routes log messages of the CLI to stdout and stderr, and
// remembers whether anything went wrong so the exit code can reflect it.
package cmdlogger

import (
	"fmt"
	"log/slog"
)

type CmdLogger interface {
	slog.Handler
	SendEverythingToStderr()
	HasErrored() bool
	HasErroredBecauseInvalidConfig() bool
	SetLevel(level slog.Leveler)
}

// current returns the default handler if it is a CmdLogger, which is not
// the case when running as a library
func current() (CmdLogger, bool) {
	l, ok := slog.Default().Handler().(CmdLogger)

	return l, ok
}

// SendEverythingToStderr is [Handler.SendEverythingToStderr] for the default
// logger, used before writing JSON to stdout.
func SendEverythingToStderr() {
	if l, ok := current(); ok {
		l.SendEverythingToStderr()
	}
}

func SetLevel(level slog.Leveler) {
	if l, ok := current(); ok {
		l.SetLevel(level)
	}
}

func Debugf(msg string, args ...any) {
	slog.Debug(fmt.Sprintf(msg, args...))
}

func Infof(msg string, args ...any) {
	slog.Info(fmt.Sprintf(msg, args...))
}

func Warnf(msg string, args ...any) {
	slog.Warn(fmt.Sprintf(msg, args...))
}

func Errorf(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...))
}
