// Package logging builds the go-kit logger shared by services and entry points.
package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New returns a synchronized logfmt logger filtered at the named level
// ("debug", "info", "warn", "error"; anything else means info)
func New(w io.Writer, lvl string, app string) log.Logger {
	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(w)
		logger = log.NewSyncLogger(logger)
		logger = level.NewFilter(logger, levelOption(lvl))
		logger = log.With(logger,
			"app", app,
			"ts", log.DefaultTimestampUTC,
			"caller", log.DefaultCaller,
		)
	}
	return logger
}

// Component scopes logger to a named component
func Component(logger log.Logger, name string) log.Logger {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return log.With(logger, "component", name)
}

func levelOption(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
