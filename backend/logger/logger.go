// ABOUTME: slog setup for the configurator API
// ABOUTME: LOG_LEVEL, LOG_FORMAT and LOG_SOURCE select the handler; every record carries the service name

package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Service is attached to every record so API and CLI logs can be told apart
const Service = "hrg-configurator"

// Init installs the default logger from the environment:
//
//	LOG_LEVEL   debug, info, warn, error (default info)
//	LOG_FORMAT  text or json (default text)
//	LOG_SOURCE  true adds file:line to each record
func Init() *slog.Logger {
	addSource, _ := strconv.ParseBool(os.Getenv("LOG_SOURCE"))
	l := slog.New(handler(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), addSource)).
		With("service", Service)
	slog.SetDefault(l)
	return l
}

// New builds a logger writing to w with the given level and format names
func New(w io.Writer, level, format string) *slog.Logger {
	return slog.New(handler(w, level, format, false)).With("service", Service)
}

func handler(w io.Writer, level, format string, addSource bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level), AddSource: addSource}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLevel accepts slog level names plus "warning". Anything else is info.
func parseLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
