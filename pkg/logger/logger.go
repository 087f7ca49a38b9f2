// Package logger provides the structured logging facade used by the client.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

type Logger interface {
	Info(message string, fields map[string]interface{})
	Error(message string, fields map[string]interface{})
	Warn(message string, fields map[string]interface{})
	Debug(message string, fields map[string]interface{})
}

type zeroLogger struct {
	log zerolog.Logger
}

// New returns a JSON logger writing to stdout, tagged with the service name.
func New(serviceName string) Logger {
	return &zeroLogger{
		log: zerolog.New(os.Stdout).With().
			Timestamp().
			Str("service", serviceName).
			Logger(),
	}
}

// FromZerolog wraps an existing zerolog.Logger.
func FromZerolog(log zerolog.Logger) Logger {
	return &zeroLogger{log: log}
}

func (l *zeroLogger) emit(ev *zerolog.Event, message string, fields map[string]interface{}) {
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(message)
}

func (l *zeroLogger) Info(message string, fields map[string]interface{}) {
	l.emit(l.log.Info(), message, fields)
}

func (l *zeroLogger) Error(message string, fields map[string]interface{}) {
	l.emit(l.log.Error(), message, fields)
}

func (l *zeroLogger) Warn(message string, fields map[string]interface{}) {
	l.emit(l.log.Warn(), message, fields)
}

func (l *zeroLogger) Debug(message string, fields map[string]interface{}) {
	l.emit(l.log.Debug(), message, fields)
}

// NewNop returns a logger that discards everything. The client defaults to
// this; a library should not write logs unless asked to.
func NewNop() Logger {
	return &zeroLogger{log: zerolog.Nop()}
}
