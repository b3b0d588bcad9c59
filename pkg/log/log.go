// Package log provides the levelled logger used throughout the emulator.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	l *logrus.Logger
	p *message.Printer
}

// Option configures a logger.
type Option func(l *logger)

// WithPrinter sets the printer messages are rendered with, in place of
// the one matching the host locale.
func WithPrinter(p *message.Printer) Option {
	return func(l *logger) {
		l.p = p
	}
}

// New returns a Logger writing to w. Debug messages are only written
// when debug is true.
func New(w io.Writer, debug bool, opts ...Option) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}

	lg := &logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	if lg.p == nil {
		lg.p = Printer()
	}
	return lg
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.l.Info(l.p.Sprintf(format, args...))
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.l.Error(l.p.Sprintf(format, args...))
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if l.l.IsLevelEnabled(logrus.DebugLevel) {
		l.l.Debug(l.p.Sprintf(format, args...))
	}
}
