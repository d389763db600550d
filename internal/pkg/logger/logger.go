// Package logger provides the logrus-backed diagnostic sink. Stdout is
// reserved for the status line consumed by the scheduler, so all log output
// goes to stderr or to a file.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options configures the sink for one invocation.
type Options struct {
	// Level is a logrus level name ("debug", "info", ...). Invalid or
	// empty values fall back to warn so a misconfigured probe stays quiet.
	Level string
	// File receives log output when set; stderr is used otherwise.
	File string
	// BaseFields are attached to every entry (e.g. the invocation run id).
	BaseFields map[string]interface{}
}

// LogrusLogger implements ports.Logger on top of a dedicated logrus instance.
type LogrusLogger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// New builds the sink. The returned teardown flushes and closes the file
// sink (a no-op for stderr) and must be called on process exit.
func New(opts Options) (*LogrusLogger, func() error, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	l.SetLevel(level)

	var closer io.Closer
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		l.SetOutput(f)
		closer = f
	} else {
		l.SetOutput(os.Stderr)
	}

	fields := logrus.Fields{}
	for k, v := range opts.BaseFields {
		fields[k] = v
	}

	logger := &LogrusLogger{entry: l.WithFields(fields), closer: closer}
	return logger, logger.teardown, nil
}

func (l *LogrusLogger) teardown() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error, fields map[string]interface{}) {
	entry := l.entry.WithFields(logrus.Fields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}
