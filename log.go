package devlist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
)

func (lvl LogLevel) IsValid() bool {
	switch lvl {
	case LogLevelDebug, LogLevelInfo, LogLevelError:
		return true
	default:
		return false
	}
}

func (lvl LogLevel) LogrusLevel() logrus.Level {
	switch lvl {
	case LogLevelDebug:
		return logrus.DebugLevel
	case LogLevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

type logrusFileHook struct {
	file      *os.File
	formatter *logrus.TextFormatter
}

func newLogFileHook(file string, flag int, chmod os.FileMode) (*logrusFileHook, error) {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create the logs dir: '%s'", dir)
	}

	logFile, err := os.OpenFile(file, flag, chmod)
	if err != nil {
		return nil, errors.Wrap(err, "unable to write log file")
	}

	plainFormatter := &logrus.TextFormatter{FullTimestamp: true, DisableColors: true}
	return &logrusFileHook{file: logFile, formatter: plainFormatter}, nil
}

// Fire event
func (hook *logrusFileHook) Fire(entry *logrus.Entry) error {
	plainformat, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = hook.file.Write(plainformat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to write file on filehook: %v\n", err)
		return err
	}

	return nil
}

func (hook *logrusFileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *logrusFileHook) Close() error {
	return hook.file.Close()
}

// SetLogLevel sets the log level on the config and on logrus.
func (dl *Devlist) SetLogLevel(lvl LogLevel) {
	dl.Config.LogLevel = lvl
	logrus.SetLevel(lvl.LogrusLevel())
}

// configureLogger sends logs to stderr, or only to the log file when one is
// configured. Stdout carries nothing but device output.
func (dl *Devlist) configureLogger(stderr io.Writer) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	logrus.SetOutput(stderr)

	dl.SetLogLevel(dl.Config.LogLevel)

	if dl.Config.LogFile != "" {
		hook, err := newLogFileHook(dl.Config.LogFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			logrus.Error("Can't write logs to file: ", err.Error())
		} else {
			logrus.AddHook(hook)
			dl.closers = append(dl.closers, hook)
			logrus.SetOutput(io.Discard)
		}
	}

	if dl.Config.LogSyslog != "" {
		logrus.Debug("Adding syslog hook ", dl.Config.LogSyslog)
		if err := addSyslogHook(dl.Config.LogSyslog); err != nil {
			logrus.Error("Can't set up syslog: ", err.Error())
		}
	}
}
