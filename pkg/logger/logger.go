package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Thin wrapper around logrus used across the service.
// Init(level) is called once at startup; the level usually comes from the
// LOG_LEVEL environment variable (debug|info|warn|error|fatal).

// Init sets the global log level (case-insensitive). Default level is Info.
func Init(l string) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "fatal":
		logrus.SetLevel(logrus.FatalLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func Debugf(format string, v ...interface{}) { logrus.Debugf(format, v...) }
func Infof(format string, v ...interface{})  { logrus.Infof(format, v...) }
func Warnf(format string, v ...interface{})  { logrus.Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { logrus.Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { logrus.Fatalf(format, v...) }

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { logrus.Debug(v) }
func Info(v string)  { logrus.Info(v) }
func Warn(v string)  { logrus.Warn(v) }
func Error(v string) { logrus.Error(v) }

// LevelString returns the current level as text.
func LevelString() string {
	return logrus.GetLevel().String()
}
