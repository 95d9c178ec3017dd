package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger *AppLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(l *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the global logger instance. If no logger was
// set it falls back to a default logrus logger so call sites stay safe.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return &AppLogger{Logger: logrus.StandardLogger()}
	}
	return globalLogger
}

// Global logger convenience functions

// Info logs an info message using the global logger
func Info(msg string, fields ...logrus.Fields) {
	entry(fields).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...logrus.Fields) {
	entry(fields).Warn(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...logrus.Fields) {
	entry(fields).Error(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...logrus.Fields) {
	entry(fields).Debug(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...logrus.Fields) {
	entry(fields).Fatal(msg)
}

// WithError returns an entry with an error field using the global logger
func WithError(err error) *logrus.Entry {
	return GetGlobalLogger().Logger.WithError(err)
}

func entry(fields []logrus.Fields) *logrus.Entry {
	e := logrus.NewEntry(GetGlobalLogger().Logger)
	for _, f := range fields {
		e = e.WithFields(f)
	}
	return e
}
