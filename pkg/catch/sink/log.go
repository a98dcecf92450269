package sink

import (
	"github.com/apex/log"
)

// Log returns a handler that writes the error to logger at warn level.
func Log(logger log.Interface, msg string) func(error) {
	return LogLevel(logger, log.WarnLevel, msg)
}

// LogLevel returns a handler that writes the error to logger at level.
// FatalLevel is logged as an error; a handler must not exit the process.
func LogLevel(logger log.Interface, level log.Level, msg string) func(error) {
	return func(err error) {
		entry := logger.WithError(err)
		switch level {
		case log.DebugLevel:
			entry.Debug(msg)
		case log.InfoLevel:
			entry.Info(msg)
		case log.WarnLevel:
			entry.Warn(msg)
		default:
			entry.Error(msg)
		}
	}
}
