package core

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

// Logger returns the process-wide logger.
func Logger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Prefix:          "scenebox",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// SetLogLevel parses level ("debug", "info", "warn", "error") and applies it.
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger().SetLevel(lvl)
	return nil
}

// SetLogOutput redirects the logger, mostly for tests.
func SetLogOutput(w io.Writer) { Logger().SetOutput(w) }

func LogDebug(msg string, args ...interface{}) { Logger().Debugf(msg, args...) }
func LogInfo(msg string, args ...interface{})  { Logger().Infof(msg, args...) }
func LogWarn(msg string, args ...interface{})  { Logger().Warnf(msg, args...) }
func LogError(msg string, args ...interface{}) { Logger().Errorf(msg, args...) }
func LogFatal(msg string, args ...interface{}) { Logger().Fatalf(msg, args...) }
