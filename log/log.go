// Package log persists structured application logs under the logs directory.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/filesystem"
	"github.com/wangjh9712/fullbr115/key"
	"github.com/wangjh9712/fullbr115/where"
)

// enabled gates every emission; when log writing is off the proxies are no-ops.
var enabled bool

// Setup initializes the logging subsystem from global configuration.
// One log file is kept per day, appended across runs.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	if exists := lo.Must(filesystem.API().Exists(path)); !exists {
		lo.Must(filesystem.API().Create(path))
	}

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Error records a message at error severity.
func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}

// Errorf records a formatted message at error severity.
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

// Warn records a message at warning severity.
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}

// Warnf records a formatted message at warning severity.
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

// Info records a message at info severity.
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}

// Infof records a formatted message at info severity.
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

// Debug records a message at debug severity.
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}

// Debugf records a formatted message at debug severity.
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
