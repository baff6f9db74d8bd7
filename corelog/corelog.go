// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	DefaultLevel   = zapcore.InfoLevel
	DefaultLogFile = "boxyd.log"
)

// Config for logging
type Config struct {
	// Disable console logging
	DisableConsoleLog bool `yaml:"disable_console_log"`
	// LogsAsJSON makes the log framework log JSON
	LogsAsJSON bool `yaml:"logs_as_json"`
	// FileLoggingEnabled makes the framework log to a file
	// the fields below can be skipped if this value is false!
	FileLoggingEnabled bool `yaml:"file_logging_enabled"`
	// Directory to log to to when filelogging is enabled
	Directory string `yaml:"directory"`
	// Filename is the name of the logfile which will be placed inside the directory
	Filename string `yaml:"filename"`
	// MaxSize the max size in MB of the logfile before it's rolled
	MaxSize int `yaml:"max_size"`
	// MaxBackups the max number of rolled files to keep
	MaxBackups int `yaml:"max_backups"`
	// MaxAge the max age in days to keep a logfile
	MaxAge int `yaml:"max_age"`
}

func (Config) Default() Config {
	return Config{
		DisableConsoleLog:  false,
		LogsAsJSON:         false,
		FileLoggingEnabled: false,
		Directory:          "logs",
		Filename:           DefaultLogFile,
		MaxSize:            150,
		MaxBackups:         3,
		MaxAge:             28,
	}
}

// New returns a logger writing to stderr and, when enabled, to a rolling
// file.  A config with every output disabled yields a no-op logger.  The
// rolling file stays open for the life of the process; use Open to get hold
// of it.
func New(level zapcore.Level, config Config) *zap.Logger {
	logger, _ := Open(level, config)
	return logger
}

// Open is New that also returns the closer of the rolling file.  Closing it
// is a no-op when file logging is disabled.
func Open(level zapcore.Level, config Config) (*zap.Logger, io.Closer) {
	var closer io.Closer = nopCloser{}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var cores []zapcore.Core
	if !config.DisableConsoleLog {
		encoder := zapcore.NewConsoleEncoder(encoderCfg)
		if config.LogsAsJSON {
			encoder = zapcore.NewJSONEncoder(encoderCfg)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}

	if config.FileLoggingEnabled {
		out, err := newRollingFile(config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "file logging disabled: %v\n", err)
		} else {
			closer = out
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(out), level))
		}
	}

	if len(cores) == 0 {
		return zap.NewNop(), closer
	}

	logger := zap.New(zapcore.NewTee(cores...)).With(zap.String("app", "boxyd"))

	logger.Debug("logging configured",
		zap.Bool("fileLogging", config.FileLoggingEnabled),
		zap.Bool("jsonLogOutput", config.LogsAsJSON),
		zap.String("logDirectory", config.Directory),
		zap.String("fileName", config.Filename),
		zap.Int("maxSizeMB", config.MaxSize),
		zap.Int("maxBackups", config.MaxBackups),
		zap.Int("maxAgeInDays", config.MaxAge))

	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newRollingFile(config Config) (io.WriteCloser, error) {
	if err := os.MkdirAll(config.Directory, 0o744); err != nil {
		return nil, errors.Wrapf(err, "can't create log directory %s", config.Directory)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(config.Directory, config.Filename),
		MaxBackups: config.MaxBackups, // files
		MaxSize:    config.MaxSize,    // megabytes
		MaxAge:     config.MaxAge,     // days
	}, nil
}
