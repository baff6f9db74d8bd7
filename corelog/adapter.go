// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corelog

import (
	"sync/atomic"

	"github.com/btcsuite/btclog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Adapter exposes a zap logger through the btclog.Logger interface used by
// the library packages.  zap has no trace or critical levels: trace is
// written at debug, critical at error with a "critical" field.
func Adapter(logger *zap.Logger) btclog.Logger {
	a := &btclogAdapter{
		log: logger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
	a.SetLevel(levelOf(logger.Core()))
	return a
}

// ZapLevel maps a btclog level to the zap level that lets it through.
func ZapLevel(level btclog.Level) zapcore.Level {
	switch level {
	case btclog.LevelTrace, btclog.LevelDebug:
		return zapcore.DebugLevel
	case btclog.LevelInfo:
		return zapcore.InfoLevel
	case btclog.LevelWarn:
		return zapcore.WarnLevel
	case btclog.LevelError, btclog.LevelCritical:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

func levelOf(core zapcore.Core) btclog.Level {
	switch {
	case core.Enabled(zapcore.DebugLevel):
		return btclog.LevelDebug
	case core.Enabled(zapcore.InfoLevel):
		return btclog.LevelInfo
	case core.Enabled(zapcore.WarnLevel):
		return btclog.LevelWarn
	case core.Enabled(zapcore.ErrorLevel):
		return btclog.LevelError
	default:
		return btclog.LevelOff
	}
}

type btclogAdapter struct {
	log   *zap.SugaredLogger
	level uint32
}

func (a *btclogAdapter) enabled(level btclog.Level) bool {
	return btclog.Level(atomic.LoadUint32(&a.level)) <= level
}

func (a *btclogAdapter) Tracef(format string, params ...interface{}) {
	if a.enabled(btclog.LevelTrace) {
		a.log.Debugf(format, params...)
	}
}

func (a *btclogAdapter) Debugf(format string, params ...interface{}) {
	if a.enabled(btclog.LevelDebug) {
		a.log.Debugf(format, params...)
	}
}

func (a *btclogAdapter) Infof(format string, params ...interface{}) {
	if a.enabled(btclog.LevelInfo) {
		a.log.Infof(format, params...)
	}
}

func (a *btclogAdapter) Warnf(format string, params ...interface{}) {
	if a.enabled(btclog.LevelWarn) {
		a.log.Warnf(format, params...)
	}
}

func (a *btclogAdapter) Errorf(format string, params ...interface{}) {
	if a.enabled(btclog.LevelError) {
		a.log.Errorf(format, params...)
	}
}

func (a *btclogAdapter) Criticalf(format string, params ...interface{}) {
	if a.enabled(btclog.LevelCritical) {
		a.log.With("critical", true).Errorf(format, params...)
	}
}

func (a *btclogAdapter) Trace(v ...interface{}) {
	if a.enabled(btclog.LevelTrace) {
		a.log.Debug(v...)
	}
}

func (a *btclogAdapter) Debug(v ...interface{}) {
	if a.enabled(btclog.LevelDebug) {
		a.log.Debug(v...)
	}
}

func (a *btclogAdapter) Info(v ...interface{}) {
	if a.enabled(btclog.LevelInfo) {
		a.log.Info(v...)
	}
}

func (a *btclogAdapter) Warn(v ...interface{}) {
	if a.enabled(btclog.LevelWarn) {
		a.log.Warn(v...)
	}
}

func (a *btclogAdapter) Error(v ...interface{}) {
	if a.enabled(btclog.LevelError) {
		a.log.Error(v...)
	}
}

func (a *btclogAdapter) Critical(v ...interface{}) {
	if a.enabled(btclog.LevelCritical) {
		a.log.With("critical", true).Error(v...)
	}
}

func (a *btclogAdapter) Level() btclog.Level {
	return btclog.Level(atomic.LoadUint32(&a.level))
}

func (a *btclogAdapter) SetLevel(level btclog.Level) {
	atomic.StoreUint32(&a.level, uint32(level))
}
