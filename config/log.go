// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"io"
	"sort"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"
	"github.com/sasha-s/go-deadlock"
	"gitlab.com/boxycoin/boxyd/corelog"
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logUnitCFG  = "CFG"
	logUnitCHCF = "CHCF"
	logUnitMTRC = "MTRC"
)

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem id here and hook its package up in
// setLoggers.
var (
	loggersMtx deadlock.RWMutex

	// subsystemLoggers maps each subsystem identifier to its associated logger.
	subsystemLoggers = map[string]*zap.Logger{
		logUnitCFG:  zap.NewNop(),
		logUnitCHCF: zap.NewNop(),
		logUnitMTRC: zap.NewNop(),
	}

	// subsystemLevels keeps the btclog level of every subsystem, zap has no
	// trace level to carry it.
	subsystemLevels = map[string]btclog.Level{
		logUnitCFG:  btclog.LevelInfo,
		logUnitCHCF: btclog.LevelInfo,
		logUnitMTRC: btclog.LevelInfo,
	}

	// backendCloser releases the rolling file of the current backend.
	backendCloser io.Closer

	openBackend = corelog.Open
)

func init() {
	if err := parseAndSetDebugLevels(defaultLogLevel, corelog.Config{}.Default()); err != nil {
		panic(err)
	}
}

// SubsystemLogger returns the logger of subsystemID, or a no-op logger for
// an unknown id.
func SubsystemLogger(subsystemID string) *zap.Logger {
	loggersMtx.RLock()
	defer loggersMtx.RUnlock()

	if logger, ok := subsystemLoggers[subsystemID]; ok {
		return logger
	}
	return zap.NewNop()
}

// MetricsLog is the logger of the metrics exporter.
func MetricsLog() *zap.Logger {
	return SubsystemLogger(logUnitMTRC)
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	loggersMtx.RLock()
	defer loggersMtx.RUnlock()

	// Convert the subsystemLoggers map keys to a slice.
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// setLoggers hands the subsystem loggers to the library packages.
func setLoggers() {
	chaincfg.UseLogger(btclogAdapter(logUnitCHCF))
}

func btclogAdapter(subsystemID string) btclog.Logger {
	loggersMtx.RLock()
	defer loggersMtx.RUnlock()

	logger := corelog.Adapter(subsystemLoggers[subsystemID])
	logger.SetLevel(subsystemLevels[subsystemID])
	return logger
}

// parseLevel validates a single level name.
func parseLevel(logLevel string) (btclog.Level, error) {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return 0, errors.Errorf("the specified debug level [%v] is invalid", logLevel)
	}
	return level, nil
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid, in which case no level is changed.
func parseAndSetDebugLevels(debugLevel string, logConfig corelog.Config) error {
	levels := make(map[string]btclog.Level, len(subsystemLevels))

	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		level, err := parseLevel(debugLevel)
		if err != nil {
			return err
		}

		for _, subsysID := range SupportedSubsystems() {
			levels[subsysID] = level
		}
		setLogLevels(levels, logConfig)
		return nil
	}

	loggersMtx.RLock()
	for subsysID, level := range subsystemLevels {
		levels[subsysID] = level
	}
	loggersMtx.RUnlock()

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%v]", logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.SplitN(logLevelPair, "=", 2)
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := levels[subsysID]; !exists {
			return errors.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, SupportedSubsystems())
		}

		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		levels[subsysID] = level
	}

	setLogLevels(levels, logConfig)
	return nil
}

// setLogLevels rebuilds every subsystem logger over one shared backend and
// rewires the library packages.
func setLogLevels(levels map[string]btclog.Level, logConfig corelog.Config) {
	backend, closer := openBackend(zapcore.DebugLevel, logConfig)
	live := backend.Core().Enabled(zapcore.DebugLevel)

	loggersMtx.Lock()
	for subsysID, level := range levels {
		logger := backend
		if live {
			logger = logger.WithOptions(zap.IncreaseLevel(corelog.ZapLevel(level)))
		}
		subsystemLoggers[subsysID] = logger.With(zap.String("app.unit", subsysID))
		subsystemLevels[subsysID] = level
	}
	previous := backendCloser
	backendCloser = closer
	loggersMtx.Unlock()

	setLoggers()

	if previous != nil {
		_ = previous.Close()
	}
}
