// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gitlab.com/boxycoin/boxyd/corelog"
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename  = "boxyd.yaml"
	defaultLogLevel        = "info"
	defaultMetricsListen   = ":9101"
	defaultMetricsInterval = 15 * time.Second

	// envPrefix is prepended to every environment variable, e.g.
	// BOXYD_NETWORK.
	envPrefix = "boxyd"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("boxyd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// ErrMultipleNetworks is returned when more than one network flag is set.
var ErrMultipleNetworks = errors.New("the testnet, regtest and unittest flags are mutually exclusive")

// Config defines the configuration options for boxyd.
//
// Values are taken, in increasing order of precedence, from the defaults, the
// YAML configuration file, BOXYD_* environment variables and the command line.
type Config struct {
	ConfigFile string `yaml:"-" short:"C" long:"configfile" description:"Path to configuration file" ignored:"true"`

	// Network names the network in the configuration file or environment.
	// The command line selects a network with the flags below instead.
	Network  string `yaml:"network"`
	TestNet  bool   `yaml:"-" long:"testnet" description:"Use the test network" ignored:"true"`
	RegTest  bool   `yaml:"-" long:"regtest" description:"Use the regression test network" ignored:"true"`
	UnitTest bool   `yaml:"-" long:"unittest" description:"Use the unit test network" ignored:"true"`

	DebugLevel    string         `yaml:"debug_level" short:"d" long:"debuglevel" split_words:"true" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir        string         `yaml:"log_dir" long:"logdir" split_words:"true" description:"Directory to log output"`
	NoFileLogging bool           `yaml:"no_file_logging" long:"nofilelogging" split_words:"true" description:"Disable file logging"`
	LogConfig     corelog.Config `yaml:"log_config" no-flag:"true" ignored:"true"`

	Metrics MetricsConfig `yaml:"metrics" group:"Metrics Options" namespace:"metrics"`
}

// MetricsConfig controls the prometheus exporter.
type MetricsConfig struct {
	Enable   bool          `yaml:"enable" long:"enable" description:"Serve prometheus metrics"`
	Listen   string        `yaml:"listen" long:"listen" description:"Address the metrics endpoint listens on"`
	Interval time.Duration `yaml:"interval" long:"interval" description:"Interval between metric reads"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultLogLevel,
		LogConfig:  corelog.Config{}.Default(),
		Metrics: MetricsConfig{
			Listen:   defaultMetricsListen,
			Interval: defaultMetricsInterval,
		},
	}
}

// ResolveNetwork resolves the selected network.  The command line flags take
// precedence over the Network field; with neither set the main network is
// used.
func (cfg *Config) ResolveNetwork() (chaincfg.Network, error) {
	var selected []chaincfg.Network
	if cfg.TestNet {
		selected = append(selected, chaincfg.TestNet)
	}
	if cfg.RegTest {
		selected = append(selected, chaincfg.RegTest)
	}
	if cfg.UnitTest {
		selected = append(selected, chaincfg.UnitTest)
	}

	switch len(selected) {
	case 0:
		if cfg.Network == "" {
			return chaincfg.MainNet, nil
		}
		return chaincfg.ParseNetwork(cfg.Network)
	case 1:
		return selected[0], nil
	default:
		return 0, ErrMultipleNetworks
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfigFile decodes the YAML file at path over cfg.  A missing file is
// only an error when required is set.
func loadConfigFile(cfg *Config, path string, required bool) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrap(err, "unable to open config file")
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(cfg)
	if err != nil && err != io.EOF {
		return errors.Wrapf(err, "unable to parse config file %s", path)
	}
	return nil
}

// LoadConfig initializes and parses the config using a config file,
// environment variables and command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Apply BOXYD_* environment variables
//  5. Parse CLI options and overwrite/add any specified options
//
// The above results in boxyd functioning properly without any config settings
// while still allowing the user to override settings with config files and
// command line options.  Command line options always take precedence.
//
// A help request is returned as a *flags.Error of type flags.ErrHelp.
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := Default()

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	err := loadConfigFile(&cfg, configFile, preCfg.ConfigFile != defaultConfigFile)
	if err != nil {
		return nil, nil, err
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "unable to read environment")
	}

	// Parse command line options again to ensure they take precedence.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	cfg.ConfigFile = configFile

	net, err := cfg.ResolveNetwork()
	if err != nil {
		return nil, nil, errors.Wrap(err, "LoadConfig")
	}

	if cfg.Metrics.Interval <= 0 {
		return nil, nil, errors.Errorf("LoadConfig: the metrics interval must be positive -- parsed [%v]",
			cfg.Metrics.Interval)
	}

	// Namespace the log directory per network.
	if cfg.LogDir != "" {
		cfg.LogConfig.FileLoggingEnabled = true
		cfg.LogConfig.Directory = filepath.Join(cleanAndExpandPath(cfg.LogDir), net.String())
	}
	if cfg.NoFileLogging {
		cfg.LogConfig.FileLoggingEnabled = false
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel, cfg.LogConfig); err != nil {
		return nil, nil, errors.Wrap(err, "LoadConfig")
	}

	SubsystemLogger(logUnitCFG).Debug("configuration loaded",
		zap.String("network", net.String()),
		zap.String("configFile", cfg.ConfigFile),
		zap.Bool("fileLogging", cfg.LogConfig.FileLoggingEnabled))

	return &cfg, remainingArgs, nil
}
