// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import "github.com/urfave/cli/v2"

const (
	flagConfig     = "config"
	flagCSV        = "csv"
	flagDebugLevel = "debuglevel"
	flagDump       = "dump"
	flagHex        = "hex"
	flagListen     = "listen"
	flagLogDir     = "logdir"
	flagNetwork    = "network"
)

func getFlags() map[string]cli.Flag {
	return map[string]cli.Flag{
		flagConfig: &cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "path to boxyd configuration file",
		},
		flagNetwork: &cli.StringFlag{
			Name:    flagNetwork,
			Aliases: []string{"n"},
			Usage:   "network to inspect {main, test, regtest, unittest}, will override value from config file",
		},
		flagDebugLevel: &cli.StringFlag{
			Name:    flagDebugLevel,
			Aliases: []string{"d"},
			Usage:   "logging level for all subsystems, or <subsystem>=<level>,...",
		},
		flagLogDir: &cli.StringFlag{
			Name:  flagLogDir,
			Usage: "directory to log output",
		},
		flagDump: &cli.BoolFlag{
			Name:  flagDump,
			Usage: "dump the whole genesis block",
		},
		flagHex: &cli.BoolFlag{
			Name:  flagHex,
			Usage: "print the serialized genesis block as hex",
		},
		flagCSV: &cli.StringFlag{
			Name:  flagCSV,
			Usage: "write the checkpoints to this CSV file",
		},
		flagListen: &cli.StringFlag{
			Name:  flagListen,
			Usage: "address to serve metrics on, will override value from config file",
		},
	}
}
