// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"gitlab.com/boxycoin/boxyd/config"
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
)

type App struct {
	config   *config.Config
	registry *chaincfg.Registry
	params   *chaincfg.Params
}

func newApp(registry *chaincfg.Registry) *App {
	return &App{registry: registry}
}

func (app *App) cliApp() *cli.App {
	return &cli.App{
		Name:     "boxyparams",
		Usage:    "inspect the boxyd network parameters",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		Commands: app.getCommands(),
	}
}

func main() {
	app := newApp(chaincfg.DefaultRegistry())

	err := app.cliApp().Run(os.Args)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func (app *App) InitFlags() []cli.Flag {
	flags := getFlags()
	return []cli.Flag{
		flags[flagConfig],
		flags[flagNetwork],
		flags[flagDebugLevel],
		flags[flagLogDir],
	}
}

// InitCfg loads the daemon configuration, applies the global flags over it
// and selects the network.
func (app *App) InitCfg(c *cli.Context) error {
	var args []string
	if c.IsSet(flagConfig) {
		args = append(args, "--configfile", c.String(flagConfig))
	}
	if c.IsSet(flagDebugLevel) {
		args = append(args, "--debuglevel", c.String(flagDebugLevel))
	}
	if c.IsSet(flagLogDir) {
		args = append(args, "--logdir", c.String(flagLogDir))
	}

	cfg, _, err := config.LoadConfig(args)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.IsSet(flagNetwork) {
		cfg.Network = c.String(flagNetwork)
		cfg.TestNet, cfg.RegTest, cfg.UnitTest = false, false, false
	}

	params, err := config.SelectNetParams(app.registry, cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}

	app.config = cfg
	app.params = params
	return nil
}
