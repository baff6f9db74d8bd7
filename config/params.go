// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
	"go.uber.org/zap"
)

// SelectNetParams makes the network named by cfg the active one on registry
// and returns its parameters.  A network flag takes precedence over the
// network name.
func SelectNetParams(registry *chaincfg.Registry, cfg *Config) (*chaincfg.Params, error) {
	if cfg.TestNet || cfg.RegTest || cfg.UnitTest || cfg.Network == "" {
		net, err := cfg.ResolveNetwork()
		if err != nil {
			return nil, err
		}
		registry.Select(net)
	} else if err := registry.SelectByName(cfg.Network); err != nil {
		return nil, err
	}

	params := registry.ActiveParams()

	SubsystemLogger(logUnitCFG).Info("network selected",
		zap.String("network", params.Name),
		zap.String("port", params.DefaultPort),
		zap.Stringer("genesis", params.GenesisHash))

	return params, nil
}
