// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"gitlab.com/boxycoin/boxyd/config"
	"gitlab.com/boxycoin/boxyd/node/metrics"
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
	"gitlab.com/boxycoin/boxyd/types/pow"
	"gopkg.in/yaml.v3"
)

func (app *App) getCommands() cli.Commands {
	flags := getFlags()

	return []*cli.Command{
		{
			Name:   "show",
			Usage:  "print the parameters of the selected network as YAML",
			Action: app.showCmd,
		},
		{
			Name:   "genesis",
			Usage:  "rebuild and verify the genesis block",
			Flags:  []cli.Flag{flags[flagDump], flags[flagHex]},
			Action: app.genesisCmd,
		},
		{
			Name:      "checkpoint",
			Usage:     "print the checkpointed hash at a height",
			ArgsUsage: "<height>",
			Action:    app.checkpointCmd,
		},
		{
			Name:   "checkpoints",
			Usage:  "list the checkpoints, optionally into a CSV file",
			Flags:  []cli.Flag{flags[flagCSV]},
			Action: app.checkpointsCmd,
		},
		{
			Name:   "seeds",
			Usage:  "list the DNS and fixed seeds",
			Action: app.seedsCmd,
		},
		{
			Name:   "metrics",
			Usage:  "serve prometheus metrics for the selected network",
			Flags:  []cli.Flag{flags[flagListen]},
			Action: app.metricsCmd,
		},
	}
}

type profileView struct {
	Name              string `yaml:"name"`
	Magic             string `yaml:"magic"`
	DefaultPort       string `yaml:"default_port"`
	GenesisHash       string `yaml:"genesis_hash"`
	GenesisMerkleRoot string `yaml:"genesis_merkle_root"`
	GenesisTimestamp  string `yaml:"genesis_timestamp"`

	PowLimitBits             string `yaml:"pow_limit_bits"`
	TargetTimespan           string `yaml:"target_timespan"`
	TargetTimePerBlock       string `yaml:"target_time_per_block"`
	AllowMinDifficultyBlocks bool   `yaml:"allow_min_difficulty_blocks"`

	SubsidyHalvingInterval      int32 `yaml:"subsidy_halving_interval"`
	EnforceBlockUpgradeMajority int   `yaml:"enforce_block_upgrade_majority"`
	RejectBlockOutdatedMajority int   `yaml:"reject_block_outdated_majority"`
	ToCheckBlockUpgradeMajority int   `yaml:"to_check_block_upgrade_majority"`
	MinerThreads                int   `yaml:"miner_threads"`

	Checkpoints int      `yaml:"checkpoints"`
	DNSSeeds    []string `yaml:"dns_seeds"`
	FixedSeeds  int      `yaml:"fixed_seeds"`

	PubKeyHashAddrID byte   `yaml:"pubkey_hash_addr_id"`
	ScriptHashAddrID byte   `yaml:"script_hash_addr_id"`
	PrivateKeyID     byte   `yaml:"private_key_id"`
	HDPublicKeyID    string `yaml:"hd_public_key_id"`
	HDPrivateKeyID   string `yaml:"hd_private_key_id"`

	RequireRPCPassword       bool `yaml:"require_rpc_password"`
	MiningRequiresPeers      bool `yaml:"mining_requires_peers"`
	DefaultConsistencyChecks bool `yaml:"default_consistency_checks"`
	RequireStandard          bool `yaml:"require_standard"`
	MineBlocksOnDemand       bool `yaml:"mine_blocks_on_demand"`
}

func newProfileView(p *chaincfg.Params) profileView {
	view := profileView{
		Name:              p.Name,
		Magic:             hex.EncodeToString(p.MessageStart[:]),
		DefaultPort:       p.DefaultPort,
		GenesisHash:       p.GenesisHash.String(),
		GenesisMerkleRoot: p.GenesisMerkleRoot.String(),
		GenesisTimestamp:  p.Genesis.Timestamp.UTC().Format(time.RFC3339),

		PowLimitBits:             fmt.Sprintf("0x%08x", p.PowParams.PowLimitBits),
		TargetTimespan:           p.PowParams.TargetTimespan.String(),
		TargetTimePerBlock:       p.PowParams.TargetTimePerBlock.String(),
		AllowMinDifficultyBlocks: p.PowParams.AllowMinDifficultyBlocks,

		SubsidyHalvingInterval:      p.SubsidyHalvingInterval,
		EnforceBlockUpgradeMajority: p.EnforceBlockUpgradeMajority,
		RejectBlockOutdatedMajority: p.RejectBlockOutdatedMajority,
		ToCheckBlockUpgradeMajority: p.ToCheckBlockUpgradeMajority,
		MinerThreads:                p.MinerThreads,

		Checkpoints: p.Checkpoints.Len(),
		FixedSeeds:  len(p.FixedSeeds),

		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		PrivateKeyID:     p.PrivateKeyID,
		HDPublicKeyID:    hex.EncodeToString(p.HDPublicKeyID[:]),
		HDPrivateKeyID:   hex.EncodeToString(p.HDPrivateKeyID[:]),

		RequireRPCPassword:       p.RequireRPCPassword,
		MiningRequiresPeers:      p.MiningRequiresPeers,
		DefaultConsistencyChecks: p.DefaultConsistencyChecks,
		RequireStandard:          p.RequireStandard,
		MineBlocksOnDemand:       p.MineBlocksOnDemand,
	}

	for _, seed := range p.DNSSeeds {
		view.DNSSeeds = append(view.DNSSeeds, seed.String())
	}
	return view
}

func (app *App) showCmd(c *cli.Context) error {
	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(newProfileView(app.params)); err != nil {
		return cli.Exit(err, 1)
	}
	return enc.Close()
}

func (app *App) genesisCmd(c *cli.Context) error {
	block, err := chaincfg.AssembleGenesisBlock(app.params.Genesis)
	if err != nil {
		return cli.Exit(err, 1)
	}

	err = chaincfg.VerifyGenesisBlock(block, app.params.GenesisHash, app.params.GenesisMerkleRoot)
	if err != nil {
		return cli.Exit(err, 1)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "network:     %s\n", app.params.Name)
	fmt.Fprintf(w, "hash:        %s\n", block.BlockHash())
	fmt.Fprintf(w, "merkle root: %s\n", block.Header.MerkleRoot)
	fmt.Fprintf(w, "timestamp:   %s\n", block.Header.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "bits:        0x%08x\n", block.Header.Bits)
	fmt.Fprintf(w, "nonce:       %d\n", block.Header.Nonce)
	fmt.Fprintf(w, "target:      %064x\n", pow.CompactToBig(block.Header.Bits))
	fmt.Fprintf(w, "work:        %s\n", pow.CalcWork(block.Header.Bits))

	if c.Bool(flagDump) {
		spew.Fdump(w, block)
	}

	if c.Bool(flagHex) {
		buf := bytes.NewBuffer(nil)
		if err := block.Serialize(buf); err != nil {
			return cli.Exit(errors.Wrap(err, "unable to serialize genesis block"), 1)
		}
		fmt.Fprintln(w, hex.EncodeToString(buf.Bytes()))
	}

	return nil
}

func (app *App) checkpointCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("checkpoint height is required", 1)
	}

	height, err := strconv.ParseInt(c.Args().First(), 10, 32)
	if err != nil {
		return cli.Exit(errors.Wrap(err, "invalid height"), 1)
	}

	hash, ok := app.params.Checkpoints.Lookup(int32(height))
	if !ok {
		return cli.Exit(fmt.Sprintf("no %s checkpoint at height %d", app.params.Name, height), 1)
	}

	fmt.Fprintln(c.App.Writer, hash)
	return nil
}

func (app *App) checkpointsCmd(c *cli.Context) error {
	rows := newCheckpointRows(app.params.Checkpoints.Checkpoints())

	if path := c.String(flagCSV); path != "" {
		if err := NewCSVStorage(path).SaveRows(rows); err != nil {
			return cli.Exit(errors.Wrapf(err, "unable to write %s", path), 1)
		}
		return nil
	}

	for _, row := range rows {
		fmt.Fprintf(c.App.Writer, "%8d %s\n", row.Height, row.Hash)
	}
	return nil
}

func (app *App) seedsCmd(c *cli.Context) error {
	w := c.App.Writer

	fmt.Fprintf(w, "dns seeds (%d):\n", len(app.params.DNSSeeds))
	for _, seed := range app.params.DNSSeeds {
		fmt.Fprintf(w, "  %s %s\n", seed.Name, seed.Host)
	}

	fmt.Fprintf(w, "fixed seeds (%d):\n", len(app.params.FixedSeeds))
	for _, addr := range app.params.FixedSeeds {
		fmt.Fprintf(w, "  %s:%d last seen %s\n", addr.IP, addr.Port,
			addr.Timestamp.UTC().Format(time.RFC3339))
	}
	return nil
}

func (app *App) metricsCmd(c *cli.Context) error {
	listen := app.config.Metrics.Listen
	if c.IsSet(flagListen) {
		listen = c.String(flagListen)
	}

	logger := config.MetricsLog()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = interruptListener(ctx, logger)

	manager := metrics.Metrics(ctx, app.config.Metrics.Interval, prometheus.DefaultGatherer, logger)

	networkMetrics, err := metrics.NetworkMetrics(app.registry, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return cli.Exit(err, 1)
	}
	manager.Add(networkMetrics)

	if err := manager.Listen(ctx, "/metrics", listen); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
