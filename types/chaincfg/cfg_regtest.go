// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"gitlab.com/boxycoin/boxyd/types/pow"
)

// regTestCheckpoints ordered from oldest to newest.
var regTestCheckpoints = []Checkpoint{
	{0, newHashFromStr("d880c4e8db4427c936d8c759b463102694366b3e2e512f7b62a946c0d39d50dd")},
}

// newRegTestParams derives the regression test network from testnet.  Not to
// be confused with the test network, it has trivial proof of work and no
// seeds.
func newRegTestParams(test *Params) Params {
	p := test.clone()

	p.Name = "regtest"
	p.Net = RegTest
	p.MessageStart = [4]byte{0xd4, 0xc3, 0x18, 0x5e}
	p.DefaultPort = "21529"

	p.SubsidyHalvingInterval = 150
	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.PowParams.TargetTimespan = 10 * time.Minute
	p.PowParams.TargetTimePerBlock = 65 * time.Second

	// ~uint256(0) >> 1
	p.PowParams.PowLimit = pow.MaxTarget(1)
	p.PowParams.PowLimitBits = pow.BigToCompact(p.PowParams.PowLimit) // 0x207fffff

	p.Genesis.Timestamp = time.Unix(1510723234, 0)
	p.Genesis.Bits = 0x1e0ffff0
	p.Genesis.Nonce = 1572978
	p.buildGenesis(genesisHash, genesisMerkleRoot)

	p.Checkpoints = mustNewCheckpointStore(regTestCheckpoints...)

	// No peer discovery in regression mode.
	p.FixedSeeds = nil
	p.DNSSeeds = nil

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.PowParams.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false

	return p
}
