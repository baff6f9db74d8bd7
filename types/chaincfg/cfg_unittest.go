/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

// newUnitTestParams derives the in-process unit test network from main.  It
// keeps main's checkpoints in a store of its own.
func newUnitTestParams(mainNet *Params) Params {
	p := mainNet.clone()

	p.Name = "unittest"
	p.Net = UnitTest
	p.DefaultPort = "18445"

	p.buildGenesis(genesisHash, genesisMerkleRoot)
	p.Checkpoints = mustNewCheckpointStore(mainCheckpoints...)

	// No fixed or DNS seeds.
	p.FixedSeeds = nil
	p.DNSSeeds = nil

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.PowParams.AllowMinDifficultyBlocks = false
	p.MineBlocksOnDemand = true

	return p
}
