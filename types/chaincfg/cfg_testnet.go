// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020-2021 The JAX.Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// testCheckpoints ordered from oldest to newest.
var testCheckpoints = []Checkpoint{
	{0, newHashFromStr("d880c4e8db4427c936d8c759b463102694366b3e2e512f7b62a946c0d39d50dd")},
}

// newTestNetParams derives the public test network from main.  The genesis
// block is main's, unchanged.
func newTestNetParams(mainNet *Params) Params {
	p := mainNet.clone()

	p.Name = "test"
	p.Net = TestNet
	p.MessageStart = [4]byte{0xd4, 0xc3, 0x18, 0x5e}
	p.AlertPubKey = mustDecodeHex("04cdf672c7d3f41df30d4ab30ff31ecf3b06349268978bb68ec71274ee7174179f" +
		"68fae44ae777ceee5bdbd21f0449aeb9ffe8a6f6b86628b041be20952b6884c9")
	p.DefaultPort = "21528"

	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.PowParams.TargetTimespan = 20 * time.Minute
	p.PowParams.TargetTimePerBlock = 1 * time.Minute

	p.Genesis.Timestamp = time.Unix(1510723234, 0)
	p.Genesis.Nonce = 1572978
	p.buildGenesis(genesisHash, genesisMerkleRoot)

	p.Checkpoints = mustNewCheckpointStore(testCheckpoints...)

	p.DNSSeeds = nil
	p.FixedSeeds = convertSeed6(testSeeds)

	p.PubKeyHashAddrID = 75
	p.ScriptHashAddrID = 18
	p.PrivateKeyID = 203
	p.HDPublicKeyID = [4]byte{0x04, 0x35, 0x87, 0xcf}  // starts with tpub
	p.HDPrivateKeyID = [4]byte{0x04, 0x35, 0x83, 0x94} // starts with tprv

	p.RequireRPCPassword = true
	p.MiningRequiresPeers = false
	p.PowParams.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true

	p.PoolMaxTransactions = 2
	p.SporkPubKey = "046f78dcf911fbd61910136f7f0f8d90578f68d0b3ac973b5040fb7afb501b5939f39b108b0569dca71488f5bbf498d92e4d1194f6f941307ffd95f75e76869f0e"
	p.MasternodePaymentsPubKey = "046f78dcf911fbd61910136f7f0f8d90578f68d0b3ac973b5040fb7afb501b5939f39b108b0569dca71488f5bbf498d92e4d1194f6f941307ffd95f75e76869f0e"
	p.DarksendPoolDummyAddress = "X1EZuxhhNMAUofTBEeLqGE1bJrpC2TWRNp"
	p.StartMasternodePayments = time.Unix(1519465554, 0)

	return p
}
