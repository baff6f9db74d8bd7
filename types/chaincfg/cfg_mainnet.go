// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"gitlab.com/boxycoin/boxyd/types/pow"
)

var (
	// genesisHash is the hash of the first block in the block chain.  All
	// networks of this chain share it.
	genesisHash = newHashFromStr("d880c4e8db4427c936d8c759b463102694366b3e2e512f7b62a946c0d39d50dd")

	// genesisMerkleRoot is the hash of the only transaction in the genesis
	// block.
	genesisMerkleRoot = newHashFromStr("cbbd3ac705fc543c0a61193ab593d9abecdf8abdfe8695cfb017232982b0bb26")
)

// mainCheckpoints ordered from oldest to newest.
var mainCheckpoints = []Checkpoint{
	{0, newHashFromStr("d880c4e8db4427c936d8c759b463102694366b3e2e512f7b62a946c0d39d50dd")},
	{333, newHashFromStr("52d72726edd411314324d36b2c9da463bfd6a17f7951581716b1333ee86f91af")},
	{5000, newHashFromStr("902948114a142409d9a762268cf3626f714e1f2737d27ea8f52be66a29c254d0")},
	{8600, newHashFromStr("9eeed680fb1667eb91ed41f79e5fe1ec4a587b68a3f5e3f39b417db5281f89db")},
	{11500, newHashFromStr("0fec696fb054596450f799ba1e68a3b699bbf74dc8e10d62d0c9687e6cb339ff")},
	{15500, newHashFromStr("f95b1982e83c898259bd790f184b98f56034a06cdd51a6849e40aceb0e1382ae")},
	{20500, newHashFromStr("4f9f09339e631faace8c76f03f9cdca9fdefbc6b31ffea77dccb4dc56e12dbde")},
	{24033, newHashFromStr("1eea2ef5f8df6825d63f9c1253e962aeb3031476128fae8e90408ce0885f799e")},
	{59650, newHashFromStr("799ee1d88c218495454c14a96605d2781a3b6615c918d5dd5123479383b30a9b")},
}

// newMainNetParams builds the parameters of the main network from literal
// values.  Every other network is derived from it.
func newMainNetParams() Params {
	// ~uint256(0) >> 20
	powLimit := pow.MaxTarget(20)

	p := Params{
		Name: "main",
		Net:  MainNet,

		// Rarely used upper ASCII, not valid as UTF-8, and produce a large
		// 4-byte int at any alignment.
		MessageStart: [4]byte{0xf1, 0xc3, 0xa4, 0xdc},
		AlertPubKey:  mustDecodeHex(""),
		DefaultPort:  "21524",

		Genesis: GenesisOpts{
			Message:         "15/11/2017 Boxy Launch -ARTAX Implemented-",
			CoinbaseBits:    genesisCoinbaseBits,
			CoinbaseCounter: genesisCoinbaseCounter,
			Value:           30 * SatoshiPerCoin,
			PubKey: mustDecodeHex("215284710fa689ad5023690c80f3a49c8f13f8d45b8c857fbcbc8bc4" +
				"a8e4d3eb4b10f4d4604fa08dce601aaf0f470216fe1b51850b4acf21b179c45070ac7b03a9"),
			Version:   1,
			Timestamp: time.Unix(1510723234, 0), // Wed 15 Nov 2017 05:20:34 UTC
			Bits:      0x1e0ffff0,
			Nonce:     1572978,
		},

		PowParams: PowParams{
			PowLimit:                 powLimit,
			PowLimitBits:             pow.BigToCompact(powLimit), // 0x1e0fffff
			TargetTimespan:           20 * time.Minute,
			TargetTimePerBlock:       65 * time.Second,
			AllowMinDifficultyBlocks: false,
			SkipProofOfWorkCheck:     false,
		},

		SubsidyHalvingInterval:      900000,
		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,
		MinerThreads:                0,

		Checkpoints: mustNewCheckpointStore(mainCheckpoints...),

		DNSSeeds: []DNSSeed{
			{"boxycoin.org", "159.203.161.244"},
			{"boxycoin.org", "138.68.174.82"},
			{"boxycoin.org", "104.131.44.238"},
			{"boxycoin.org", "138.68.191.238"},
			{"boxycoin.org", "178.62.57.88"},
			{"boxycoin.org", "boxy.online"},
			{"boxycoin.org", "pool.boxy.online"},
			{"boxycoin.org", "electrum.boxy.online"},
		},
		FixedSeeds: convertSeed6(mainSeeds),

		// Address encoding magics
		PubKeyHashAddrID: 75,
		ScriptHashAddrID: 18,
		PrivateKeyID:     203,

		// BIP32 hierarchical deterministic extended key magics
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv

		RequireRPCPassword:            true,
		MiningRequiresPeers:           false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		TestnetToBeDeprecatedFieldRPC: false,

		PoolMaxTransactions:      3,
		SporkPubKey:              "045fdc1d5796a4cc3ec7b93de854747f91ac8c44b150a37a45fe7b115e19463f902639ac385a7262423d5ac2e5fcea81a403525b25e56c6ff6d6020ff97b9bff57",
		MasternodePaymentsPubKey: "049484542a6a421df34eec30f83b59cdc6ba468fe8d5a306faddb600ceb5b5cfe612eedad016275a0caf5c9c0db69974de9fc6127c74bc69768329c4ff9522c1cf",
		DarksendPoolDummyAddress: "Xq19GqFvajRrEdDHYRKGYjTsQfpV5jyipF",
		StartMasternodePayments:  time.Unix(1519465554, 0), // Sat 24 Feb 2018 09:45:54 UTC
	}

	p.buildGenesis(genesisHash, genesisMerkleRoot)
	return p
}
