// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
	"gitlab.com/boxycoin/boxyd/types/chainhash"
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the label the seed is published under.
	Name string

	// Host is the hostname or address queried for peers.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// GenesisOpts holds every input needed to rebuild a genesis block.
type GenesisOpts struct {
	// Message is the human-readable timestamp embedded in the coinbase
	// signature script.
	Message string

	// CoinbaseBits and CoinbaseCounter are pushed ahead of Message.
	CoinbaseBits    int64
	CoinbaseCounter byte

	// Value is paid to PubKey under a pay-to-pubkey script.
	Value  int64
	PubKey []byte

	Version   int32
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32
}

// PowParams groups the proof-of-work and retarget parameters.
type PowParams struct {
	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time between difficulty
	// retargets.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// AllowMinDifficultyBlocks permits minimum difficulty blocks after a
	// long gap, as on test networks.
	AllowMinDifficultyBlocks bool

	// SkipProofOfWorkCheck disables proof-of-work validation entirely.
	SkipProofOfWorkCheck bool
}

// Params defines a network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network.
	Net Network

	// MessageStart prefixes every wire message.
	MessageStart [4]byte

	// AlertPubKey verifies network alerts.  Empty on main.
	AlertPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// Genesis holds the inputs the genesis block is built from.
	Genesis GenesisOpts

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root of GenesisBlock.
	GenesisMerkleRoot *chainhash.Hash

	PowParams PowParams

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyHalvingInterval int32

	// Block version upgrade majorities, counted over the last
	// ToCheckBlockUpgradeMajority blocks.
	EnforceBlockUpgradeMajority int
	RejectBlockOutdatedMajority int
	ToCheckBlockUpgradeMajority int

	// MinerThreads is the default number of internal miner threads; zero
	// means one per core.
	MinerThreads int

	// Checkpoints are the historically fixed (height, hash) pairs.
	Checkpoints *CheckpointStore

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are aged address records used when DNS seeding fails.
	FixedSeeds []*wire.NetAddress

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// Node policy flags.
	RequireRPCPassword            bool
	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	TestnetToBeDeprecatedFieldRPC bool

	// Masternode and spork configuration.  Stored verbatim, never
	// interpreted here.
	PoolMaxTransactions      int
	SporkPubKey              string
	MasternodePaymentsPubKey string
	DarksendPoolDummyAddress string
	StartMasternodePayments  time.Time
}

// NetMagic returns MessageStart as the little-endian network identifier
// the btcd wire codec expects.
func (p *Params) NetMagic() wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(p.MessageStart[:]))
}

// DifficultyAdjustmentInterval is the number of blocks between retargets.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.PowParams.TargetTimespan / p.PowParams.TargetTimePerBlock)
}

// clone returns a deep copy of p.  The genesis block, hash and merkle root are
// left nil: every builder rebuilds and re-verifies its own genesis.
func (p *Params) clone() Params {
	c := *p

	c.AlertPubKey = cloneBytes(p.AlertPubKey)
	c.Genesis.PubKey = cloneBytes(p.Genesis.PubKey)
	c.GenesisBlock = nil
	c.GenesisHash = nil
	c.GenesisMerkleRoot = nil

	if p.PowParams.PowLimit != nil {
		c.PowParams.PowLimit = new(big.Int).Set(p.PowParams.PowLimit)
	}

	c.Checkpoints = p.Checkpoints.clone()

	if p.DNSSeeds != nil {
		c.DNSSeeds = make([]DNSSeed, len(p.DNSSeeds))
		copy(c.DNSSeeds, p.DNSSeeds)
	}

	if p.FixedSeeds != nil {
		c.FixedSeeds = make([]*wire.NetAddress, 0, len(p.FixedSeeds))
		for _, addr := range p.FixedSeeds {
			na := *addr
			na.IP = append(net.IP(nil), addr.IP...)
			c.FixedSeeds = append(c.FixedSeeds, &na)
		}
	}

	return c
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// mustDecodeHex decodes a hard-coded hex literal.
func mustDecodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
