// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainNetParams(t *testing.T) {
	p := NewRegistry().ParamsFor(MainNet)

	assert.Equal(t, "main", p.Name)
	assert.Equal(t, [4]byte{0xf1, 0xc3, 0xa4, 0xdc}, p.MessageStart)
	assert.Equal(t, wire.BitcoinNet(0xdca4c3f1), p.NetMagic())
	assert.Equal(t, "21524", p.DefaultPort)
	assert.Empty(t, p.AlertPubKey)

	assert.Equal(t, uint32(0x1e0fffff), p.PowParams.PowLimitBits)
	assert.Equal(t, 20*time.Minute, p.PowParams.TargetTimespan)
	assert.Equal(t, 65*time.Second, p.PowParams.TargetTimePerBlock)
	assert.Equal(t, int64(18), p.DifficultyAdjustmentInterval())
	assert.Equal(t, int32(900000), p.SubsidyHalvingInterval)

	assert.Equal(t, byte(75), p.PubKeyHashAddrID)
	assert.Equal(t, byte(18), p.ScriptHashAddrID)
	assert.Equal(t, byte(203), p.PrivateKeyID)
	assert.Equal(t, [4]byte{0x04, 0x88, 0xb2, 0x1e}, p.HDPublicKeyID)
	assert.Equal(t, [4]byte{0x04, 0x88, 0xad, 0xe4}, p.HDPrivateKeyID)

	assert.True(t, p.RequireRPCPassword)
	assert.True(t, p.RequireStandard)
	assert.False(t, p.MineBlocksOnDemand)
	assert.Equal(t, time.Unix(1519465554, 0).UTC(), p.StartMasternodePayments.UTC())
}

func TestTestNetParams(t *testing.T) {
	p := NewRegistry().ParamsFor(TestNet)

	assert.Equal(t, [4]byte{0xd4, 0xc3, 0x18, 0x5e}, p.MessageStart)
	assert.Equal(t, "21528", p.DefaultPort)
	assert.Len(t, p.AlertPubKey, 65)
	assert.Equal(t, 51, p.EnforceBlockUpgradeMajority)
	assert.Equal(t, 75, p.RejectBlockOutdatedMajority)
	assert.Equal(t, 100, p.ToCheckBlockUpgradeMajority)
	assert.Equal(t, int64(20), p.DifficultyAdjustmentInterval())
	assert.Equal(t, [4]byte{0x04, 0x35, 0x87, 0xcf}, p.HDPublicKeyID)
	assert.True(t, p.PowParams.AllowMinDifficultyBlocks)
	assert.True(t, p.TestnetToBeDeprecatedFieldRPC)
	assert.Equal(t, 1, p.Checkpoints.Len())

	// Inherited from main unchanged.
	assert.Equal(t, int32(900000), p.SubsidyHalvingInterval)
	assert.Equal(t, uint32(0x1e0fffff), p.PowParams.PowLimitBits)
}

func TestRegTestParams(t *testing.T) {
	p := NewRegistry().ParamsFor(RegTest)

	assert.Equal(t, "21529", p.DefaultPort)
	assert.Equal(t, [4]byte{0xd4, 0xc3, 0x18, 0x5e}, p.MessageStart)
	assert.Equal(t, uint32(0x207fffff), p.PowParams.PowLimitBits)
	assert.Equal(t, int32(150), p.SubsidyHalvingInterval)
	assert.Equal(t, 1, p.MinerThreads)
	assert.True(t, p.MineBlocksOnDemand)
	assert.False(t, p.RequireRPCPassword)
	assert.False(t, p.TestnetToBeDeprecatedFieldRPC)

	checkpoints := p.Checkpoints.Checkpoints()
	require.Len(t, checkpoints, 1)
	assert.Equal(t, int32(0), checkpoints[0].Height)
	assert.Equal(t, *p.GenesisHash, *checkpoints[0].Hash)

	// Inherited from testnet.
	assert.Len(t, p.AlertPubKey, 65)
	assert.Equal(t, [4]byte{0x04, 0x35, 0x87, 0xcf}, p.HDPublicKeyID)
}

func TestUnitTestParams(t *testing.T) {
	registry := NewRegistry()
	p := registry.ParamsFor(UnitTest)
	mainNet := registry.ParamsFor(MainNet)

	assert.Equal(t, "18445", p.DefaultPort)
	assert.Equal(t, mainNet.MessageStart, p.MessageStart)
	assert.Equal(t, mainNet.Checkpoints.Checkpoints(), p.Checkpoints.Checkpoints())
	assert.NotSame(t, mainNet.Checkpoints, p.Checkpoints)
	assert.Empty(t, p.DNSSeeds)
	assert.Empty(t, p.FixedSeeds)
	assert.True(t, p.DefaultConsistencyChecks)
	assert.True(t, p.MineBlocksOnDemand)
	assert.False(t, p.RequireRPCPassword)
}

func TestPortsAreDistinct(t *testing.T) {
	registry := NewRegistry()

	seen := make(map[string]Network)
	for _, net := range Networks() {
		port := registry.ParamsFor(net).DefaultPort
		if other, ok := seen[port]; ok {
			t.Fatalf("%s and %s share port %s", net, other, port)
		}
		seen[port] = net
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	mainNet := NewRegistry().ParamsFor(MainNet)
	c := mainNet.clone()

	assert.Nil(t, c.GenesisBlock)
	assert.Nil(t, c.GenesisHash)

	c.Genesis.PubKey[0] ^= 0xff
	c.PowParams.PowLimit.SetInt64(1)
	c.DNSSeeds[0].Host = "localhost"
	c.FixedSeeds[0].IP[15] ^= 0xff
	c.FixedSeeds[0].Port = 1

	assert.NotEqual(t, c.Genesis.PubKey[0], mainNet.Genesis.PubKey[0])
	assert.Equal(t, uint32(0x1e0fffff), mainNet.PowParams.PowLimitBits)
	assert.Equal(t, 1, mainNet.PowParams.PowLimit.Cmp(big.NewInt(1)))
	assert.Equal(t, "159.203.161.244", mainNet.DNSSeeds[0].Host)
	assert.Equal(t, "159.203.161.244", mainNet.FixedSeeds[0].IP.String())
	assert.Equal(t, uint16(21524), mainNet.FixedSeeds[0].Port)
}

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		in   string
		want Network
	}{
		{"main", MainNet},
		{"MainNet", MainNet},
		{"test", TestNet},
		{" testnet ", TestNet},
		{"regtest", RegTest},
		{"regression", RegTest},
		{"unittest", UnitTest},
	}

	for _, tt := range tests {
		got, err := ParseNetwork(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, net := range Networks() {
		got, err := ParseNetwork(net.String())
		require.NoError(t, err)
		assert.Equal(t, net, got)
		assert.True(t, net.IsKnown())
	}

	_, err := ParseNetwork("simnet")
	assert.True(t, errors.Is(err, ErrUnknownNetwork), "got %v", err)
	assert.False(t, Network(9).IsKnown())
	assert.Equal(t, "Unknown Network (9)", Network(9).String())
}
