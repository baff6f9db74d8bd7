/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"math/rand"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSeeds(t *testing.T) {
	now := time.Unix(1700000000, 0)
	week := int64(oneWeek / time.Second)

	addrs := ConvertSeeds(mainSeeds, now, rand.New(rand.NewSource(1)))
	require.Len(t, addrs, len(mainSeeds))

	want := []string{"159.203.161.244", "138.68.174.82", "104.131.44.238", "138.68.191.238", "178.62.57.88"}
	for i, addr := range addrs {
		assert.True(t, addr.IP.Equal(net.ParseIP(want[i])), "seed %d: %v", i, addr.IP)
		assert.Equal(t, uint16(21524), addr.Port)
		assert.Equal(t, wire.SFNodeNetwork, addr.Services)

		ts := addr.Timestamp.Unix()
		assert.True(t, ts > now.Unix()-2*week, "seed %d too old: %v", i, addr.Timestamp)
		assert.True(t, ts <= now.Unix()-week, "seed %d too new: %v", i, addr.Timestamp)
	}
}

func TestConvertSeedsAgeBounds(t *testing.T) {
	now := time.Unix(1600000000, 0)
	week := int64(oneWeek / time.Second)

	specs := make([]SeedSpec6, 1000)
	for i := range specs {
		specs[i] = ipv4Seed(10, 0, byte(i>>8), byte(i), 8333)
	}

	for _, addr := range ConvertSeeds(specs, now, rand.New(rand.NewSource(42))) {
		age := now.Unix() - addr.Timestamp.Unix()
		require.True(t, age >= week && age < 2*week, "age %d", age)
	}
}

func TestConvertSeedsDeterministic(t *testing.T) {
	now := time.Unix(1600000000, 0)

	a := ConvertSeeds(mainSeeds, now, rand.New(rand.NewSource(7)))
	b := ConvertSeeds(mainSeeds, now, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)

	assert.Empty(t, ConvertSeeds(nil, now, rand.New(rand.NewSource(7))))
}

func TestFixedSeedsPerNetwork(t *testing.T) {
	registry := NewRegistry()

	assert.Len(t, registry.ParamsFor(MainNet).FixedSeeds, len(mainSeeds))
	assert.Empty(t, registry.ParamsFor(TestNet).FixedSeeds)
	assert.Empty(t, registry.ParamsFor(RegTest).FixedSeeds)
	assert.Empty(t, registry.ParamsFor(UnitTest).FixedSeeds)

	assert.Len(t, registry.ParamsFor(MainNet).DNSSeeds, 8)
	assert.Empty(t, registry.ParamsFor(TestNet).DNSSeeds)
	assert.Equal(t, "boxy.online", registry.ParamsFor(MainNet).DNSSeeds[5].String())
}

func TestMainFixedSeedsAreDNSSeedHosts(t *testing.T) {
	params := NewRegistry().ParamsFor(MainNet)

	hosts := make(map[string]bool, len(params.DNSSeeds))
	for _, seed := range params.DNSSeeds {
		hosts[seed.Host] = true
	}

	for _, addr := range params.FixedSeeds {
		assert.True(t, hosts[addr.IP.String()], "fixed seed %v is not a dns seed", addr.IP)
		assert.Equal(t, params.DefaultPort, strconv.Itoa(int(addr.Port)))
	}
}
