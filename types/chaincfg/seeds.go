/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// SeedSpec6 is one entry of a packed fixed-seed table: a 16-byte IPv6 (or
// IPv4-mapped) address and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// ipv4Seed packs an IPv4 address as an IPv4-mapped SeedSpec6.
func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec6 {
	return SeedSpec6{
		Addr: [16]byte{10: 0xff, 11: 0xff, 12: a, 13: b, 14: c, 15: d},
		Port: port,
	}
}

// ConvertSeeds turns a fixed-seed table into address records.  Each record
// gets a last-seen time between one and two weeks before now, so a fresh node
// does not treat every seed as equally recent and hit them all at once.  It
// only connects to one or two of them; once connected it learns a pile of
// addresses with newer timestamps.
func ConvertSeeds(specs []SeedSpec6, now time.Time, rng *rand.Rand) []*wire.NetAddress {
	week := int64(oneWeek / time.Second)

	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		lastSeen := now.Unix() - rng.Int63n(week) - week
		addrs = append(addrs, wire.NewNetAddressTimestamp(
			time.Unix(lastSeen, 0), wire.SFNodeNetwork, ip, spec.Port))
	}

	return addrs
}

// convertSeed6 converts specs against the wall clock.
func convertSeed6(specs []SeedSpec6) []*wire.NetAddress {
	now := time.Now()
	return ConvertSeeds(specs, now, rand.New(rand.NewSource(now.UnixNano())))
}
