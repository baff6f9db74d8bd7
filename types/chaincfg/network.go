/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Network identifies one of the mutually exclusive chain environments.
type Network uint8

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// UnitTest is the in-process network used by unit tests.
	UnitTest
)

// networkStrings are the network ids as written on the command line and
// reported over RPC.
var networkStrings = map[Network]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

var networkAliases = map[string]Network{
	"main":       MainNet,
	"mainnet":    MainNet,
	"test":       TestNet,
	"testnet":    TestNet,
	"regtest":    RegTest,
	"regression": RegTest,
	"unittest":   UnitTest,
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := networkStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// IsKnown reports whether n is one of the four defined networks.
func (n Network) IsKnown() bool {
	_, ok := networkStrings[n]
	return ok
}

// Networks returns every defined network in declaration order.
func Networks() []Network {
	return []Network{MainNet, TestNet, RegTest, UnitTest}
}

// ParseNetwork resolves a network id string.  Matching is case-insensitive.
func ParseNetwork(name string) (Network, error) {
	net, ok := networkAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNetwork, "%q", name)
	}

	return net, nil
}
