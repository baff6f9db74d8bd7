/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

// mainSeeds are the fixed seed nodes of the main network.  They are the IPv4
// hosts among main's DNS seeds on port 21524, not an upstream seed dump.
var mainSeeds = []SeedSpec6{
	ipv4Seed(159, 203, 161, 244, 21524),
	ipv4Seed(138, 68, 174, 82, 21524),
	ipv4Seed(104, 131, 44, 238, 21524),
	ipv4Seed(138, 68, 191, 238, 21524),
	ipv4Seed(178, 62, 57, 88, 21524),
}

// testSeeds are the fixed seed nodes of the test network.
var testSeeds = []SeedSpec6{}
