/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import "time"

// SatoshiPerCoin is the number of base units in one BOXY coin.
const SatoshiPerCoin = 1e8

const (
	// oneWeek is the width of the window fixed seeds are aged into.
	oneWeek = 7 * 24 * time.Hour

	// genesisCoinbaseBits is the difficulty-bits value pushed first in every
	// genesis coinbase script.  It is 0x1d00ffff and is unrelated to the
	// header bits.
	genesisCoinbaseBits = 486604799

	// genesisCoinbaseCounter is pushed right after genesisCoinbaseBits.
	genesisCoinbaseCounter = 4
)
