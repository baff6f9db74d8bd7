/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package pow

import (
	"math/big"
	"testing"
)

func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  *big.Int
		out uint32
	}{
		{big.NewInt(0), 0},
		{big.NewInt(-1), 0x01810000},
		{big.NewInt(0x12), 0x01120000},
		{big.NewInt(0x80), 0x02008000},
		{MaxTarget(20), 0x1e0fffff}, // main
		{MaxTarget(1), 0x207fffff},  // regtest
	}

	for x, test := range tests {
		r := BigToCompact(test.in)
		if r != test.out {
			t.Errorf("TestBigToCompact test #%d failed: got %#08x want %#08x",
				x, r, test.out)
			return
		}
	}
}

func TestCompactToBig(t *testing.T) {
	tests := []struct {
		in  uint32
		out string
	}{
		{0x1e0ffff0, "00000ffff0000000000000000000000000000000000000000000000000000000"},
		{0x207fffff, "7fffff0000000000000000000000000000000000000000000000000000000000"},
		{0x01120000, "0000000000000000000000000000000000000000000000000000000000000012"},
	}

	for x, test := range tests {
		want, ok := new(big.Int).SetString(test.out, 16)
		if !ok {
			t.Fatalf("TestCompactToBig test #%d: bad hex fixture", x)
		}
		n := CompactToBig(test.in)
		if n.Cmp(want) != 0 {
			t.Errorf("TestCompactToBig test #%d failed: got %x want %x",
				x, n, want)
			return
		}
	}
}

func TestCompactRoundTrip(t *testing.T) {
	for _, bits := range []uint32{0x1e0ffff0, 0x1e0fffff, 0x207fffff, 0x1d00ffff} {
		if got := BigToCompact(CompactToBig(bits)); got != bits {
			t.Errorf("round trip of %#08x gave %#08x", bits, got)
		}
	}
}

func TestCalcWork(t *testing.T) {
	tests := []struct {
		bits uint32
		work int64
	}{
		{0x1e0ffff0, 1048592},
		{0x207fffff, 2},
		{0, 0},
	}

	for x, test := range tests {
		r := CalcWork(test.bits)
		if r.Int64() != test.work {
			t.Errorf("TestCalcWork test #%d failed: got %v want %d",
				x, r.Int64(), test.work)
			return
		}
	}
}
