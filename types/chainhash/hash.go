// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	btcdhash "github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/minio/sha256-simd"
)

// HashSize of array used to store hashes.  See Hash.
const HashSize = btcdhash.HashSize

// Hash is used in several of the bitcoin messages and common structures.  It
// typically represents the double sha256 of data.
type Hash = btcdhash.Hash

// NewHashFromStr creates a Hash from a byte-reversed hash string.  The string
// should be the hexadecimal string of a byte-reversed hash, but any missing
// characters result in zero padding at the end of the Hash.
func NewHashFromStr(hash string) (*Hash, error) {
	return btcdhash.NewHashFromStr(hash)
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a
// Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}
