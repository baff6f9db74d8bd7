// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides abstracted hash functionality.
//
// The hash type itself is btcd's chainhash.Hash, so values flow unchanged into
// the btcd wire codec.  This package adds the double-SHA256 merkle tree
// helpers used to commit a block to its transactions.
package chainhash
