/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnknownNetwork describes an error where the requested network id
	// does not match any of the defined networks.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNoActiveNetwork describes an error where active parameters are
	// requested before a network was selected.
	ErrNoActiveNetwork = errors.New("no network selected")

	// ErrNotModifiable describes an error where a mutable parameter handle is
	// requested while a network other than unittest is active.
	ErrNotModifiable = errors.New("only the unittest parameters are modifiable")

	// ErrGenesisMismatch describes an error where a rebuilt genesis block
	// disagrees with the hardcoded hash or merkle root.
	ErrGenesisMismatch = errors.New("genesis block mismatch")

	// ErrInvalidCheckpoints describes an error where a checkpoint list is not
	// strictly ascending, has negative heights or nil hashes.
	ErrInvalidCheckpoints = errors.New("invalid checkpoint list")
)

// fatal logs err as critical and aborts.  It is reserved for defects in the
// hardcoded parameters or misuse of the registry, never for runtime input.
func fatal(err error) {
	log.Criticalf("%v", err)
	panic(err)
}
