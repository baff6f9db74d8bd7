/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"github.com/pkg/errors"
	"gitlab.com/boxycoin/boxyd/types/chainhash"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
//
// A good checkpoint block is surrounded by blocks with reasonable timestamps
// (no block before it with a later timestamp, none after with an earlier one)
// and contains no strange transactions.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointStore is an immutable height -> hash table.  A nil store behaves
// as an empty one.
type CheckpointStore struct {
	// checkpoints ordered from oldest to newest.
	checkpoints []Checkpoint
	byHeight    map[int32]chainhash.Hash
}

// NewCheckpointStore builds a store from checkpoints listed in strictly
// ascending height order.  Hashes are copied, the store never aliases the
// caller's values.
func NewCheckpointStore(checkpoints ...Checkpoint) (*CheckpointStore, error) {
	store := &CheckpointStore{
		checkpoints: make([]Checkpoint, 0, len(checkpoints)),
		byHeight:    make(map[int32]chainhash.Hash, len(checkpoints)),
	}

	for i, cp := range checkpoints {
		switch {
		case cp.Height < 0:
			return nil, errors.Wrapf(ErrInvalidCheckpoints, "negative height %d", cp.Height)
		case cp.Hash == nil:
			return nil, errors.Wrapf(ErrInvalidCheckpoints, "nil hash at height %d", cp.Height)
		case i > 0 && cp.Height <= checkpoints[i-1].Height:
			return nil, errors.Wrapf(ErrInvalidCheckpoints, "height %d after %d",
				cp.Height, checkpoints[i-1].Height)
		}

		hash := *cp.Hash
		store.checkpoints = append(store.checkpoints, Checkpoint{Height: cp.Height, Hash: &hash})
		store.byHeight[cp.Height] = hash
	}

	return store, nil
}

// mustNewCheckpointStore is NewCheckpointStore for hardcoded tables.
func mustNewCheckpointStore(checkpoints ...Checkpoint) *CheckpointStore {
	store, err := NewCheckpointStore(checkpoints...)
	if err != nil {
		fatal(err)
	}
	return store
}

// Lookup returns the checkpointed hash at height, if any.
func (s *CheckpointStore) Lookup(height int32) (*chainhash.Hash, bool) {
	if s == nil {
		return nil, false
	}

	hash, ok := s.byHeight[height]
	if !ok {
		return nil, false
	}
	return &hash, true
}

// Matches reports whether hash is acceptable at height: true when no
// checkpoint exists there or when it equals the checkpointed hash.  What a
// mismatch means is up to the caller.
func (s *CheckpointStore) Matches(height int32, hash *chainhash.Hash) bool {
	want, ok := s.Lookup(height)
	if !ok {
		return true
	}
	return want.IsEqual(hash)
}

// HighestHeight returns the height of the newest checkpoint.  The boolean is
// false when the store is empty.
func (s *CheckpointStore) HighestHeight() (int32, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	return s.checkpoints[len(s.checkpoints)-1].Height, true
}

// LatestCheckpoint returns the newest checkpoint or nil when there are none.
func (s *CheckpointStore) LatestCheckpoint() *Checkpoint {
	if s.Len() == 0 {
		return nil
	}

	latest := s.checkpoints[len(s.checkpoints)-1]
	hash := *latest.Hash
	return &Checkpoint{Height: latest.Height, Hash: &hash}
}

// Checkpoints returns a copy of the table, oldest first.
func (s *CheckpointStore) Checkpoints() []Checkpoint {
	if s.Len() == 0 {
		return nil
	}

	out := make([]Checkpoint, 0, len(s.checkpoints))
	for _, cp := range s.checkpoints {
		hash := *cp.Hash
		out = append(out, Checkpoint{Height: cp.Height, Hash: &hash})
	}
	return out
}

// Len returns the number of checkpoints.
func (s *CheckpointStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.checkpoints)
}

func (s *CheckpointStore) clone() *CheckpointStore {
	if s == nil {
		return nil
	}
	return mustNewCheckpointStore(s.checkpoints...)
}
