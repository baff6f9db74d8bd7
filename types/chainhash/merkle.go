// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.  This is a helper
// function used to aid in the generation of a merkle tree.
func HashMerkleBranches(left *Hash, right *Hash) *Hash {
	// Concatenate the left and right nodes.
	var hash [HashSize * 2]byte
	copy(hash[:HashSize], left[:])
	copy(hash[HashSize:], right[:])

	newHash := DoubleHashH(hash[:])
	return &newHash
}

// MerkleTreeRoot returns the root of the merkle tree built over the passed
// leaves.  Levels with an odd number of nodes duplicate their last node, so a
// single leaf is its own root.  An empty leaf set yields the zero hash.
func MerkleTreeRoot(leaves []Hash) Hash {
	if len(leaves) == 0 {
		return Hash{}
	}

	level := make([]Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}

		next := make([]Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, *HashMerkleBranches(&level[i], &level[i+1]))
		}
		level = next
	}

	return level[0]
}
