/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
	"gitlab.com/boxycoin/boxyd/types/chainhash"
)

// GenesisCoinbaseTx builds the single coinbase transaction of a genesis
// block.  The signature script is
//
//	<CoinbaseBits> <CoinbaseCounter> <Message>
//
// and the only output pays Value to <PubKey> OP_CHECKSIG.
func GenesisCoinbaseTx(opts GenesisOpts) (*wire.MsgTx, error) {
	// The counter goes out as a one-byte data push, not a small-int opcode,
	// so it can't go through AddData/AddInt64.
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(opts.CoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, opts.CoinbaseCounter}).
		AddData([]byte(opts.Message)).
		Script()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build coinbase signature script")
	}

	pkScript, err := txscript.NewScriptBuilder().
		AddData(opts.PubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build coinbase output script")
	}

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(opts.Value, pkScript))

	return tx, nil
}

// AssembleGenesisBlock builds the genesis block described by opts: the
// coinbase from GenesisCoinbaseTx under a header with a zero previous hash.
func AssembleGenesisBlock(opts GenesisOpts) (*wire.MsgBlock, error) {
	tx, err := GenesisCoinbaseTx(opts)
	if err != nil {
		return nil, err
	}

	merkleRoot := chainhash.MerkleTreeRoot([]chainhash.Hash{tx.TxHash()})
	block := wire.NewMsgBlock(&wire.BlockHeader{
		Version:    opts.Version,
		PrevBlock:  chainhash.Hash{}, // 0000000000000000000000000000000000000000000000000000000000000000
		MerkleRoot: merkleRoot,
		Timestamp:  opts.Timestamp,
		Bits:       opts.Bits,
		Nonce:      opts.Nonce,
	})
	if err := block.AddTransaction(tx); err != nil {
		return nil, errors.Wrap(err, "unable to add genesis coinbase")
	}

	return block, nil
}

// VerifyGenesisBlock recomputes the merkle root and the block hash of block
// and compares them with the expected values.  Any difference, including a
// header merkle field that disagrees with the transactions, is reported as
// ErrGenesisMismatch.
func VerifyGenesisBlock(block *wire.MsgBlock, wantHash, wantMerkleRoot *chainhash.Hash) error {
	txHashes := make([]chainhash.Hash, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		txHashes = append(txHashes, tx.TxHash())
	}

	merkleRoot := chainhash.MerkleTreeRoot(txHashes)
	if !merkleRoot.IsEqual(wantMerkleRoot) {
		return errors.Wrapf(ErrGenesisMismatch, "merkle root %v, want %v",
			merkleRoot, wantMerkleRoot)
	}
	if !block.Header.MerkleRoot.IsEqual(&merkleRoot) {
		return errors.Wrapf(ErrGenesisMismatch, "header merkle root %v, transactions give %v",
			block.Header.MerkleRoot, merkleRoot)
	}

	hash := block.BlockHash()
	if !hash.IsEqual(wantHash) {
		return errors.Wrapf(ErrGenesisMismatch, "block hash %v, want %v",
			hash, wantHash)
	}

	return nil
}

// buildGenesis assembles p's genesis block from p.Genesis, checks it against
// the expected constants and stores it on p.  A mismatch is fatal.
func (p *Params) buildGenesis(wantHash, wantMerkleRoot *chainhash.Hash) {
	block, err := AssembleGenesisBlock(p.Genesis)
	if err == nil {
		err = VerifyGenesisBlock(block, wantHash, wantMerkleRoot)
	}
	if err != nil {
		fatal(errors.Wrapf(err, "%s network", p.Name))
	}

	hash := block.BlockHash()
	merkleRoot := block.Header.MerkleRoot

	p.GenesisBlock = block
	p.GenesisHash = &hash
	p.GenesisMerkleRoot = &merkleRoot

	log.Debugf("Verified %s genesis block %v (merkle root %v)", p.Name, hash, merkleRoot)
}
