// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"os"

	"github.com/gocarina/gocsv"
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
)

type checkpointRow struct {
	Height int32  `csv:"height"`
	Hash   string `csv:"hash"`
}

func newCheckpointRows(checkpoints []chaincfg.Checkpoint) []checkpointRow {
	rows := make([]checkpointRow, 0, len(checkpoints))
	for _, cp := range checkpoints {
		rows = append(rows, checkpointRow{Height: cp.Height, Hash: cp.Hash.String()})
	}
	return rows
}

type CSVStorage struct {
	path string
	file *os.File
}

func NewCSVStorage(path string) *CSVStorage {
	return &CSVStorage{path: path}
}

func (storage *CSVStorage) open(truncate bool) error {
	mode := os.O_RDWR | os.O_CREATE
	if truncate {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(storage.path, mode, 0644)
	storage.file = file
	return err
}

func (storage *CSVStorage) Close() {
	if storage.file != nil {
		_ = storage.file.Close()
	}
}

func (storage *CSVStorage) SaveRows(rows []checkpointRow) error {
	if err := storage.open(true); err != nil {
		return err
	}
	defer storage.Close()

	return gocsv.MarshalFile(rows, storage.file)
}
