// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
	"go.uber.org/zap"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := bytes.NewBuffer(nil)
	cliApp := newApp(chaincfg.NewRegistry()).cliApp()
	cliApp.Writer = out
	cliApp.ErrWriter = io.Discard
	cliApp.ExitErrHandler = func(*cli.Context, error) {}

	err := cliApp.Run(append([]string{"boxyparams", "--debuglevel", "off"}, args...))
	return out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, code, exitErr.ExitCode())
}

func TestShow(t *testing.T) {
	out, err := runApp(t, "--network", "regtest", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "name: regtest")
	assert.Contains(t, out, "21529")
	assert.Contains(t, out, "0x207fffff")
	assert.Contains(t, out, "d880c4e8db4427c936d8c759b463102694366b3e2e512f7b62a946c0d39d50dd")
	assert.Contains(t, out, "mine_blocks_on_demand: true")
}

func TestNetworkFlagOverridesEnv(t *testing.T) {
	t.Setenv("BOXYD_NETWORK", "regtest")

	out, err := runApp(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "name: regtest")

	out, err = runApp(t, "--network", "test", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "name: test")
}

func TestUnknownNetwork(t *testing.T) {
	_, err := runApp(t, "--network", "simnet", "show")
	requireExitCode(t, err, 1)
	assert.Contains(t, err.Error(), "unknown network")
}

func TestGenesis(t *testing.T) {
	out, err := runApp(t, "genesis", "--hex")
	require.NoError(t, err)

	assert.Contains(t, out, "network:     main")
	assert.Contains(t, out, "hash:        d880c4e8db4427c936d8c759b463102694366b3e2e512f7b62a946c0d39d50dd")
	assert.Contains(t, out, "merkle root: cbbd3ac705fc543c0a61193ab593d9abecdf8abdfe8695cfb017232982b0bb26")
	assert.Contains(t, out, "timestamp:   2017-11-15T05:20:34Z")
	assert.Contains(t, out, "bits:        0x1e0ffff0")
	assert.Contains(t, out, "nonce:       1572978")
	assert.Contains(t, out, "target:      00000ffff0"+strings.Repeat("0", 54))
	assert.Contains(t, out, "work:        1048592")

	// version 1, zero previous block
	assert.Contains(t, out, "01000000"+strings.Repeat("00", 32))
}

func TestGenesisDump(t *testing.T) {
	out, err := runApp(t, "--network", "unittest", "genesis", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "network:     unittest")
	assert.Contains(t, out, "MerkleRoot")
}

func TestCheckpoint(t *testing.T) {
	out, err := runApp(t, "checkpoint", "333")
	require.NoError(t, err)
	assert.Equal(t, "52d72726edd411314324d36b2c9da463bfd6a17f7951581716b1333ee86f91af\n", out)

	_, err = runApp(t, "checkpoint", "334")
	requireExitCode(t, err, 1)

	_, err = runApp(t, "--network", "regtest", "checkpoint", "333")
	requireExitCode(t, err, 1)

	_, err = runApp(t, "checkpoint", "tip")
	requireExitCode(t, err, 1)

	_, err = runApp(t, "checkpoint")
	requireExitCode(t, err, 1)
}

func TestCheckpoints(t *testing.T) {
	out, err := runApp(t, "--network", "regtest", "checkpoints")
	require.NoError(t, err)
	assert.Equal(t, "       0 d880c4e8db4427c936d8c759b463102694366b3e2e512f7b62a946c0d39d50dd\n", out)
}

func TestCheckpointsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoints.csv")

	out, err := runApp(t, "checkpoints", "--csv", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rows []checkpointRow
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	require.Len(t, rows, 9)
	assert.Equal(t, int32(0), rows[0].Height)
	assert.Equal(t, int32(59650), rows[8].Height)
	assert.Equal(t, "799ee1d88c218495454c14a96605d2781a3b6615c918d5dd5123479383b30a9b", rows[8].Hash)
}

func TestSeeds(t *testing.T) {
	out, err := runApp(t, "seeds")
	require.NoError(t, err)
	assert.Contains(t, out, "dns seeds (8):")
	assert.Contains(t, out, "  boxycoin.org pool.boxy.online")
	assert.Contains(t, out, "fixed seeds (5):")
	assert.Contains(t, out, "  159.203.161.244:21524 last seen ")

	out, err = runApp(t, "--network", "regtest", "seeds")
	require.NoError(t, err)
	assert.Equal(t, "dns seeds (0):\nfixed seeds (0):\n", out)
}

func TestInterruptListenerFollowsParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx := interruptListener(parent, zap.NewNop())

	select {
	case <-ctx.Done():
		t.Fatal("context done before cancel")
	default:
	}

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled with its parent")
	}
}
