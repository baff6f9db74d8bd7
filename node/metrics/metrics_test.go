// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
	"go.uber.org/zap"
)

func TestNetworkMetrics(t *testing.T) {
	registry := chaincfg.NewRegistry()
	promReg := prometheus.NewRegistry()

	metric, err := NetworkMetrics(registry, promReg, zap.NewNop())
	require.NoError(t, err)
	s := metric.(*networkMetrics)

	// Nothing selected yet.
	s.Read()
	assert.Equal(t, 0, testutil.CollectAndCount(s.info))

	registry.Select(chaincfg.MainNet)
	s.Read()
	assert.Equal(t, 1.0, testutil.ToFloat64(s.info.WithLabelValues("main", "f1c3a4dc", "21524")))
	assert.Equal(t, 59650.0, testutil.ToFloat64(s.highestCheckpoint.WithLabelValues("main")))

	registry.Select(chaincfg.RegTest)
	s.Read()
	assert.Equal(t, 1, testutil.CollectAndCount(s.info))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.info.WithLabelValues("regtest", "d4c3185e", "21529")))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.highestCheckpoint.WithLabelValues("regtest")))
	assert.Equal(t, 1, testutil.CollectAndCount(s.highestCheckpoint))
}

func TestNetworkMetricsRegisterTwice(t *testing.T) {
	registry := chaincfg.NewRegistry()
	promReg := prometheus.NewRegistry()

	_, err := NetworkMetrics(registry, promReg, zap.NewNop())
	require.NoError(t, err)
	_, err = NetworkMetrics(registry, promReg, zap.NewNop())
	assert.Error(t, err)
}

type countingMetric struct {
	reads int32
}

func (c *countingMetric) Read() {
	atomic.AddInt32(&c.reads, 1)
}

func TestMetricsCollector(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := Metrics(ctx, 5*time.Millisecond, prometheus.NewRegistry(), zap.NewNop())
	metric := &countingMetric{}
	manager.Add(metric)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&metric.reads), int32(1))

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&metric.reads) >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestServe(t *testing.T) {
	registry := chaincfg.NewRegistry()
	registry.Select(chaincfg.TestNet)
	promReg := prometheus.NewRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := Metrics(ctx, time.Hour, promReg, zap.NewNop())
	metric, err := NetworkMetrics(registry, promReg, zap.NewNop())
	require.NoError(t, err)
	manager.Add(metric)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- manager.Serve(ctx, "/metrics", listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Contains(t, string(body), `boxyd_network_info{magic="d4c3185e",network="test",port="21528"} 1`)
	assert.Contains(t, string(body), `boxyd_highest_checkpoint_height{network="test"} 0`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}
