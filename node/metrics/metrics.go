// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// IMetric metric reader
type IMetric interface {
	Read()
}

// IMetricManager metric manager
type IMetricManager interface {
	Add(metrics ...IMetric)
	Listen(ctx context.Context, route, addr string) error
	Serve(ctx context.Context, route string, listener net.Listener) error
}

// metricsManager metrics manager
type metricsManager struct {
	mtx      sync.Mutex
	metrics  []IMetric
	interval time.Duration
	gatherer prometheus.Gatherer
	logger   *zap.Logger
}

// Metrics creates metric instance.  Registered metrics are read every interval
// until ctx is done and exported from gatherer.
func Metrics(ctx context.Context, interval time.Duration, gatherer prometheus.Gatherer,
	logger *zap.Logger) IMetricManager {
	res := &metricsManager{
		interval: interval,
		gatherer: gatherer,
		logger:   logger,
	}

	go res.collector(ctx)
	return res
}

// Add registers metrics and reads each of them once.
func (m *metricsManager) Add(metrics ...IMetric) {
	m.mtx.Lock()
	m.metrics = append(m.metrics, metrics...)
	m.mtx.Unlock()

	for _, metric := range metrics {
		metric.Read()
	}
}

func (m *metricsManager) readAll() {
	m.mtx.Lock()
	metrics := make([]IMetric, len(m.metrics))
	copy(metrics, m.metrics)
	m.mtx.Unlock()

	for _, v := range metrics {
		v.Read()
	}
}

func (m *metricsManager) collector(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.readAll()
		}
	}
}

// Listen serves the metrics on addr until ctx is done.
func (m *metricsManager) Listen(ctx context.Context, route, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "can't listen on %s", addr)
	}
	return m.Serve(ctx, route, listener)
}

// Serve serves the metrics on listener until ctx is done.
func (m *metricsManager) Serve(ctx context.Context, route string, listener net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(route, promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			m.logger.Error("can't stop metrics server", zap.Error(err))
		}
	}()

	m.logger.Info("serving metrics", zap.String("addr", listener.Addr().String()), zap.String("route", route))
	err := srv.Serve(listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
