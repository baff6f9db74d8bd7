// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/boxycoin/boxyd/types/chaincfg"
	"go.uber.org/zap"
)

type networkMetrics struct {
	registry          *chaincfg.Registry
	info              *prometheus.GaugeVec
	highestCheckpoint *prometheus.GaugeVec
	logger            *zap.Logger
}

// NetworkMetrics exports the identity and the newest checkpoint of the active
// network of registry.
func NetworkMetrics(registry *chaincfg.Registry, reg prometheus.Registerer, logger *zap.Logger) (IMetric, error) {
	s := &networkMetrics{
		registry: registry,
		logger:   logger,
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "boxyd",
			Name:      "network_info",
			Help:      "Active network, always 1",
		}, []string{"network", "magic", "port"}),
		highestCheckpoint: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "boxyd",
			Name:      "highest_checkpoint_height",
			Help:      "Height of the newest checkpoint of the active network",
		}, []string{"network"}),
	}

	for _, collector := range []prometheus.Collector{s.info, s.highestCheckpoint} {
		if err := reg.Register(collector); err != nil {
			return nil, errors.Wrap(err, "can't register metric")
		}
	}

	return s, nil
}

func (s *networkMetrics) Read() {
	net, ok := s.registry.ActiveNetwork()
	if !ok {
		s.logger.Debug("no active network, skipping metrics")
		return
	}
	params := s.registry.ParamsFor(net)

	s.info.Reset()
	s.info.WithLabelValues(params.Name, hex.EncodeToString(params.MessageStart[:]), params.DefaultPort).Set(1)

	s.highestCheckpoint.Reset()
	if height, ok := params.Checkpoints.HighestHeight(); ok {
		s.highestCheckpoint.WithLabelValues(params.Name).Set(float64(height))
	}
}
