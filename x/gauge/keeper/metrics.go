package keeper

import (
	"math/big"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GaugeMetrics holds all Prometheus metrics for the gauge module
type GaugeMetrics struct {
	GaugesCreated prometheus.Counter
	StakeOps      *prometheus.CounterVec
	RewardsPaid   prometheus.Counter
}

var (
	gaugeMetricsOnce sync.Once
	gaugeMetrics     *GaugeMetrics
)

// NewGaugeMetrics creates and registers gauge metrics (singleton pattern)
func NewGaugeMetrics() *GaugeMetrics {
	gaugeMetricsOnce.Do(func() {
		gaugeMetrics = &GaugeMetrics{
			GaugesCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "arcadia",
					Subsystem: "gauge",
					Name:      "gauges_created_total",
					Help:      "Total number of gauges created",
				},
			),
			StakeOps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "arcadia",
					Subsystem: "gauge",
					Name:      "stake_operations_total",
					Help:      "Stake and unstake operations",
				},
				[]string{"operation"},
			),
			RewardsPaid: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "arcadia",
					Subsystem: "gauge",
					Name:      "rewards_paid_total",
					Help:      "Total reward units paid to stakers",
				},
			),
		}
	})
	return gaugeMetrics
}

// metricValue converts an arbitrary-precision amount into a metric sample.
// Amounts beyond float64 range lose precision instead of panicking, which is
// acceptable for counters.
func metricValue(amount sdkmath.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}

// GetGaugeMetrics returns the singleton gauge metrics instance
func GetGaugeMetrics() *GaugeMetrics {
	if gaugeMetrics == nil {
		return NewGaugeMetrics()
	}
	return gaugeMetrics
}
