// SPDX-License-Identifier: MIT

package scene

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionPrometheusMetrics sync.Once

	sessionObjectsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydridic",
			Subsystem: "scene",
			Name:      "objects_created_total",
			Help:      "Number of objects created in the host renderer, by kind.",
		},
		[]string{"kind"})

	sessionMaterialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydridic",
			Subsystem: "scene",
			Name:      "materials_total",
			Help:      "Number of material requests, by whether the material was created, found in the session cache or found in the host.",
		},
		[]string{"outcome"})

	sessionBondsDrawnTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydridic",
			Subsystem: "scene",
			Name:      "bonds_drawn_total",
			Help:      "Number of bond solids drawn, by style.",
		},
		[]string{"style"})

	importDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "hydridic",
			Subsystem: "scene",
			Name:      "import_duration_seconds",
			Help:      "Wall time of structure imports.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		})
)

func registerMetrics() {
	sessionPrometheusMetrics.Do(func() {
		prometheus.MustRegister(sessionObjectsCreatedTotal)
		prometheus.MustRegister(sessionMaterialsTotal)
		prometheus.MustRegister(sessionBondsDrawnTotal)
		prometheus.MustRegister(importDurationSeconds)
	})
}
