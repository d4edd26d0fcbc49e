/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clix_parse_duration_seconds",
			Help:    "Duration of full argument-vector parses in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clix_parse_total",
			Help: "Total number of parse invocations",
		},
		[]string{"status"}, // success, help, version or error
	)
)
