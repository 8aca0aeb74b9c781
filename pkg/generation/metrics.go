// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

var (
	generationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_generation_requests_total",
			Help: "Total number of upstream generation calls by outcome",
		},
		[]string{"outcome"},
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gateway_generation_duration_seconds",
			Help:    "Duration of upstream generation calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)
)

func observe(res Result, d time.Duration) {
	outcome := outcomeSuccess
	if !res.OK() {
		outcome = outcomeFailure
	}
	generationRequests.WithLabelValues(outcome).Inc()
	generationDuration.Observe(d.Seconds())
}
