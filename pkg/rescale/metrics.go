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

package rescale

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rescaledAmountsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingredi_rescaled_amounts_total",
			Help: "Total number of amounts rewritten by the rescaler",
		},
	)

	rescaleItemsPerRequest = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingredi_rescale_items_per_request",
			Help:    "Number of texts rescaled per HTTP request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)
)
