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

package convert

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const tableNone = "none"

var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingredi_conversions_total",
			Help: "Total number of unit conversions by table; unconverted amounts count as none",
		},
		[]string{"table"},
	)
	diagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingredi_diagnostics_total",
			Help: "Total number of conversion diagnostics by code",
		},
		[]string{"code"},
	)
)

func observe(r *Result) {
	table := r.Table
	if table == "" {
		table = tableNone
	}
	conversionsTotal.WithLabelValues(table).Inc()
	for _, d := range r.Diagnostics {
		diagnosticsTotal.WithLabelValues(string(d.Code)).Inc()
	}
}
