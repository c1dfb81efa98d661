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

package server

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/NVIDIA/ingredi/pkg/serializer"
)

// checkTimeout bounds all readiness checks of one /ready request.
const checkTimeout = 2 * time.Second

// CheckFunc reports whether a dependency of the service can serve requests.
type CheckFunc func(ctx context.Context) error

// WithCheck registers a readiness check under name.
func WithCheck(name string, check CheckFunc) Option {
	return func(s *Server) {
		if s.config.Checks == nil {
			s.config.Checks = make(map[string]CheckFunc)
		}
		s.config.Checks[name] = check
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string            `json:"status" yaml:"status"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
	Reason    string            `json:"reason,omitempty" yaml:"reason,omitempty"`
	Checks    map[string]string `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// handleReady handles GET /ready. It is 503 until the listener is up, and
// while any registered check fails.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.isReady() {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: time.Now(),
			Reason:    "service is initializing",
		})
		return
	}

	checks, failed := s.runChecks(r.Context())
	resp := HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Checks:    checks,
	}
	if failed != "" {
		resp.Status = "not_ready"
		resp.Reason = "check " + failed + " failed"
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// runChecks runs the checks in name order and returns each outcome along
// with the first failing name.
func (s *Server) runChecks(ctx context.Context) (map[string]string, string) {
	if len(s.config.Checks) == 0 {
		return nil, ""
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	names := make([]string, 0, len(s.config.Checks))
	for name := range s.config.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]string, len(names))
	var failed string
	for _, name := range names {
		if err := s.config.Checks[name](ctx); err != nil {
			slog.Warn("readiness check failed", "check", name, "error", err)
			out[name] = err.Error()
			if failed == "" {
				failed = name
			}
			continue
		}
		out[name] = "ok"
	}
	return out, failed
}
