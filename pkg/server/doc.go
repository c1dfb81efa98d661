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

// Package server provides the HTTP server shared by the ingredi endpoints.
//
// Domain packages supply plain http.HandlerFunc values; the server wraps each
// one in a common middleware chain and adds system routes.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id, generated with google/uuid)
//   - API version from the route (/v1/...) or Accept: application/vnd.nvidia.ingredi.v1+json
//   - Request body size limits, reported as 413 by WriteRequestError
//   - Panic recovery
//   - Prometheus RED metrics labeled by route pattern
//   - Graceful shutdown on SIGINT/SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("ingredid"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/rescale": rescale.NewHandler(version).HandleRescale,
//	    }),
//	    server.WithCheck("recipes", checkCatalog),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
//   - GET /health: liveness probe
//   - GET /ready: readiness probe, 503 until the listener is up, during shutdown
//     and while a registered check fails
//   - GET /metrics: Prometheus metrics
//   - GET /: server name, version and route list
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Both write an
// ErrorResponse with the request ID; WriteErrorFromErr maps the error code of
// a StructuredError to the HTTP status:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "multiplier must be a finite number greater than zero",
//	  "details": {"multiplier": "0"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-30T10:30:00Z",
//	  "retryable": false
//	}
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT,
// RATE_LIMIT_BURST, MAX_BULK_REQUESTS and MAX_BODY_BYTES from the
// environment. Everything else comes from the defaults package or a custom
// Config passed through WithConfig.
package server
