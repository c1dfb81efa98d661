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
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/ingredi/pkg/defaults"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc

	// Checks run on every /ready request once the listener is up.
	Checks map[string]CheckFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Request limits. MaxBulkRequests caps the items of one bulk rescale;
	// MaxBodyBytes caps every request body.
	MaxBulkRequests int
	MaxBodyBytes    int64

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns defaults overridden by PORT, SHUTDOWN_TIMEOUT_SECONDS,
// RATE_LIMIT, RATE_LIMIT_BURST, MAX_BULK_REQUESTS and MAX_BODY_BYTES.
// Values that do not parse as positive integers are ignored.
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              8080,
		RateLimit:         100, // 100 req/s
		RateLimitBurst:    200, // burst of 200
		MaxBulkRequests:   defaults.MaxBulkRequests,
		MaxBodyBytes:      defaults.MaxBodyBytes,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if port, ok := envInt("PORT"); ok {
		cfg.Port = port
	}

	// Allow customization of shutdown timeout to match K8s eviction grace period
	if seconds, ok := envInt("SHUTDOWN_TIMEOUT_SECONDS"); ok {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if limit, ok := envInt("RATE_LIMIT"); ok {
		cfg.RateLimit = rate.Limit(limit)
	}
	if burst, ok := envInt("RATE_LIMIT_BURST"); ok {
		cfg.RateLimitBurst = burst
	}

	if n, ok := envInt("MAX_BULK_REQUESTS"); ok {
		cfg.MaxBulkRequests = n
	}
	if n, ok := envInt("MAX_BODY_BYTES"); ok {
		cfg.MaxBodyBytes = int64(n)
	}

	return cfg
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
		slog.Warn("ignoring invalid environment value", "key", key, "value", s)
		return 0, false
	}
	return n, true
}
