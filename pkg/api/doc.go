// Package api provides the HTTP API layer for the ingredi service.
//
// This package is a thin wrapper around the reusable pkg/server package. It
// configures the server with the amount parsing, conversion and rescaling
// handlers and leaves lifecycle, middleware and system endpoints to pkg/server.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/ingredi/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET|POST /v1/normalize - Map unit spellings to canonical units
//   - GET|POST /v1/parse     - Extract amounts and units from free text
//   - GET|POST /v1/convert   - Convert a single amount to a better unit
//   - GET|POST /v1/rescale   - Multiply every amount in text, optionally in bulk
//   - GET|POST /v1/recipe    - Scale a built-in or posted recipe
//   - GET /v1/recipes        - List the built-in recipe catalog
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check, including the Checks
//   - GET /metrics - Prometheus metrics
//
// Unknown paths return 404 with a NOT_FOUND error body.
//
// # Query Parameters (GET /v1/rescale)
//
//   - text: Text containing amounts (e.g., "1-2 c flour")
//   - multiplier: Factor applied to every amount (must be > 0)
//   - to: Target unit for single amounts
//   - flag: Ingredient flag, repeatable (butter, flour, rye, liquor)
//   - type: Conversion table (volume, weight)
//   - format: Amount format (fraction, decimal, auto)
//
// # Request Body (POST)
//
// POST requests accept JSON (application/json) or YAML (application/x-yaml).
//
// Example rescale request body:
//
//	multiplier: 2
//	items:
//	  - text: 2 cups (9 oz) flour
//	    flags: [flour]
//	  - text: 1-2 tbsp water
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/rescale \
//	  -H "Content-Type: application/yaml" \
//	  -d @rescale.yaml
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown timeout
//   - RATE_LIMIT, RATE_LIMIT_BURST: Token bucket for application endpoints
//   - MAX_BULK_REQUESTS: Items allowed in one bulk rescale (default: 100)
//   - MAX_BODY_BYTES: Request body cap; larger bodies get 413
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// /ready also runs the "units" and "recipes" checks from Checks.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/ingredi/pkg/api.version=1.0.0'"
package api
