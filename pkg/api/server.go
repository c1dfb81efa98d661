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

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/ingredi/pkg/convert"
	"github.com/NVIDIA/ingredi/pkg/logging"
	"github.com/NVIDIA/ingredi/pkg/parser"
	"github.com/NVIDIA/ingredi/pkg/recipe"
	"github.com/NVIDIA/ingredi/pkg/rescale"
	"github.com/NVIDIA/ingredi/pkg/server"
	"github.com/NVIDIA/ingredi/pkg/units"
)

const (
	name           = "ingredid"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/ingredi/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the application handlers keyed by path. Responses carry
// cfg.Version and bulk rescales are capped at cfg.MaxBulkRequests items.
func Routes(cfg *server.Config) map[string]http.HandlerFunc {
	s := recipe.NewScaler(recipe.WithVersion(cfg.Version))

	rh := rescale.NewHandler(cfg.Version)
	rh.MaxItems = cfg.MaxBulkRequests

	return map[string]http.HandlerFunc{
		"/v1/normalize": units.NewHandler(cfg.Version).HandleNormalize,
		"/v1/parse":     parser.NewHandler(cfg.Version).HandleParse,
		"/v1/convert":   convert.NewHandler(cfg.Version).HandleConvert,
		"/v1/rescale":   rh.HandleRescale,
		"/v1/recipe":    s.HandleScale,
		"/v1/recipes":   s.HandleCatalog,
	}
}

// Checks returns the readiness checks of the service.
func Checks() map[string]server.CheckFunc {
	return map[string]server.CheckFunc{
		"units":   checkUnits,
		"recipes": checkRecipes,
	}
}

// checkUnits verifies every listed spelling maps back to its unit.
func checkUnits(_ context.Context) error {
	for _, u := range units.Canonical() {
		for _, sp := range units.SupportedSpellings(u) {
			if got := units.Normalize(sp); got != u {
				return fmt.Errorf("spelling %q normalizes to %q, want %q", sp, got, u)
			}
		}
	}
	return nil
}

// checkRecipes verifies the embedded catalog loads and is not empty.
func checkRecipes(ctx context.Context) error {
	names, err := recipe.Names(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return errors.New("recipe catalog is empty")
	}
	return nil
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version
	cfg.Handlers = Routes(cfg)
	cfg.Checks = Checks()

	s := server.New(server.WithConfig(cfg))

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
