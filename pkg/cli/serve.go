/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/ingredi/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Description: `Start the ingredi HTTP API on the given port. The server shuts down
gracefully on SIGINT or SIGTERM.

# Examples

  ingredi serve --port 9090
  curl "localhost:9090/v1/rescale?text=1-2+c+flour&multiplier=2"`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Sources: cli.EnvVars("PORT"),
				Value:   8080,
				Usage:   "HTTP server port",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			// The server reads its port from the environment.
			if err := os.Setenv("PORT", strconv.Itoa(int(cmd.Int("port")))); err != nil {
				return fmt.Errorf("failed to set port: %w", err)
			}
			return api.Serve()
		},
	}
}
