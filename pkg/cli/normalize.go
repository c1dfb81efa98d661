/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/ingredi/pkg/defaults"
	"github.com/NVIDIA/ingredi/pkg/header"
	"github.com/NVIDIA/ingredi/pkg/units"
)

func normalizeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "normalize",
		EnableShellCompletion: true,
		Usage:                 "Map unit spellings to canonical units",
		ArgsUsage:             "UNIT...",
		Description: `Normalize each argument to its canonical unit (tsp, tbsp, oz, c, pt, qt,
gal, lb, stick). Spellings that are not measurement units are returned
cleaned but otherwise unchanged.

# Examples

  ingredi normalize Tablespoons "fl. oz" cups
  ingredi normalize -t text T t`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := cmd.Args().Slice()
			if len(raw) == 0 {
				return fmt.Errorf("at least one unit is required")
			}
			if len(raw) > defaults.MaxBulkRequests {
				return fmt.Errorf("too many units: %d, max %d", len(raw), defaults.MaxBulkRequests)
			}

			res := &units.NormalizeResult{Units: units.NormalizeAll(raw)}
			res.Init(header.KindNormalizeResult, header.APIVersion, version)

			return writeOutput(ctx, cmd, res)
		},
	}
}
