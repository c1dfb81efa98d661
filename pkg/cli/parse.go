/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/ingredi/pkg/parser"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Extract amounts and units from text",
		ArgsUsage:             "[TEXT...]",
		Description: `Find every amount in free text: whole numbers, decimals, fractions,
mixed numbers, unicode fraction symbols and ranges, each with the unit
that follows it.

# Examples

  ingredi parse "1 onion (about 2 c diced)"
  ingredi parse --input recipe.txt -t table`,
		Flags: []cli.Flag{
			inputFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text, err := readText(ctx, cmd)
			if err != nil {
				return err
			}
			if err := parser.ValidateText(text); err != nil {
				return fmt.Errorf("invalid text: %w", err)
			}

			res := parser.NewResult(text, version)
			slog.Debug("parsed text", "amounts", len(res.Amounts))

			return writeOutput(ctx, cmd, res)
		},
	}
}
