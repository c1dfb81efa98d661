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

	"github.com/NVIDIA/ingredi/pkg/header"
	"github.com/NVIDIA/ingredi/pkg/rescale"
)

func rescaleCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.FloatFlag{
			Name:     "multiplier",
			Aliases:  []string{"m"},
			Required: true,
			Usage:    "factor applied to every amount (must be > 0)",
		},
		inputFlag(),
	}
	flags = append(flags, conversionFlags()...)
	flags = append(flags, outputFlag(), formatFlag())

	return &cli.Command{
		Name:                  "rescale",
		EnableShellCompletion: true,
		Usage:                 "Multiply every amount in text",
		ArgsUsage:             "[TEXT...]",
		Description: `Multiply every amount found in the text, convert each to the most
legible unit and print the rewritten text. Ranges scale both sides.

# Examples

  ingredi rescale -m 2 -t text "1-2 c flour"
  ingredi rescale -m 0.5 --flag flour --input biscuits.txt`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text, err := readText(ctx, cmd)
			if err != nil {
				return err
			}
			opts, err := optionsFromCmd(cmd)
			if err != nil {
				return err
			}

			m := cmd.Float("multiplier")
			req := &rescale.Request{Text: text, Multiplier: &m, Options: *opts}
			resp, err := req.Do(ctx)
			if err != nil {
				return fmt.Errorf("failed to rescale: %w", err)
			}
			resp.Init(header.KindRescaleResult, header.APIVersion, version)

			slog.Debug("rescaled text",
				"multiplier", m,
				"replacements", len(resp.Result.Replacements),
				"diagnostics", len(resp.Result.Diagnostics))

			return writeOutput(ctx, cmd, resp)
		},
	}
}
