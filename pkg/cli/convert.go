/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/ingredi/pkg/convert"
	"github.com/NVIDIA/ingredi/pkg/header"
)

func convertCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "to",
			Usage: "target unit; empty selects the most legible unit",
		},
	}
	flags = append(flags, conversionFlags()...)
	flags = append(flags, outputFlag(), formatFlag())

	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Convert one amount to the most legible unit",
		ArgsUsage:             "AMOUNT UNIT",
		Description: `Convert a single amount. The last argument is the unit and everything
before it is the amount, so mixed numbers need no quoting.

# Examples

  ingredi convert 9 oz --flag flour
  ingredi convert 1 1/2 cups --to tbsp --amount-format fraction
  ingredi convert 3 tsp -t text`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				return fmt.Errorf("amount and unit are required")
			}

			opts, err := optionsFromCmd(cmd)
			if err != nil {
				return err
			}

			req := &convert.Request{
				Amount:  strings.Join(args[:len(args)-1], " "),
				Unit:    args[len(args)-1],
				Options: *opts,
			}
			res, err := req.Do()
			if err != nil {
				return fmt.Errorf("failed to convert %q %q: %w", req.Amount, req.Unit, err)
			}

			resp := &convert.Response{Request: req, Result: res}
			resp.Init(header.KindConversionResult, header.APIVersion, version)

			return writeOutput(ctx, cmd, resp)
		},
	}
}
