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

	"github.com/NVIDIA/ingredi/pkg/recipe"
	"github.com/NVIDIA/ingredi/pkg/serializer"
)

func recipeCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "recipe",
			Aliases: []string{"r"},
			Usage: `Path/URI to a recipe document to scale.
	Supports: file paths (.yaml, .yml, .json) or HTTP/HTTPS URLs.`,
		},
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "name of a built-in recipe (see --list)",
		},
		&cli.BoolFlag{
			Name:  "list",
			Usage: "list the built-in recipes",
		},
		&cli.IntFlag{
			Name:    "servings",
			Aliases: []string{"s"},
			Usage:   "number of servings wanted",
		},
		&cli.FloatFlag{
			Name:    "multiplier",
			Aliases: []string{"m"},
			Usage:   "factor applied to every amount",
		},
	}
	flags = append(flags, conversionFlags()...)
	flags = append(flags, outputFlag(), formatFlag())

	return &cli.Command{
		Name:                  "recipe",
		EnableShellCompletion: true,
		Usage:                 "Scale a whole recipe by servings or multiplier",
		Description: `Scale every ingredient of a recipe, and the measured amounts in its
steps, to a new number of servings or by a multiplier. The recipe is
either a built-in one (--name) or a document (--recipe):

  kind: Recipe
  apiVersion: ingredi.nvidia.com/v1alpha1
  name: biscuits
  servings: 8
  ingredients:
    - 2 cups (9 oz) flour
    - text: 8 tbsp cold butter
      flags: [butter]
  steps:
    - Cut the butter into the flour.

# Examples

  ingredi recipe --list
  ingredi recipe --name biscuits --servings 16 -t text
  ingredi recipe --recipe pancakes.yaml --multiplier 0.5`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("list") {
				names, err := recipe.Names(ctx)
				if err != nil {
					return fmt.Errorf("failed to list recipes: %w", err)
				}
				return writeOutput(ctx, cmd, &recipe.CatalogResult{Recipes: names})
			}

			rec, err := loadRecipe(ctx, cmd)
			if err != nil {
				return err
			}

			q, err := scaleRequestFromCmd(cmd)
			if err != nil {
				return err
			}

			scaler := recipe.NewScaler(recipe.WithVersion(version))
			res, err := scaler.Scale(ctx, rec, *q)
			if err != nil {
				return fmt.Errorf("failed to scale recipe %q: %w", rec.Name, err)
			}

			slog.Debug("scaled recipe",
				"name", res.Name,
				"servings", res.Servings,
				"multiplier", res.Multiplier)

			return writeOutput(ctx, cmd, res)
		},
	}
}

// loadRecipe reads the recipe named by --recipe or --name.
func loadRecipe(ctx context.Context, cmd *cli.Command) (*recipe.Recipe, error) {
	path := cmd.String("recipe")
	name := cmd.String("name")

	switch {
	case path != "" && name != "":
		return nil, fmt.Errorf("--recipe and --name are mutually exclusive")
	case path != "":
		slog.Debug("loading recipe", "uri", path)
		rec, err := serializer.FromFile[recipe.Recipe](ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipe from %q: %w", path, err)
		}
		return rec, nil
	case name != "":
		rec, err := recipe.Lookup(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to find recipe %q: %w", name, err)
		}
		return rec, nil
	default:
		return nil, fmt.Errorf("--recipe or --name is required")
	}
}

// scaleRequestFromCmd builds the scaling request from the command flags.
func scaleRequestFromCmd(cmd *cli.Command) (*recipe.Request, error) {
	opts, err := optionsFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	q := &recipe.Request{
		Servings: int(cmd.Int("servings")),
		Flags:    opts.Flags,
		Type:     opts.Type,
		Format:   opts.Format,
	}
	if cmd.IsSet("multiplier") {
		m := cmd.Float("multiplier")
		q.Multiplier = &m
	}
	return q, nil
}
