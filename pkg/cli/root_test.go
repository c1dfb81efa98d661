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

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/urfave/cli/v3"

	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:       "valid text format",
			format:     "text",
			wantFormat: serializer.FormatText,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func hasName(flag cli.Flag, name string) bool {
	return slices.Contains(flag.Names(), name)
}

func TestCommands_Structure(t *testing.T) {
	root := newRootCmd()

	want := []string{"normalize", "parse", "convert", "rescale", "recipe", "serve"}
	if len(root.Commands) != len(want) {
		t.Fatalf("got %d commands, want %d", len(root.Commands), len(want))
	}

	for i, cmd := range root.Commands {
		t.Run(cmd.Name, func(t *testing.T) {
			if cmd.Name != want[i] {
				t.Errorf("Name = %v, want %v", cmd.Name, want[i])
			}
			if cmd.Usage == "" {
				t.Error("Usage should not be empty")
			}
			if cmd.Description == "" {
				t.Error("Description should not be empty")
			}
			if cmd.Action == nil {
				t.Error("Action should not be nil")
			}
			if cmd.Name == "serve" {
				return
			}
			for _, flagName := range []string{"output", "format"} {
				found := false
				for _, flag := range cmd.Flags {
					if hasName(flag, flagName) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("required flag %q not found", flagName)
				}
			}
		})
	}
}

func TestCommandLister(t *testing.T) {
	commandLister(context.Background(), nil)

	var out bytes.Buffer
	rootCmd := &cli.Command{
		Name:   "root",
		Writer: &out,
		Commands: []*cli.Command{
			{Name: "visible1", Hidden: false},
			{Name: "hidden", Hidden: true},
			{Name: "visible2", Hidden: false},
		},
	}
	commandLister(context.Background(), rootCmd)

	if got, want := out.String(), "visible1\nvisible2\n"; got != want {
		t.Errorf("commandLister() wrote %q, want %q", got, want)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain error", errors.New("boom"), 1},
		{"invalid request", cnserrors.New(cnserrors.ErrCodeInvalidRequest, "bad"), 1},
		{"canceled", fmt.Errorf("scale: %w", context.Canceled), 2},
		{"deadline", context.DeadlineExceeded, 2},
		{"timeout code", cnserrors.New(cnserrors.ErrCodeTimeout, "too slow"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
