/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/ingredi/pkg/convert"
	"github.com/NVIDIA/ingredi/pkg/defaults"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/logging"
	"github.com/NVIDIA/ingredi/pkg/serializer"
)

const (
	name           = "ingredi"
	versionDefault = "dev"
	envPrefix      = "INGREDI_"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Sources: cli.EnvVars(envPrefix + "OUTPUT"),
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars(envPrefix + "FORMAT"),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "read text from a file, an http(s) URL, or - for stdin",
	}
}

// conversionFlags are the flags that shape how amounts are converted.
func conversionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "flag",
			Usage: "ingredient hint, repeatable (e.g. butter, flour, rye, liquor)",
		},
		&cli.StringFlag{
			Name:  "type",
			Usage: fmt.Sprintf("conversion table for oz (supported values: %s)", convert.SupportedFamilies()),
		},
		&cli.StringFlag{
			Name:    "amount-format",
			Sources: cli.EnvVars(envPrefix + "AMOUNT_FORMAT"),
			Usage:   "amount rendering (fraction, decimal, auto)",
		},
	}
}

// newRootCmd builds the ingredi command tree.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Usage:                 "Parse, convert and rescale recipe ingredient amounts",
		Description: fmt.Sprintf(`ingredi - recipe amount tooling

Version: %s
Commit:  %s
Built:   %s

normalize - map unit spellings to canonical units
parse     - extract amounts and units from text
convert   - convert one amount to the most legible unit
rescale   - multiply every amount in text
recipe    - scale a whole recipe by servings or multiplier
serve     - run the HTTP API`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars(envPrefix+"LOG_LEVEL", logging.EnvVarLogLevel),
				Usage:   "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			normalizeCmd(),
			parseCmd(),
			convertCmd(),
			rescaleCmd(),
			recipeCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		cnserrors.CodeOf(err) == cnserrors.ErrCodeTimeout {
		return 2
	}
	return 1
}

// initLogger configures slog once flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	w := cmd.Writer
	if w == nil {
		w = os.Stdout
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}

// parseOutputFormat reads and checks the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// writeOutput serializes v to --output, or to the root command's writer.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var ser *serializer.Writer
	if path := cmd.String("output"); path != "" {
		ser = serializer.NewFileWriterOrStdout(outFormat, path)
	} else {
		ser = serializer.NewWriter(outFormat, rootWriter(cmd))
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}

func rootWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// readText returns the command's text from --input or its arguments.
func readText(ctx context.Context, cmd *cli.Command) (string, error) {
	in := cmd.String("input")
	if in == "" {
		return strings.Join(cmd.Args().Slice(), " "), nil
	}
	if cmd.NArg() > 0 {
		return "", fmt.Errorf("text arguments and --input are mutually exclusive")
	}

	var (
		data []byte
		err  error
	)
	switch {
	case in == "-":
		r := cmd.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		data, err = io.ReadAll(io.LimitReader(r, int64(defaults.MaxTextLength)+1))
	case strings.HasPrefix(in, "http://") || strings.HasPrefix(in, "https://"):
		data, err = serializer.NewHttpReader().ReadWithContext(ctx, in)
	default:
		data, err = os.ReadFile(in)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input %q: %w", in, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// optionsFromCmd reads the conversion flags into convert.Options, checked
// the same way as the HTTP query parameters.
func optionsFromCmd(cmd *cli.Command) (*convert.Options, error) {
	values := url.Values{
		"to":     {cmd.String("to")},
		"type":   {cmd.String("type")},
		"format": {cmd.String("amount-format")},
		"flag":   cmd.StringSlice("flag"),
	}
	opts, err := convert.ParseOptionsFromValues(values)
	if err != nil {
		return nil, fmt.Errorf("invalid conversion options: %w", err)
	}
	return opts, nil
}
