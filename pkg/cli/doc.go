// Package cli implements the command-line interface for the ingredi tool.
//
// # Overview
//
// The ingredi CLI parses ingredient amounts out of free text, converts them
// to the most legible unit, and rescales single lines, whole texts or entire
// recipes. Every command shares the libraries behind the HTTP API, so the
// CLI and the service produce the same documents.
//
// # Commands
//
// normalize - Map unit spellings to canonical units:
//
//	ingredi normalize Tablespoons "fl. oz" cups
//
// parse - Extract amounts from text:
//
//	ingredi parse "1 onion (about 2 c diced)"
//
// convert - Convert one amount:
//
//	ingredi convert 9 oz --flag flour
//
// rescale - Multiply every amount in text:
//
//	ingredi rescale -m 2 -t text "1-2 c flour"
//
// recipe - Scale a built-in or file recipe:
//
//	ingredi recipe --name biscuits --servings 16
//
// serve - Run the HTTP API:
//
//	ingredi serve --port 8080
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table, text (default: yaml)
//
// The text format prints the plain result (rescaled text, converted amount,
// scaled recipe) and falls back to the table layout for other documents.
//
// # Environment Variables
//
//	INGREDI_LOG_LEVEL      Same as --log-level (LOG_LEVEL is also honored)
//	INGREDI_OUTPUT         Same as --output
//	INGREDI_FORMAT         Same as --format
//	INGREDI_AMOUNT_FORMAT  Same as --amount-format
//	PORT                   Same as serve --port
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to:
//   - pkg/units - Unit normalization
//   - pkg/parser - Amount extraction
//   - pkg/convert - Unit conversion
//   - pkg/rescale - Text rescaling
//   - pkg/recipe - Recipe scaling and the built-in catalog
//   - pkg/serializer - Input loading and output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/ingredi/pkg/cli.version=1.0.0'"
package cli
