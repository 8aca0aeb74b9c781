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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/gemini-gateway/pkg/config"
	"github.com/mchmarny/gemini-gateway/pkg/defaults"
	"github.com/mchmarny/gemini-gateway/pkg/logging"
	"github.com/mchmarny/gemini-gateway/pkg/serializer"
)

const (
	flagLogLevel = "log-level"
	flagEnvFile  = "env-file"
	flagModel    = "model"
	flagTimeout  = "timeout"
	flagAddress  = "address"
	flagPort     = "port"
	flagPrompt   = "prompt"
	flagOutput   = "output"
	flagFormat   = "format"

	defaultPort = 8080
)

// Flags are built per command so repeated runs do not share parsed state.

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagLogLevel,
			Value:   "info",
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvVarLogLevel),
		},
		&cli.StringFlag{
			Name:  flagEnvFile,
			Value: config.DefaultEnvFile,
			Usage: "dotenv file loaded before reading the environment (missing file is ignored, empty disables)",
		},
		&cli.StringFlag{
			Name:  flagModel,
			Usage: fmt.Sprintf("Gemini model identifier (default: $%s or %s)", config.EnvModel, defaults.GeminiModel),
		},
		&cli.DurationFlag{
			Name: flagTimeout,
			Usage: fmt.Sprintf("upstream call timeout (default: $%s or %s; generate caps non-flag values at %s)",
				config.EnvTimeout, defaults.UpstreamGenerateTimeout, defaults.CLIGenerateTimeout),
		},
		&cli.StringFlag{
			Name:  flagAddress,
			Usage: "address to listen on (default: all interfaces)",
		},
		&cli.IntFlag{
			Name:    flagPort,
			Value:   defaultPort,
			Usage:   "port to listen on",
			Sources: cli.EnvVars("PORT"),
		},
	}
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     flagPrompt,
			Aliases:  []string{"p"},
			Usage:    "prompt text sent verbatim to the model",
			Required: true,
		},
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage:   "output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"t"},
			Value:   string(serializer.FormatJSON),
			Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
		},
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String(flagFormat))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}
