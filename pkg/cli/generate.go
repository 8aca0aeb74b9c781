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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/gemini-gateway/pkg/config"
	"github.com/mchmarny/gemini-gateway/pkg/defaults"
	"github.com/mchmarny/gemini-gateway/pkg/generation"
	"github.com/mchmarny/gemini-gateway/pkg/serializer"
)

// newGenerator builds the upstream client; replaced in tests.
var newGenerator = func(ctx context.Context, cfg *config.Config) (generation.Generator, error) {
	return generation.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Send a single prompt to Gemini and print the result",
		Description: `Send one prompt through the same path the /generate endpoint uses and
write {"text": ...} or {"error": ...} in JSON or YAML.

The command exits non-zero when generation fails.`,
		Flags:  generateFlags(),
		Action: runGenerate,
	}
}

// generateTimeout returns the deadline for a one-shot call. An explicit
// --timeout is used as given; otherwise the configured timeout is capped
// at defaults.CLIGenerateTimeout.
func generateTimeout(cmd *cli.Command, cfg *config.Config) time.Duration {
	if cmd.IsSet(flagTimeout) {
		return cfg.Timeout
	}
	return min(cfg.Timeout, defaults.CLIGenerateTimeout)
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	prompt := cmd.String(flagPrompt)
	if prompt == "" {
		return fmt.Errorf("--%s must not be empty", flagPrompt)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout(cmd, cfg))
	defer cancel()

	res := generation.Generate(ctx, gen, prompt)

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String(flagOutput))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, res); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if !res.OK() {
		return fmt.Errorf("generation failed: %s", res.Message())
	}
	return nil
}
