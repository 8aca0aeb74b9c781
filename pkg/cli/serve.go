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

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/gemini-gateway/pkg/api"
	"github.com/mchmarny/gemini-gateway/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the API server (default)",
		Description: `Start the HTTP server exposing:
  - GET  /                 static readiness message
  - GET  /items/{item_id}  item lookup
  - POST /generate         prompt forwarding to Gemini

GEMINI_API_KEY must be set in the environment or the env file; the server
does not start without it.`,
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []server.Option{
		server.WithPort(int(cmd.Int(flagPort))),
	}
	if addr := cmd.String(flagAddress); addr != "" {
		opts = append(opts, server.WithAddress(addr))
	}

	return api.Serve(ctx, cfg, opts...)
}
