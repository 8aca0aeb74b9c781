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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mchmarny/gemini-gateway/pkg/config"
	"github.com/mchmarny/gemini-gateway/pkg/defaults"
	gwerrors "github.com/mchmarny/gemini-gateway/pkg/errors"
	"github.com/mchmarny/gemini-gateway/pkg/generation"
	"github.com/mchmarny/gemini-gateway/pkg/item"
	"github.com/mchmarny/gemini-gateway/pkg/serializer"
	"github.com/mchmarny/gemini-gateway/pkg/server"
)

const (
	name           = "gatewayd"
	versionDefault = "dev"

	// RootMessage is returned by GET /.
	RootMessage = "Hello from FastAPI Backend! Gemini is ready."
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/gemini-gateway/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// RootResponse is the GET / body.
type RootResponse struct {
	Message string `json:"message"`
}

// HandleRoot serves GET /.
func HandleRoot(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, RootResponse{Message: RootMessage})
}

// Routes returns the application routes backed by gen.
func Routes(gen generation.Generator, timeout time.Duration) map[string]http.HandlerFunc {
	gh := generation.NewHandler(gen, generation.WithTimeout(timeout))

	return map[string]http.HandlerFunc{
		"GET /{$}":       HandleRoot,
		item.Pattern:     item.Handle,
		"POST /generate": gh.HandleGenerate,
	}
}

// writeTimeoutFor returns a server write timeout long enough for a
// generation handler to report an upstream timeout as a response.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	return max(defaults.ServerWriteTimeout, upstream+defaults.ResponseWriteMargin)
}

// Serve builds the Gemini client from cfg and runs the API server until
// ctx is canceled or a termination signal arrives. Bootstrap errors are
// returned before any listener is bound.
func Serve(ctx context.Context, cfg *config.Config, opts ...server.Option) error {
	if cfg == nil || cfg.APIKey == "" {
		return gwerrors.New(gwerrors.ErrCodeConfiguration, config.EnvAPIKey+" is not configured")
	}

	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"config", cfg,
	)

	gen, err := generation.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	slog.Info("Gemini API is configured successfully", "model", gen.Model())

	serverOpts := []server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithWriteTimeout(writeTimeoutFor(cfg.Timeout)),
		server.WithHandler(Routes(gen, cfg.Timeout)),
	}
	s := server.New(append(serverOpts, opts...)...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
