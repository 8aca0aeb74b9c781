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

// Package api wires the gateway together and runs its HTTP server.
//
// Serve takes a loaded configuration, builds the Gemini client once, and
// registers the application routes on a pkg/server instance:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatalf("config error: %v", err)
//	}
//	if err := api.Serve(ctx, cfg); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Application endpoints (with request id, recovery and logging middleware):
//   - GET /                - Static readiness message
//   - GET /items/{item_id} - Item lookup with optional query_param
//   - POST /generate       - Forward a prompt to Gemini and return its text
//
// System endpoints:
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
//   - GEMINI_API_KEY: Gemini credential (required)
//   - GEMINI_MODEL: model identifier (default: gemini-2.5-flash)
//   - GEMINI_TIMEOUT: upstream call timeout (default: 60s)
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/gemini-gateway/pkg/api.version=1.0.0'"
package api
