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

// Package server provides the HTTP server shared by gateway binaries.
//
// The server owns the listener lifecycle and the cross-cutting concerns;
// route handlers are supplied by the caller:
//
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Request logging at debug level
//   - Prometheus RED metrics
//   - Graceful shutdown on SIGINT/SIGTERM
//   - Health and readiness probes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("gatewayd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /items/{item_id}": item.Handle,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handler keys are net/http ServeMux patterns, so they may carry a method
// and path wildcards. A method mismatch on a known path yields 405; paths
// without a handler, the root included, yield 404.
//
// # System Endpoints
//
// These are registered without the middleware chain:
//
//	GET /health  - liveness, always 200
//	GET /ready   - readiness, 200 when serving, 503 while starting or draining
//	GET /metrics - Prometheus exposition
//
// # Error Handling
//
// Errors written through WriteError share one JSON structure:
//
//	{
//	  "code": "VALIDATION_FAILED",
//	  "message": "item_id must be an integer",
//	  "details": {"loc": ["path", "item_id"], "input": "abc"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// # Configuration
//
// PORT overrides the listening port and SHUTDOWN_TIMEOUT_SECONDS the
// graceful shutdown window.
package server
