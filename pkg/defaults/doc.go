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

// Package defaults provides centralized configuration constants for the gateway.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values keeps the server, the
// handlers, and the upstream client consistent with each other.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Upstream timeouts: For calls to the generative-language API
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound HTTP connections
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/mchmarny/gemini-gateway/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.UpstreamGenerateTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// The upstream timeout must stay below the handler timeout, and the handler
// timeout below the server write timeout, so that a stalled upstream call
// surfaces as an error response instead of a dropped connection.
package defaults
