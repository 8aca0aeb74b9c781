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

// Package cli implements the gatewayd command-line interface.
//
// # Commands
//
// serve (default) - Run the HTTP API server:
//
//	gatewayd [serve] [--port 8080] [--address 127.0.0.1] [--env-file .env]
//
// Loads GEMINI_API_KEY (from the environment, or the env file when the
// variable is not already set) and exits non-zero when it is missing.
//
// generate - Send a single prompt:
//
//	gatewayd generate --prompt "hello" [--format json|yaml] [--output result.yaml]
//
// Writes {"text": ...} on success or {"error": ...} on failure, in which
// case the command exits non-zero.
//
// # Global Flags
//
//	--log-level   Logging verbosity (debug, info, warn, error)
//	--env-file    Dotenv file to load (default: .env)
//	--model       Gemini model identifier
//	--timeout     Upstream call timeout (e.g. 45s)
//	--address     Listen address
//	--port        Listen port (default: 8080)
//
// # Environment Variables
//
//	GEMINI_API_KEY   Gemini credential (required)
//	GEMINI_MODEL     Model identifier (default: gemini-2.5-flash)
//	GEMINI_TIMEOUT   Upstream call timeout (default: 60s)
//	PORT             Listen port
//	LOG_LEVEL        Logging verbosity
//
// # Exit Codes
//
//	0  Success
//	1  Configuration error, server failure, or failed generation
package cli
