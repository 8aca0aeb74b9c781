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

// Package config loads the gateway's process configuration.
//
// The Gemini API key is read once from GEMINI_API_KEY. During development
// the variable may be supplied through a dotenv file (default ".env");
// values already present in the environment always win. A missing key is
// a CONFIGURATION error and callers must not start serving.
//
//	cfg, err := config.Load(config.WithEnvFile(".env"))
//	if err != nil {
//	    return err
//	}
package config
