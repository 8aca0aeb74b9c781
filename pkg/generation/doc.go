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

// Package generation forwards prompts to the Gemini generative-language API.
//
// The upstream is reached through the Generator interface; GeminiClient is
// the production implementation built on google.golang.org/genai. Generate
// is the boundary that turns every upstream outcome, including panics, into
// a Result that is either a success carrying text or a failure carrying a
// message:
//
//	res := generation.Generate(ctx, client, "hello")
//	if !res.OK() {
//	    // res.Message() holds the upstream error
//	}
//
// Handler serves POST /generate:
//
//	200 {"text": "..."}     upstream returned text
//	422 structured error    body missing, malformed, or prompt not a non-empty string
//	500 {"error": "..."}    any upstream failure
package generation
