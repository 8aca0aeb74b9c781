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

package generation

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Generator produces text for a prompt using an upstream model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyResponse is returned when the upstream produced no text.
var ErrEmptyResponse = errors.New("model returned no text")

// Generate calls gen and converts its outcome into a Result. Errors,
// panics, and empty text all become a Failure; nothing escapes as an error.
func Generate(ctx context.Context, gen Generator, prompt string) (res Result) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = Failure(fmt.Sprintf("generation panicked: %v", p))
		}
		observe(res, time.Since(start))
	}()

	if gen == nil {
		return Failure("generator is not configured")
	}

	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		return Failure(err.Error())
	}
	if text == "" {
		return Failure(ErrEmptyResponse.Error())
	}

	return Success(text)
}
