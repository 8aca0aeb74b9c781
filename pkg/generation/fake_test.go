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
	"sync/atomic"
)

// fakeGenerator records calls and returns canned output.
type fakeGenerator struct {
	text   string
	err    error
	panicV any
	calls  atomic.Int32
	prompt string
	ctxErr func(ctx context.Context) error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.prompt = prompt
	if f.panicV != nil {
		panic(f.panicV)
	}
	if f.ctxErr != nil {
		if err := f.ctxErr(ctx); err != nil {
			return "", err
		}
	}
	return f.text, f.err
}
