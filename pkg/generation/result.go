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
	"encoding/json"
	"net/http"
)

// Result is the outcome of a generation call: either a success with the
// generated text or a failure with a message, never both.
type Result struct {
	ok      bool
	text    string
	message string
}

// Success returns a successful Result carrying text.
func Success(text string) Result {
	return Result{ok: true, text: text}
}

// Failure returns a failed Result carrying message.
func Failure(message string) Result {
	return Result{message: message}
}

// OK reports whether the result is a success.
func (r Result) OK() bool { return r.ok }

// Text returns the generated text of a successful result.
func (r Result) Text() string { return r.text }

// Message returns the error message of a failed result.
func (r Result) Message() string { return r.message }

// StatusCode returns the HTTP status the result is served with.
func (r Result) StatusCode() int {
	if r.ok {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

type successBody struct {
	Text string `json:"text" yaml:"text"`
}

type failureBody struct {
	Error string `json:"error" yaml:"error"`
}

func (r Result) body() any {
	if r.ok {
		return successBody{Text: r.text}
	}
	return failureBody{Error: r.message}
}

// MarshalJSON renders {"text": ...} or {"error": ...}.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.body())
}

// MarshalYAML renders the same shape as MarshalJSON.
func (r Result) MarshalYAML() (any, error) {
	return r.body(), nil
}
