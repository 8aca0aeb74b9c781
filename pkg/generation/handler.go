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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mchmarny/gemini-gateway/pkg/defaults"
	gwerrors "github.com/mchmarny/gemini-gateway/pkg/errors"
	"github.com/mchmarny/gemini-gateway/pkg/serializer"
	"github.com/mchmarny/gemini-gateway/pkg/server"
)

// Request is a validated POST /generate body.
type Request struct {
	Prompt string `json:"prompt" yaml:"prompt"`
}

// requestBody keeps prompt raw so an explicit null can be told apart
// from an absent field.
type requestBody struct {
	Prompt json.RawMessage `json:"prompt"`
}

// Handler serves content generation requests.
type Handler struct {
	gen     Generator
	timeout time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithTimeout bounds each upstream call. Non-positive values are ignored.
func WithTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHandler returns a Handler that generates content with gen.
func NewHandler(gen Generator, opts ...HandlerOption) *Handler {
	h := &Handler{
		gen:     gen,
		timeout: defaults.UpstreamGenerateTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleGenerate handles POST /generate.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(w, r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid generation request", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res := Generate(ctx, h.gen, req.Prompt)
	if !res.OK() {
		slog.Warn("content generation failed",
			"requestID", server.RequestIDFromContext(r.Context()),
			"code", failureCode(ctx),
			"error", res.Message(),
		)
	}

	serializer.RespondJSON(w, res.StatusCode(), res)
}

// failureCode classifies a failed upstream call for logging.
func failureCode(ctx context.Context) gwerrors.ErrorCode {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return gwerrors.ErrCodeTimeout
	}
	return gwerrors.ErrCodeUpstream
}

// parseRequest decodes and validates the request body.
func parseRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return Request{}, validationError("Request body too large", "body_too_large", nil,
				map[string]any{"limit": maxErr.Limit})
		}
		return Request{}, validationError("Request body could not be read", "body_unreadable", nil, nil)
	}

	if len(raw) == 0 {
		return Request{}, validationError("Field required", "missing", []string{"body"}, nil)
	}

	var body requestBody
	if err := json.Unmarshal(raw, &body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Request{}, validationError("Input should be a valid JSON object", "model_attributes_type",
				[]string{"body"}, nil)
		}
		return Request{}, validationError("JSON decode error", "json_invalid", []string{"body"},
			map[string]any{"error": err.Error()})
	}

	if len(body.Prompt) == 0 {
		return Request{}, validationError("Field required", "missing", []string{"body", "prompt"}, nil)
	}

	var req Request
	if bytes.Equal(body.Prompt, []byte("null")) || json.Unmarshal(body.Prompt, &req.Prompt) != nil {
		return Request{}, validationError("Input should be a valid string", "string_type",
			[]string{"body", "prompt"}, nil)
	}
	if req.Prompt == "" {
		return Request{}, validationError("String should have at least 1 character", "string_too_short",
			[]string{"body", "prompt"}, nil)
	}

	return req, nil
}

func validationError(msg, kind string, loc []string, extra map[string]any) error {
	details := map[string]any{"type": kind}
	if loc != nil {
		details["loc"] = loc
	}
	for k, v := range extra {
		details[k] = v
	}
	return gwerrors.NewWithContext(gwerrors.ErrCodeValidation, msg, details)
}
