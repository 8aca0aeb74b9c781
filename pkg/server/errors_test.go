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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gwerrors "github.com/mchmarny/gemini-gateway/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code gwerrors.ErrorCode
		want int
	}{
		{"invalid request", gwerrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"validation", gwerrors.ErrCodeValidation, http.StatusUnprocessableEntity},
		{"not found", gwerrors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", gwerrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"unavailable", gwerrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", gwerrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"upstream", gwerrors.ErrCodeUpstream, http.StatusInternalServerError},
		{"configuration", gwerrors.ErrCodeConfiguration, http.StatusInternalServerError},
		{"internal", gwerrors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", gwerrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code gwerrors.ErrorCode
		want bool
	}{
		{"invalid request", gwerrors.ErrCodeInvalidRequest, false},
		{"validation", gwerrors.ErrCodeValidation, false},
		{"not found", gwerrors.ErrCodeNotFound, false},
		{"configuration", gwerrors.ErrCodeConfiguration, false},
		{"timeout", gwerrors.ErrCodeTimeout, true},
		{"unavailable", gwerrors.ErrCodeUnavailable, true},
		{"upstream", gwerrors.ErrCodeUpstream, true},
		{"internal", gwerrors.ErrCodeInternal, true},
		{"unknown defaults false", gwerrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("merges and second overwrites", func(t *testing.T) {
		a := map[string]any{"a": 1, "shared": "old"}
		b := map[string]any{"b": 2, "shared": "new"}

		got := mergeDetails(a, b)
		if got["a"].(int) != 1 || got["b"].(int) != 2 {
			t.Fatalf("expected a=1 b=2, got %#v", got)
		}
		if got["shared"].(string) != "new" {
			t.Fatalf("expected shared to be overwritten to 'new', got %#v", got["shared"])
		}
	})
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusUnprocessableEntity, gwerrors.ErrCodeValidation, "bad input", false, map[string]any{"k": "v"})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(gwerrors.ErrCodeValidation) {
		t.Fatalf("expected code %q, got %q", gwerrors.ErrCodeValidation, resp.Code)
	}
	if resp.Message != "bad input" {
		t.Fatalf("expected message %q, got %q", "bad input", resp.Message)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatalf("expected retryable=false, got true")
	}
	if resp.Details == nil || resp.Details["k"].(string) != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusNotFound, gwerrors.ErrCodeNotFound, "missing", false, nil)

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.RequestID == "" {
		t.Fatal("expected a generated request id")
	}
}

func TestWriteErrorFromErr_StructuredErrorMapsStatusAndDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	cause := errors.New("connection refused")
	err := gwerrors.WrapWithContext(gwerrors.ErrCodeUnavailable, "upstream unavailable", cause, map[string]any{"component": "gemini"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}

	if resp.Code != string(gwerrors.ErrCodeUnavailable) {
		t.Fatalf("expected code %q, got %q", gwerrors.ErrCodeUnavailable, resp.Code)
	}
	if resp.Message != "upstream unavailable" {
		t.Fatalf("expected message %q, got %q", "upstream unavailable", resp.Message)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details["component"].(string) != "gemini" {
		t.Fatalf("expected component=gemini, got %#v", resp.Details["component"])
	}
	if resp.Details["extra"].(string) != "yes" {
		t.Fatalf("expected extra=yes, got %#v", resp.Details["extra"])
	}
	if resp.Details["error"].(string) != "connection refused" {
		t.Fatalf("expected error cause propagated, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, errors.New("boom"), "fallback", map[string]any{"x": "y"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(gwerrors.ErrCodeInternal) {
		t.Fatalf("expected code %q, got %q", gwerrors.ErrCodeInternal, resp.Code)
	}
	if resp.Message != "fallback" {
		t.Fatalf("expected fallback message, got %q", resp.Message)
	}
	if resp.Details["x"].(string) != "y" || resp.Details["error"].(string) != "boom" {
		t.Fatalf("unexpected details %#v", resp.Details)
	}
}
