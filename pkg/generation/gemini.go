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
	"fmt"
	"net"
	"net/http"

	"github.com/mchmarny/gemini-gateway/pkg/defaults"
	gwerrors "github.com/mchmarny/gemini-gateway/pkg/errors"
	"google.golang.org/genai"
)

// GeminiClient implements Generator with the Gemini API.
// It is safe for concurrent use and is meant to be built once per process.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// ClientOption configures a GeminiClient.
type ClientOption func(*genai.ClientConfig)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *genai.ClientConfig) {
		c.HTTPOptions.BaseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *genai.ClientConfig) {
		c.HTTPClient = hc
	}
}

// NewGeminiClient builds a client for model authorized by apiKey.
func NewGeminiClient(ctx context.Context, apiKey, model string, opts ...ClientOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, gwerrors.New(gwerrors.ErrCodeConfiguration, "gemini api key is empty")
	}
	if model == "" {
		model = defaults.GeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: newHTTPClient(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeConfiguration, "failed to create gemini client", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Model returns the model identifier used for generation.
func (c *GeminiClient) Model() string {
	return c.model
}

// Generate sends prompt verbatim to the model and returns the response text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
			return "", fmt.Errorf("%w (finish reason: %s)", ErrEmptyResponse, resp.Candidates[0].FinishReason)
		}
		return "", ErrEmptyResponse
	}

	return text, nil
}

// newHTTPClient bounds connection setup; the overall call is bounded by
// the caller's context.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   defaults.HTTPConnectTimeout,
				KeepAlive: defaults.HTTPKeepAlive,
			}).DialContext,
			TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
			ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
			IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			ForceAttemptHTTP2:     true,
		},
	}
}
