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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mchmarny/gemini-gateway/pkg/defaults"
	gwerrors "github.com/mchmarny/gemini-gateway/pkg/errors"
)

const (
	// EnvAPIKey holds the Gemini API credential.
	EnvAPIKey = "GEMINI_API_KEY"
	// EnvModel overrides the generation model identifier.
	EnvModel = "GEMINI_MODEL"
	// EnvTimeout overrides the upstream call timeout (Go duration, e.g. "45s").
	EnvTimeout = "GEMINI_TIMEOUT"

	// DefaultEnvFile is the dotenv file consulted during development.
	DefaultEnvFile = ".env"
)

// Config is the immutable process configuration.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// LogValue implements slog.LogValuer so the API key never reaches the logs.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("apiKeySet", c.APIKey != ""),
		slog.String("model", c.Model),
		slog.Duration("timeout", c.Timeout),
	)
}

// Option customizes Load.
type Option func(*options)

type options struct {
	envFile string
	model   string
	timeout time.Duration
}

// WithEnvFile sets the dotenv file to load. Empty disables dotenv loading.
func WithEnvFile(path string) Option {
	return func(o *options) {
		o.envFile = path
	}
}

// WithModel overrides the model identifier when non-empty.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithTimeout overrides the upstream timeout when positive.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// Load reads the configuration from the environment, after optionally
// populating it from a dotenv file. It fails when the API key is absent.
func Load(opts ...Option) (*Config, error) {
	o := &options{envFile: DefaultEnvFile}
	for _, opt := range opts {
		opt(o)
	}

	if err := loadEnvFile(o.envFile); err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:  os.Getenv(EnvAPIKey),
		Model:   defaults.GeminiModel,
		Timeout: defaults.UpstreamGenerateTimeout,
	}

	if model := strings.TrimSpace(os.Getenv(EnvModel)); model != "" {
		cfg.Model = model
	}

	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, gwerrors.NewWithContext(gwerrors.ErrCodeConfiguration,
				fmt.Sprintf("%s must be a positive duration", EnvTimeout),
				map[string]any{"value": v})
		}
		cfg.Timeout = d
	}

	if o.model != "" {
		cfg.Model = o.model
	}
	if o.timeout > 0 {
		cfg.Timeout = o.timeout
	}

	if cfg.APIKey == "" {
		return nil, gwerrors.New(gwerrors.ErrCodeConfiguration,
			fmt.Sprintf("%s environment variable not set. Please create a %s file and add your key.",
				EnvAPIKey, DefaultEnvFile))
	}

	return cfg, nil
}

// loadEnvFile populates unset environment variables from path.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("env file not found, using process environment", "path", path)
			return nil
		}
		return gwerrors.WrapWithContext(gwerrors.ErrCodeConfiguration, "failed to load env file", err,
			map[string]any{"path": path})
	}

	slog.Debug("loaded env file", "path", path)
	return nil
}
