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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResult_Success(t *testing.T) {
	res := Success("world")

	assert.True(t, res.OK())
	assert.Equal(t, "world", res.Text())
	assert.Empty(t, res.Message())
	assert.Equal(t, http.StatusOK, res.StatusCode())

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"world"}`, string(b))
}

func TestResult_Failure(t *testing.T) {
	res := Failure("quota exceeded")

	assert.False(t, res.OK())
	assert.Empty(t, res.Text())
	assert.Equal(t, "quota exceeded", res.Message())
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode())

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"quota exceeded"}`, string(b))
}

func TestResult_YAML(t *testing.T) {
	b, err := yaml.Marshal(Failure("boom"))
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, yaml.Unmarshal(b, &out))
	assert.Equal(t, map[string]string{"error": "boom"}, out)
}
