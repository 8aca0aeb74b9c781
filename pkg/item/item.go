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

package item

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	gwerrors "github.com/mchmarny/gemini-gateway/pkg/errors"
	"github.com/mchmarny/gemini-gateway/pkg/serializer"
	"github.com/mchmarny/gemini-gateway/pkg/server"
)

const (
	// PathParam is the path wildcard holding the item identifier.
	PathParam = "item_id"
	// QueryParam is the optional query parameter echoed back to the caller.
	QueryParam = "query_param"
	// Pattern is the ServeMux pattern the handler is registered under.
	Pattern = "GET /items/{" + PathParam + "}"
)

// Query is a parsed item lookup.
type Query struct {
	ItemID     int64
	QueryParam string
}

// Item is the lookup response.
type Item struct {
	ItemID      int64  `json:"item_id" yaml:"item_id"`
	Description string `json:"description" yaml:"description"`
	QueryParam  string `json:"query_param,omitempty" yaml:"query_param,omitempty"`
}

// Lookup builds the response for q. It has no side effects.
func Lookup(q Query) Item {
	return Item{
		ItemID:      q.ItemID,
		Description: fmt.Sprintf("This is item number %d", q.ItemID),
		QueryParam:  q.QueryParam,
	}
}

// ParseQuery extracts the lookup parameters from r.
func ParseQuery(r *http.Request) (Query, error) {
	raw := r.PathValue(PathParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Query{}, gwerrors.WrapWithContext(gwerrors.ErrCodeValidation,
			"Input should be a valid integer", err,
			map[string]any{
				"type":  "int_parsing",
				"loc":   []string{"path", PathParam},
				"input": raw,
			})
	}

	return Query{
		ItemID:     id,
		QueryParam: r.URL.Query().Get(QueryParam),
	}, nil
}

// Handle serves GET /items/{item_id}.
func Handle(w http.ResponseWriter, r *http.Request) {
	q, err := ParseQuery(r)
	if err != nil {
		slog.Debug("invalid item lookup", "error", err)
		server.WriteErrorFromErr(w, r, err, "Invalid item request", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, Lookup(q))
}
