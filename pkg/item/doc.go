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

// Package item serves the item lookup endpoint.
//
// GET /items/{item_id} echoes the integer identifier with a generated
// description, plus the optional query_param query value when it is
// non-empty:
//
//	curl "http://localhost:8080/items/5?query_param=abc"
//	{"item_id":5,"description":"This is item number 5","query_param":"abc"}
//
// A non-integer identifier is rejected with 422 and a structured error
// whose details name the path location.
package item
