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

package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeBody decodes an HTTP request body into v according to contentType.
// YAML media types are decoded as YAML; everything else is decoded as JSON.
func DecodeBody(body io.Reader, contentType string, v any) error {
	if body == nil {
		return fmt.Errorf("request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("request body is empty")
	}

	switch mediaType(contentType) {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML body: %w", err)
		}
	case "application/json", "":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON body: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("unsupported content type %q and failed to parse as JSON: %w", contentType, err)
		}
	}
	return nil
}

// mediaType strips parameters such as charset from a Content-Type value.
func mediaType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	return ct
}
