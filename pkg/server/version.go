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
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is used when neither the path nor the Accept header
	// names a supported version.
	DefaultAPIVersion = "v1"

	vendorMediaPrefix = "application/vnd.nvidia.ingredi."
)

var apiVersions = map[string]bool{
	"v1": true,
}

// negotiateAPIVersion picks the API version of r. A versioned route such as
// /v1/rescale wins; otherwise the first Accept entry of the form
// application/vnd.nvidia.ingredi.v1+json naming a supported version is used.
func negotiateAPIVersion(r *http.Request) string {
	seg, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if apiVersions[seg] {
		return seg
	}

	for _, entry := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, _ := strings.Cut(entry, ";")
		rest, ok := strings.CutPrefix(strings.TrimSpace(mt), vendorMediaPrefix)
		if !ok {
			continue
		}
		v, _, _ := strings.Cut(rest, "+")
		if apiVersions[v] {
			return v
		}
	}

	return DefaultAPIVersion
}

// SetAPIVersionHeader sets the X-API-Version response header.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
